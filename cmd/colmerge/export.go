package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/colmerge/colmerge/internal/export"
	"github.com/colmerge/colmerge/internal/order"
	"github.com/colmerge/colmerge/internal/source"
)

func runExport(ctx context.Context, paths []string, opts source.Options) error {
	if len(paths) == 0 {
		return fmt.Errorf("usage: colmerge export <files...>")
	}

	sequences, err := source.ReadSequences(ctx, paths, opts)
	if err != nil {
		return err
	}

	rel, err := order.BuildRelation(sequences)
	if err != nil {
		return err
	}

	report := export.BuildReport(paths, sequences, rel, order.Order(rel))

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	_, err = os.Stdout.Write(append(out, '\n'))
	return err
}
