package main

import (
	"context"
	"fmt"

	"github.com/colmerge/colmerge/internal/export"
	"github.com/colmerge/colmerge/internal/order"
	"github.com/colmerge/colmerge/internal/source"
)

func runDiagram(ctx context.Context, paths []string, opts source.Options) error {
	if len(paths) == 0 {
		return fmt.Errorf("usage: colmerge diagram <files...>")
	}

	sequences, err := source.ReadSequences(ctx, paths, opts)
	if err != nil {
		return err
	}

	// Validate the relation before diagramming; a contradictory input
	// would otherwise render a misleading graph.
	if _, err := order.BuildRelation(sequences); err != nil {
		return err
	}

	fmt.Print(export.GenerateMermaid(sequences))
	return nil
}
