// Package source loads label sequences from input files: CSV header rows
// or line-per-label lists.
package source

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Format selects how an input file is interpreted.
type Format string

const (
	// FormatAuto picks a format from the file extension: .csv and .tsv are
	// read as CSV headers, everything else as line lists.
	FormatAuto Format = "auto"

	// FormatCSV reads the first record of the file as the label sequence.
	FormatCSV Format = "csv"

	// FormatLines reads one label per line, skipping blank lines.
	FormatLines Format = "lines"
)

// Options control how input files are parsed.
type Options struct {
	// Format selects the parser. Empty means FormatAuto.
	Format Format

	// Comma is the CSV field delimiter. Zero means comma, or tab for .tsv
	// files detected by FormatAuto.
	Comma rune

	// TrimSpace trims surrounding whitespace from every label.
	TrimSpace bool
}

// ReadSequences loads one label sequence per path. Files are read and
// parsed in parallel; results keep path order regardless of completion
// order. The first failure cancels the remaining reads and is returned.
func ReadSequences(ctx context.Context, paths []string, opts Options) ([][]string, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files given")
	}

	results := make([][]string, len(paths))
	g, gctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seq, err := readFile(path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = seq
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// readFile parses a single input file into a label sequence.
func readFile(path string, opts Options) ([]string, error) {
	format := opts.Format
	if format == "" || format == FormatAuto {
		format = detectFormat(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var seq []string
	switch format {
	case FormatCSV:
		r := csv.NewReader(f)
		switch {
		case opts.Comma != 0:
			r.Comma = opts.Comma
		case strings.EqualFold(filepath.Ext(path), ".tsv"):
			r.Comma = '\t'
		}
		record, err := r.Read()
		if err != nil {
			return nil, fmt.Errorf("read header row: %w", err)
		}
		seq = record

	case FormatLines:
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			seq = append(seq, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read lines: %w", err)
		}

	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}

	if opts.TrimSpace {
		for i := range seq {
			seq[i] = strings.TrimSpace(seq[i])
		}
	}

	if len(seq) == 0 {
		return nil, fmt.Errorf("no labels found")
	}
	return seq, nil
}

// detectFormat maps a file extension to a Format.
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return FormatCSV
	default:
		return FormatLines
	}
}
