package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"unicode/utf8"

	"github.com/colmerge/colmerge/internal/config"
	"github.com/colmerge/colmerge/internal/mcptools"
	"github.com/colmerge/colmerge/internal/order"
	"github.com/colmerge/colmerge/internal/source"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigDir string
	Format    string
	Delimiter string
	Trim      bool
	Output    string
	Verbose   bool
	ServeMCP  bool
	Addr      string
	Version   bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("colmerge", flag.ContinueOnError)
	fs.StringVar(&flags.ConfigDir, "config-dir", ".", "directory containing colmerge.yml")
	fs.StringVar(&flags.Format, "format", "", "input format: auto, csv or lines")
	fs.StringVar(&flags.Delimiter, "delimiter", "", "CSV field delimiter (single character)")
	fs.BoolVar(&flags.Trim, "trim", false, "trim surrounding whitespace from labels")
	fs.StringVar(&flags.Output, "output", "", "output format: csv or lines")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server")
	fs.StringVar(&flags.Addr, "addr", ":8723", "listen address for -serve-mcp")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	cfg, err := config.Load(flags.ConfigDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	opts, outputFormat, verbose, err := resolveSettings(flags, cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if flags.ServeMCP {
		// Interrupt or SIGTERM cancels the context, letting the MCP
		// server shut down gracefully.
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc := mcptools.NewMergeService(opts)
		if verbose {
			log.Printf("serving MCP on %s", flags.Addr)
		}
		return mcptools.RunMCPServer(ctx, svc, flags.Addr)
	}

	rest := fs.Args()
	if len(rest) > 0 {
		switch rest[0] {
		case "export":
			return runExport(ctx, inputPaths(rest[1:], cfg), opts)
		case "diagram":
			return runDiagram(ctx, inputPaths(rest[1:], cfg), opts)
		}
	}

	return runMerge(ctx, inputPaths(rest, cfg), opts, outputFormat, verbose)
}

// resolveSettings combines flags with the project config; flags win.
func resolveSettings(flags cliFlags, cfg *config.ProjectConfig) (source.Options, string, bool, error) {
	opts := source.Options{
		Format:    source.Format(cfg.Format),
		TrimSpace: cfg.TrimSpace || flags.Trim,
	}
	if flags.Format != "" {
		opts.Format = source.Format(flags.Format)
	}

	delimiter := cfg.Delimiter
	if flags.Delimiter != "" {
		delimiter = flags.Delimiter
	}
	if delimiter != "" {
		r, size := utf8.DecodeRuneInString(delimiter)
		if size != len(delimiter) {
			return source.Options{}, "", false, fmt.Errorf("delimiter must be a single character, got %q", delimiter)
		}
		opts.Comma = r
	}

	outputFormat := cfg.Output
	if flags.Output != "" {
		outputFormat = flags.Output
	}
	if outputFormat == "" {
		outputFormat = "csv"
	}
	if outputFormat != "csv" && outputFormat != "lines" {
		return source.Options{}, "", false, fmt.Errorf("unknown output format %q", outputFormat)
	}

	return opts, outputFormat, flags.Verbose || cfg.Verbose, nil
}

// inputPaths returns the explicit arguments, falling back to the config's
// inputs when no paths were given on the command line.
func inputPaths(args []string, cfg *config.ProjectConfig) []string {
	if len(args) > 0 {
		return args
	}
	return cfg.Inputs
}

func runMerge(ctx context.Context, paths []string, opts source.Options, outputFormat string, verbose bool) error {
	if len(paths) == 0 {
		return fmt.Errorf("no input files: pass paths as arguments or set inputs in colmerge.yml")
	}

	sequences, err := source.ReadSequences(ctx, paths, opts)
	if err != nil {
		return err
	}

	merged, err := order.Merge(sequences)
	if err != nil {
		return err
	}

	if verbose {
		log.Printf("merged %d sequences into %d labels", len(sequences), len(merged))
	}

	switch outputFormat {
	case "lines":
		for _, label := range merged {
			fmt.Println(label)
		}
	default:
		w := csv.NewWriter(os.Stdout)
		if opts.Comma != 0 {
			w.Comma = opts.Comma
		}
		if err := w.Write(merged); err != nil {
			return fmt.Errorf("write merged header: %w", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("write merged header: %w", err)
		}
	}
	return nil
}
