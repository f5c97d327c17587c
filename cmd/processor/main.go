// Command processor aggregates UIDAI enrolment and update extracts into one
// dashboard summary.
//
// Usage:
//
//	processor [-o dashboard_data.json] [-aliases states.yaml] [-print] <path> ...
//
// Each path is a .csv file, a .zip archive of CSV files, a flat .parquet
// file, or a directory holding any of those. Problems with individual files
// are recorded in the summary's validation report; the command still exits 0
// so the dashboard can show them.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/config"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/core"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/core/tables"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/ingest"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/logging"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/output"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// A missing .env file is normal; real environment variables still apply.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	fs := flag.NewFlagSet("processor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outPath := fs.String("o", cfg.Output.Path, "summary JSON output path")
	aliasPath := fs.String("aliases", cfg.Normalize.StateAliasFile, "optional YAML file of extra state spellings")
	printSummary := fs.Bool("print", false, "also write the summary JSON to stdout")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: processor [flags] <file.csv|file.zip|file.parquet|dir> ...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	logger := logging.New(stderr, cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(logger)

	normalizer, err := tables.NewNormalizer(*aliasPath)
	if err != nil {
		logger.Error("failed to load state aliases", "error", err)
		return exitError
	}
	logger.Debug("categories registered", "count", core.SchemaCount())

	pipeline := ingest.NewPipeline(normalizer, ingest.Options{MaxFileSize: cfg.Input.MaxFileSize})
	result, err := pipeline.RunPaths(ctx, fs.Args())
	if err != nil {
		logger.Error("run aborted", "error", err)
		return exitError
	}

	if err := output.WriteJSON(*outPath, result.Summary); err != nil {
		logger.Error("failed to write summary", "path", *outPath, "error", err)
		return exitError
	}

	if *printSummary {
		if err := output.Encode(stdout, result.Summary); err != nil {
			logger.Error("failed to print summary", "error", err)
			return exitError
		}
	}

	fmt.Fprintf(stdout, "%s: %d files processed, %d issues; summary saved to %s\n",
		result.Status(), len(result.Files), len(result.Summary.Validation.Issues()), *outPath)
	return exitOK
}
