// Command aggregate reads a delimited dataset, cleans its Value column,
// sums values per Category, and writes the result to stdout as JSON.
// Diagnostics go to stderr; the exit code is 0 on success and non-zero on
// any failure, so pipeline runners can capture stdout as the artifact.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"aggcli/internal/config"
	"aggcli/internal/dataprocessing"
	apperrors "aggcli/internal/errors"
	"aggcli/internal/exporter"
	"aggcli/internal/infrastructure"
)

// diagnosticPrefix is the stable prefix on every stderr diagnostic.
const diagnosticPrefix = "aggregate:"

func main() {
	code := run(os.Args[1:], os.Stdout, os.Stderr)
	_ = infrastructure.CloseLogFile()
	os.Exit(code)
}

// run executes one aggregation pass. It is separated from main so tests can
// drive it with in-memory streams and inspect the exit code.
func run(args []string, stdout, stderr io.Writer) (exitCode int) {
	// Nothing unexpected may escape as a crash; a panic becomes an
	// INTERNAL_ERROR diagnostic with the cause preserved.
	defer func() {
		if r := recover(); r != nil {
			exitCode = report(stderr, apperrors.Internal(fmt.Errorf("panic: %v", r)))
		}
	}()

	fs := flag.NewFlagSet("aggregate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("input", "", "path to the delimited input file (required)")
	out := fs.String("out", "", "output file path (defaults to stdout)")
	format := fs.String("format", "", "output format: json | csv (defaults to config)")
	pretty := fs.Bool("pretty", false, "indent JSON output")
	configPath := fs.String("config", "", "optional YAML config file")

	if err := fs.Parse(args); err != nil {
		return apperrors.ExitMalformedInput
	}

	if *input == "" && fs.NArg() > 0 {
		*input = fs.Arg(0)
	}
	if *input == "" {
		fmt.Fprintf(stderr, "%s missing input path (use -input)\n", diagnosticPrefix)
		fs.Usage()
		return apperrors.ExitMalformedInput
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return report(stderr, err)
	}

	// Explicit flags win over config.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Output.Format = *format
		case "pretty":
			cfg.Output.Pretty = *pretty
		}
	})

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return report(stderr, err)
	}

	logger.Info("Starting aggregation",
		slog.String("input", *input),
		slog.String("format", cfg.Output.Format))

	aggregator := dataprocessing.NewAggregator(logger, dataprocessing.FallbackPolicy{
		Enabled:             cfg.Fallback.Enabled,
		PlaceholderCategory: cfg.Fallback.PlaceholderCategory,
		ValueStep:           cfg.Fallback.ValueStep,
	})

	result, err := aggregator.Run(context.Background(), *input)
	if err != nil {
		return report(stderr, err)
	}

	writer, err := exporter.ForFormat(cfg.Output.Format, cfg.Output.Pretty)
	if err != nil {
		return report(stderr, err)
	}

	dest := stdout
	if *out != "" {
		f, err := createOutputFile(*out)
		if err != nil {
			return report(stderr, err)
		}
		defer f.Close()
		dest = f
	}

	if err := writer.Write(dest, result.Totals); err != nil {
		return report(stderr, err)
	}

	logger.Info("Aggregation finished",
		slog.Int("categories", len(result.Totals)),
		slog.Int("rows", result.Rows),
		slog.Int("dropped_rows", result.Dropped))

	return apperrors.ExitOK
}

// report writes a diagnostic for err to stderr and returns its exit code.
func report(stderr io.Writer, err error) int {
	appErr := apperrors.From(err)
	fmt.Fprintf(stderr, "%s %s: %s\n", diagnosticPrefix, appErr.Code, appErr.Error())
	return appErr.ExitCode
}

// createOutputFile creates the destination file, making parent directories
// as needed.
func createOutputFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}
