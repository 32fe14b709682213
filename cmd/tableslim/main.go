package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/tableslim/internal/pipeline"
	"github.com/ajitpratap0/tableslim/pkg/config"
	"github.com/ajitpratap0/tableslim/pkg/logger"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	root := &cobra.Command{
		Use:   "tableslim",
		Short: "tableslim - shrink the memory footprint of tabular datasets",
		Long: `tableslim loads a CSV or XLSX file, narrows every column's storage type
per a fixed substitution table (text to categorical, int64 to int16, float64
to float16) and reports the memory saved along with a per-column type table.`,
	}

	// Version command
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tableslim v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	cfg := config.New()

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Narrow a dataset's column types and report memory savings",
		Long: `Narrow a dataset's column types and report memory savings.

The input file extension selects the parser: .csv (optionally .csv.gz,
.csv.zst or .csv.lz4) or .xlsx. Any other extension is rejected.

Example:
  tableslim run --file data.csv --sep ';' -o types.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	runCmd.Flags().StringVarP(&cfg.FilePath, "file", "f", "", "Path to the input file (.csv or .xlsx) (required)")
	_ = runCmd.MarkFlagRequired("file")
	runCmd.Flags().StringVar(&cfg.Separator, "sep", ",", "Field separator for CSV input, single character")
	runCmd.Flags().StringVarP(&cfg.OutputPath, "output", "o", "", "Path to write the resulting column type mapping (JSON, or YAML for .yaml/.yml)")
	runCmd.Flags().StringVar(&cfg.LogLevel, "log-level", "error", "Log level (debug, info, warn, error)")

	root.AddCommand(runCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires logging and executes the pipeline against stdout.
func run(cfg *config.Config) error {
	if err := logger.Init(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: "console",
	}); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	log := logger.With(zap.String("component", "tableslim-cli"))

	start := time.Now()
	result, err := pipeline.Run(context.Background(), cfg, os.Stdout, log)
	if err != nil {
		return err
	}

	log.Info("run completed",
		zap.Duration("duration", time.Since(start)),
		zap.Int("columns", result.Columns),
		zap.Int("rows", result.Rows),
		zap.Float64("savings_mb", result.Before.MB-result.After.MB))

	return nil
}
