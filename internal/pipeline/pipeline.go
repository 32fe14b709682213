// Package pipeline orchestrates one tableslim run: load the input, snapshot
// memory, narrow column types, snapshot again, report. Strictly sequential,
// no retries; any stage error aborts the run.
package pipeline

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/ajitpratap0/tableslim/pkg/config"
	"github.com/ajitpratap0/tableslim/pkg/loader"
	"github.com/ajitpratap0/tableslim/pkg/narrow"
	"github.com/ajitpratap0/tableslim/pkg/profile"
	"github.com/ajitpratap0/tableslim/pkg/report"
)

// Result carries the measurements of a completed run, mainly for tests.
type Result struct {
	Before   profile.MemorySnapshot
	After    profile.MemorySnapshot
	Columns  int
	Rows     int
	Duration time.Duration
}

// Run executes the full pipeline and writes the report to output.
func Run(ctx context.Context, cfg *config.Config, output io.Writer, log *zap.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	ds, err := loader.Load(ctx, cfg.FilePath, cfg.SeparatorRune())
	if err != nil {
		return nil, err
	}
	log.Info("dataset loaded",
		zap.String("file", cfg.FilePath),
		zap.Int("columns", ds.NumColumns()),
		zap.Int("rows", ds.NumRows()))

	before := profile.Snapshot(ds)
	logProcessMemory(log, "before narrowing")

	narrower := narrow.New(narrow.DefaultTable(), log)
	changes, err := narrower.Narrow(ds)
	if err != nil {
		return nil, err
	}

	after := profile.Snapshot(ds)
	logProcessMemory(log, "after narrowing")

	writer := report.NewWriter(output)
	if err := writer.Write(before, after, changes); err != nil {
		return nil, err
	}

	if cfg.OutputPath != "" {
		if err := report.WriteMapping(cfg.OutputPath, changes); err != nil {
			return nil, err
		}
		log.Info("type mapping written", zap.String("path", cfg.OutputPath))
	}

	return &Result{
		Before:   before,
		After:    after,
		Columns:  ds.NumColumns(),
		Rows:     ds.NumRows(),
		Duration: time.Since(start),
	}, nil
}

// logProcessMemory records process-level memory at debug level. Failures are
// ignored; this is diagnostics only.
func logProcessMemory(log *zap.Logger, stage string) {
	rss, vms, err := profile.ProcessMemory()
	if err != nil {
		return
	}
	log.Debug("process memory",
		zap.String("stage", stage),
		zap.Uint64("rss_bytes", rss),
		zap.Uint64("vms_bytes", vms))
}
