// Package report renders the before/after comparison of a narrowing run and
// persists the resulting column type mapping.
//
// The console report uses the nao1215/markdown library for type-safe table
// generation: three memory figures followed by one table row per column, in
// original column order.
package report

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"

	"github.com/ajitpratap0/tableslim/pkg/dataset"
	"github.com/ajitpratap0/tableslim/pkg/errors"
	"github.com/ajitpratap0/tableslim/pkg/profile"
)

// Writer renders narrowing reports to an output stream.
type Writer struct {
	output io.Writer
}

// NewWriter creates a Writer that renders to the given stream.
func NewWriter(output io.Writer) *Writer {
	return &Writer{output: output}
}

// Write emits the memory figures and the per-column type table. Savings may
// be negative when narrowing grew the footprint; that is reported as-is.
func (w *Writer) Write(before, after profile.MemorySnapshot, changes []dataset.TypeChange) error {
	if _, err := fmt.Fprintf(w.output, "Initial memory usage: %.2f MB\n", before.MB); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write report")
	}
	if _, err := fmt.Fprintf(w.output, "Final memory usage: %.2f MB\n", after.MB); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write report")
	}
	if _, err := fmt.Fprintf(w.output, "Memory savings: %.2f MB\n", profile.Savings(before, after)); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write report")
	}

	rows := make([][]string, len(changes))
	for i, c := range changes {
		rows[i] = []string{c.Name, c.Before.Label(), c.After.Label()}
	}

	md := markdown.NewMarkdown(w.output)
	md.Table(markdown.TableSet{
		Header: []string{"COLUMN NAME", "OLD D-TYPE", "NEW D-TYPE"},
		Rows:   rows,
	})
	if err := md.Build(); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write report table")
	}
	return nil
}
