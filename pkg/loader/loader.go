// Package loader reads a CSV or XLSX file fully into a dataset. The file
// extension selects the parser; compressed CSV variants are transparently
// decompressed. The source file is never modified.
package loader

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ajitpratap0/tableslim/pkg/dataset"
	"github.com/ajitpratap0/tableslim/pkg/errors"
	"github.com/ajitpratap0/tableslim/pkg/logger"
)

// Load reads the file at path into a Dataset. sep is the field separator for
// delimited inputs and is ignored for spreadsheets. An unrecognized extension
// fails with an unsupported_format error before the file is opened.
func Load(ctx context.Context, path string, sep rune) (*dataset.Dataset, error) {
	lower := strings.ToLower(path)

	switch {
	case strings.HasSuffix(lower, ".csv"):
		return loadCSV(ctx, path, sep, compressionNone)
	case strings.HasSuffix(lower, ".csv.gz"):
		return loadCSV(ctx, path, sep, compressionGzip)
	case strings.HasSuffix(lower, ".csv.zst"):
		return loadCSV(ctx, path, sep, compressionZstd)
	case strings.HasSuffix(lower, ".csv.lz4"):
		return loadCSV(ctx, path, sep, compressionLZ4)
	case strings.HasSuffix(lower, ".xlsx"):
		return loadXLSX(ctx, path)
	default:
		return nil, errors.New(errors.ErrorTypeUnsupportedFormat,
			"file must be CSV or XLSX").WithDetail("path", path)
	}
}

// buildDataset turns header names and per-column raw cells into a typed
// dataset, one inference decision per column.
func buildDataset(header []string, columns [][]string) (*dataset.Dataset, error) {
	ds := dataset.New()
	for i, name := range header {
		col := dataset.InferColumn(columns[i])
		if err := ds.AddColumn(name, col); err != nil {
			return nil, err
		}
		logger.Debug("column loaded",
			zap.String("column", name),
			zap.String("type", col.Type().Label()),
			zap.Int("rows", col.Len()))
	}
	return ds, nil
}

// transpose converts row-major records (header excluded) into per-column
// cell slices. Short rows are padded with empty cells.
func transpose(header []string, rows [][]string) [][]string {
	columns := make([][]string, len(header))
	for i := range columns {
		columns[i] = make([]string, 0, len(rows))
	}
	for _, row := range rows {
		for i := range header {
			if i < len(row) {
				columns[i] = append(columns[i], row[i])
			} else {
				columns[i] = append(columns[i], "")
			}
		}
	}
	return columns
}
