package loader

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/ajitpratap0/tableslim/pkg/dataset"
	"github.com/ajitpratap0/tableslim/pkg/errors"
)

// loadXLSX parses the first sheet of a spreadsheet. The first row is the
// header. Cell values arrive as strings and go through the same per-column
// type inference as delimited input.
func loadXLSX(ctx context.Context, path string) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to open spreadsheet")
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New(errors.ErrorTypeData, "spreadsheet has no sheets")
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeInternal, "load canceled")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to read sheet rows")
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrorTypeData, "input file is empty")
	}

	header := rows[0]
	return buildDataset(header, transpose(header, rows[1:]))
}
