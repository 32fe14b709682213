package dataset

import (
	"github.com/ajitpratap0/tableslim/pkg/errors"
)

// Dataset is an ordered sequence of named columns with a uniform row count.
// It is exclusively owned by one pipeline invocation and never accessed
// concurrently, so there is no locking.
type Dataset struct {
	names []string
	cols  []Column
}

// New creates an empty dataset
func New() *Dataset {
	return &Dataset{}
}

// AddColumn appends a column. Every column after the first must match the
// existing row count.
func (d *Dataset) AddColumn(name string, col Column) error {
	for _, n := range d.names {
		if n == name {
			return errors.New(errors.ErrorTypeData, "duplicate column name").
				WithDetail("column", name)
		}
	}
	if len(d.cols) > 0 && col.Len() != d.cols[0].Len() {
		return errors.New(errors.ErrorTypeData, "column row count mismatch").
			WithDetail("column", name).
			WithDetail("expected", d.cols[0].Len()).
			WithDetail("got", col.Len())
	}
	d.names = append(d.names, name)
	d.cols = append(d.cols, col)
	return nil
}

// ReplaceColumn swaps the column at index i for a new representation of the
// same data. Row count must be unchanged; name and position are preserved.
func (d *Dataset) ReplaceColumn(i int, col Column) error {
	if i < 0 || i >= len(d.cols) {
		return errors.New(errors.ErrorTypeData, "column index out of range").
			WithDetail("index", i)
	}
	if col.Len() != d.cols[i].Len() {
		return errors.New(errors.ErrorTypeData, "replacement column row count mismatch").
			WithDetail("column", d.names[i]).
			WithDetail("expected", d.cols[i].Len()).
			WithDetail("got", col.Len())
	}
	d.cols[i] = col
	return nil
}

// NumColumns returns the number of columns
func (d *Dataset) NumColumns() int { return len(d.cols) }

// NumRows returns the number of rows
func (d *Dataset) NumRows() int {
	if len(d.cols) == 0 {
		return 0
	}
	return d.cols[0].Len()
}

// Name returns the name of the column at index i
func (d *Dataset) Name(i int) string { return d.names[i] }

// Names returns all column names in order
func (d *Dataset) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Column returns the column at index i
func (d *Dataset) Column(i int) Column { return d.cols[i] }

// ColumnByName returns the named column, if present
func (d *Dataset) ColumnByName(name string) (Column, bool) {
	for i, n := range d.names {
		if n == name {
			return d.cols[i], true
		}
	}
	return nil, false
}

// MemoryUsage returns the deep memory footprint in bytes. It is recomputed
// from scratch on every call; nothing is cached between measurements.
func (d *Dataset) MemoryUsage() int64 {
	var total int64
	for i, col := range d.cols {
		total += int64(len(d.names[i]))
		total += col.MemoryUsage()
	}
	return total
}

// TypeChange records how one column's storage type changed during a run.
type TypeChange struct {
	Name   string
	Before ColumnType
	After  ColumnType
}
