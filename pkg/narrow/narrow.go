// Package narrow replaces wide column storage types with compact ones per a
// fixed substitution table: text becomes dictionary-encoded, int64 becomes
// int16 and float64 becomes float16. The integer and float conversions are
// lossy: int64 values wrap on int16 overflow (no range check), and float64
// values round to the nearest representable half-float.
package narrow

import (
	"github.com/apache/arrow-go/v18/arrow/float16"
	"go.uber.org/zap"

	"github.com/ajitpratap0/tableslim/pkg/dataset"
	"github.com/ajitpratap0/tableslim/pkg/errors"
)

// SubstitutionTable maps a source column type to the type it is narrowed to.
// Columns whose type has no entry pass through unchanged.
type SubstitutionTable map[dataset.ColumnType]dataset.ColumnType

// DefaultTable returns the standard substitution table.
func DefaultTable() SubstitutionTable {
	return SubstitutionTable{
		dataset.ColumnTypeString:  dataset.ColumnTypeCategorical,
		dataset.ColumnTypeInt64:   dataset.ColumnTypeInt16,
		dataset.ColumnTypeFloat64: dataset.ColumnTypeFloat16,
	}
}

// Narrower applies a substitution table to a dataset. The table is fixed at
// construction so tests can exercise alternate tables.
type Narrower struct {
	table  SubstitutionTable
	logger *zap.Logger
}

// New creates a Narrower with the given substitution table.
func New(table SubstitutionTable, logger *zap.Logger) *Narrower {
	return &Narrower{table: table, logger: logger}
}

// Narrow converts every matching column in place and returns one TypeChange
// per column, in column order, including pass-through columns. Columns are
// independent; no cross-column state exists.
func (n *Narrower) Narrow(ds *dataset.Dataset) ([]dataset.TypeChange, error) {
	changes := make([]dataset.TypeChange, 0, ds.NumColumns())

	for i := 0; i < ds.NumColumns(); i++ {
		col := ds.Column(i)
		before := col.Type()

		target, ok := n.table[before]
		if !ok {
			changes = append(changes, dataset.TypeChange{
				Name:   ds.Name(i),
				Before: before,
				After:  before,
			})
			continue
		}

		narrowed, err := convert(col, target)
		if err != nil {
			return nil, err
		}
		if err := ds.ReplaceColumn(i, narrowed); err != nil {
			return nil, err
		}

		n.logger.Debug("column narrowed",
			zap.String("column", ds.Name(i)),
			zap.String("from", before.Label()),
			zap.String("to", target.Label()))

		changes = append(changes, dataset.TypeChange{
			Name:   ds.Name(i),
			Before: before,
			After:  target,
		})
	}

	return changes, nil
}

// convert builds the narrowed representation of a column.
func convert(col dataset.Column, target dataset.ColumnType) (dataset.Column, error) {
	switch target {
	case dataset.ColumnTypeCategorical:
		src, ok := col.(*dataset.StringColumn)
		if !ok {
			return nil, errors.New(errors.ErrorTypeInternal,
				"categorical narrowing requires a string column")
		}
		return dataset.NewCategoricalColumn(src.Values()), nil

	case dataset.ColumnTypeInt16:
		src, ok := col.(*dataset.Int64Column)
		if !ok {
			return nil, errors.New(errors.ErrorTypeInternal,
				"int16 narrowing requires an int64 column")
		}
		values := make([]int16, src.Len())
		for i, v := range src.Values() {
			// Wraps outside [-32768, 32767]; accepted lossy behavior
			values[i] = int16(v)
		}
		return dataset.NewInt16Column(values), nil

	case dataset.ColumnTypeFloat16:
		src, ok := col.(*dataset.Float64Column)
		if !ok {
			return nil, errors.New(errors.ErrorTypeInternal,
				"float16 narrowing requires a float64 column")
		}
		values := make([]float16.Num, src.Len())
		for i, v := range src.Values() {
			values[i] = float16.New(float32(v))
		}
		return dataset.NewFloat16Column(values), nil

	default:
		return nil, errors.New(errors.ErrorTypeInternal, "unsupported narrowing target").
			WithDetail("target", target.Label())
	}
}
