// Package dataset provides the in-memory columnar table one tableslim run
// operates on: ordered named columns, each holding values of a single type
// decided at load time, with deep per-column memory accounting.
package dataset

import (
	"math"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow/float16"

	"github.com/ajitpratap0/tableslim/pkg/errors"
)

// ColumnType represents the storage type of a column
type ColumnType int

const (
	ColumnTypeString ColumnType = iota
	ColumnTypeCategorical
	ColumnTypeInt64
	ColumnTypeInt16
	ColumnTypeFloat64
	ColumnTypeFloat16
	ColumnTypeBool
)

// stringHeaderSize is the header cost counted per stored Go string.
const stringHeaderSize = 16

// Label returns the human-readable type name used in reports and the
// persisted type mapping.
func (t ColumnType) Label() string {
	switch t {
	case ColumnTypeString:
		return "string"
	case ColumnTypeCategorical:
		return "category"
	case ColumnTypeInt64:
		return "int64"
	case ColumnTypeInt16:
		return "int16"
	case ColumnTypeFloat64:
		return "float64"
	case ColumnTypeFloat16:
		return "float16"
	case ColumnTypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Column is the base interface for all column types
type Column interface {
	Type() ColumnType
	Len() int
	Get(i int) interface{}
	MemoryUsage() int64
}

// StringColumn stores raw text values
type StringColumn struct {
	values []string
}

// NewStringColumn creates a string column from raw values
func NewStringColumn(values []string) *StringColumn {
	return &StringColumn{values: values}
}

func (c *StringColumn) Type() ColumnType { return ColumnTypeString }
func (c *StringColumn) Len() int         { return len(c.values) }

func (c *StringColumn) Get(i int) interface{} { return c.values[i] }

// Values returns the backing slice. Callers must not mutate it.
func (c *StringColumn) Values() []string { return c.values }

func (c *StringColumn) MemoryUsage() int64 {
	var total int64
	for _, v := range c.values {
		total += int64(len(v)) + stringHeaderSize
	}
	return total
}

// CategoricalColumn stores text dictionary-encoded: each distinct string is
// kept once, rows are uint32 codes into the dictionary. Decoding is lossless.
// With near-unique values the dictionary can cost more than the raw strings;
// that is not guarded against.
type CategoricalColumn struct {
	dict  []string
	index map[string]uint32
	codes []uint32
}

// NewCategoricalColumn dictionary-encodes the given values, assigning codes
// in first-seen order.
func NewCategoricalColumn(values []string) *CategoricalColumn {
	c := &CategoricalColumn{
		index: make(map[string]uint32),
		codes: make([]uint32, 0, len(values)),
	}
	for _, v := range values {
		code, ok := c.index[v]
		if !ok {
			code = uint32(len(c.dict))
			c.dict = append(c.dict, v)
			c.index[v] = code
		}
		c.codes = append(c.codes, code)
	}
	return c
}

func (c *CategoricalColumn) Type() ColumnType { return ColumnTypeCategorical }
func (c *CategoricalColumn) Len() int         { return len(c.codes) }

func (c *CategoricalColumn) Get(i int) interface{} { return c.dict[c.codes[i]] }

// Cardinality returns the number of distinct values in the dictionary.
func (c *CategoricalColumn) Cardinality() int { return len(c.dict) }

func (c *CategoricalColumn) MemoryUsage() int64 {
	var total int64
	for _, v := range c.dict {
		total += int64(len(v)) + stringHeaderSize // dictionary entry
		total += 4                                // reverse index code
	}
	total += int64(len(c.codes) * 4)
	return total
}

// Int64Column stores 64-bit signed integers
type Int64Column struct {
	values []int64
}

// NewInt64Column creates an int64 column from parsed values
func NewInt64Column(values []int64) *Int64Column {
	return &Int64Column{values: values}
}

func (c *Int64Column) Type() ColumnType      { return ColumnTypeInt64 }
func (c *Int64Column) Len() int              { return len(c.values) }
func (c *Int64Column) Get(i int) interface{} { return c.values[i] }

// Values returns the backing slice. Callers must not mutate it.
func (c *Int64Column) Values() []int64 { return c.values }

func (c *Int64Column) MemoryUsage() int64 {
	return int64(len(c.values) * 8)
}

// Int16Column stores 16-bit signed integers
type Int16Column struct {
	values []int16
}

// NewInt16Column creates an int16 column
func NewInt16Column(values []int16) *Int16Column {
	return &Int16Column{values: values}
}

func (c *Int16Column) Type() ColumnType      { return ColumnTypeInt16 }
func (c *Int16Column) Len() int              { return len(c.values) }
func (c *Int16Column) Get(i int) interface{} { return c.values[i] }

func (c *Int16Column) MemoryUsage() int64 {
	return int64(len(c.values) * 2)
}

// Float64Column stores 64-bit floating point values
type Float64Column struct {
	values []float64
}

// NewFloat64Column creates a float64 column from parsed values
func NewFloat64Column(values []float64) *Float64Column {
	return &Float64Column{values: values}
}

func (c *Float64Column) Type() ColumnType      { return ColumnTypeFloat64 }
func (c *Float64Column) Len() int              { return len(c.values) }
func (c *Float64Column) Get(i int) interface{} { return c.values[i] }

// Values returns the backing slice. Callers must not mutate it.
func (c *Float64Column) Values() []float64 { return c.values }

func (c *Float64Column) MemoryUsage() int64 {
	return int64(len(c.values) * 8)
}

// Float16Column stores half-precision floats using Arrow's float16
// representation, 2 bytes per value.
type Float16Column struct {
	values []float16.Num
}

// NewFloat16Column creates a float16 column
func NewFloat16Column(values []float16.Num) *Float16Column {
	return &Float16Column{values: values}
}

func (c *Float16Column) Type() ColumnType { return ColumnTypeFloat16 }
func (c *Float16Column) Len() int         { return len(c.values) }

// Get returns the value decoded to float32, the narrowest type Go can
// represent a half-float in.
func (c *Float16Column) Get(i int) interface{} { return c.values[i].Float32() }

func (c *Float16Column) MemoryUsage() int64 {
	return int64(len(c.values) * 2)
}

// BoolColumn stores boolean values bit-packed, 64 per uint64
type BoolColumn struct {
	values []uint64
	count  int
}

// NewBoolColumn creates a bool column from parsed values
func NewBoolColumn(values []bool) *BoolColumn {
	c := &BoolColumn{
		values: make([]uint64, (len(values)+63)/64),
	}
	for i, v := range values {
		if v {
			c.values[i/64] |= 1 << (i % 64)
		}
	}
	c.count = len(values)
	return c
}

func (c *BoolColumn) Type() ColumnType { return ColumnTypeBool }
func (c *BoolColumn) Len() int         { return c.count }

func (c *BoolColumn) Get(i int) interface{} {
	return (c.values[i/64] & (1 << (i % 64))) != 0
}

func (c *BoolColumn) MemoryUsage() int64 {
	return int64(len(c.values) * 8)
}

// parseFloatCell parses a float cell, mapping empty cells to NaN the way a
// numeric column with missing values is loaded.
func parseFloatCell(s string) (float64, error) {
	if s == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrorTypeData, "cannot parse float cell")
	}
	return v, nil
}
