package dataset

import (
	"strconv"
	"strings"
)

// InferColumn decides a column's storage type from its raw cells and builds
// the typed column. The decision is made once, at load time:
//
//   - every cell parses as a signed 64-bit integer -> int64
//   - every non-empty cell parses as a float (empty cells become NaN) -> float64
//   - every cell is true/false in any case -> bool
//   - anything else, including an empty column -> string
//
// Empty cells rule out int64 and bool because neither has a missing-value
// representation; a numeric column with gaps loads as float64 with NaN.
func InferColumn(raw []string) Column {
	if len(raw) == 0 {
		return NewStringColumn(raw)
	}

	switch sniffType(raw) {
	case ColumnTypeInt64:
		values := make([]int64, len(raw))
		for i, s := range raw {
			v, _ := strconv.ParseInt(s, 10, 64)
			values[i] = v
		}
		return NewInt64Column(values)

	case ColumnTypeFloat64:
		values := make([]float64, len(raw))
		for i, s := range raw {
			v, _ := parseFloatCell(s)
			values[i] = v
		}
		return NewFloat64Column(values)

	case ColumnTypeBool:
		values := make([]bool, len(raw))
		for i, s := range raw {
			values[i] = strings.EqualFold(s, "true")
		}
		return NewBoolColumn(values)

	default:
		return NewStringColumn(raw)
	}
}

// sniffType classifies a column by scanning every cell.
func sniffType(raw []string) ColumnType {
	isInt := true
	isFloat := true
	isBool := true
	nonEmpty := 0

	for _, s := range raw {
		if s == "" {
			// Missing value: int64 and bool cannot represent it
			isInt = false
			isBool = false
			continue
		}
		nonEmpty++
		if isInt {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				isFloat = false
			}
		}
		if isBool {
			if !strings.EqualFold(s, "true") && !strings.EqualFold(s, "false") {
				isBool = false
			}
		}
	}

	if nonEmpty == 0 {
		return ColumnTypeString
	}
	switch {
	case isInt:
		return ColumnTypeInt64
	case isFloat:
		return ColumnTypeFloat64
	case isBool:
		return ColumnTypeBool
	default:
		return ColumnTypeString
	}
}
