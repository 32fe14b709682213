// Package tableslim reduces the in-memory footprint of tabular datasets
// (CSV/XLSX) by downcasting column storage types and reporting the memory
// saved.
//
// One invocation runs a single-pass pipeline:
//
//  1. Loader: read the input file fully into an in-memory columnar dataset,
//     inferring one storage type per column.
//  2. Profiler: take a deep memory snapshot of the dataset.
//  3. Narrower: apply the fixed substitution table (string -> category,
//     int64 -> int16, float64 -> float16) to every matching column.
//  4. Reporter: snapshot again, print the before/after memory figures and a
//     per-column type table, and optionally persist the final column type
//     mapping as a flat key-value file.
//
// The integer and float narrowings are deliberately lossy: int64 values wrap
// on int16 overflow and float64 values round to half precision. Text
// narrowing is lossless for value content.
//
// # Quick Start
//
//	tableslim run --file data.csv
//	tableslim run --file data.csv --sep ';' -o types.json
//	tableslim run --file report.xlsx -o types.yaml
//
// Package layout follows cmd/ for the CLI, internal/pipeline for
// orchestration and pkg/ for the reusable pieces (dataset, loader, narrow,
// profile, report).
package tableslim
