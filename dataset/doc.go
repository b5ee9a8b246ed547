// Package dataset loads one-dimensional numeric series for sliding-window
// analysis.
//
// What:
//
//   - Read pulls a series out of a tabular file, dispatching on the
//     extension: ".csv" and ".txt" go through the delimited-text reader,
//     ".xlsx" and ".xlsm" through the spreadsheet reader. Single-column
//     inputs are used directly; multi-column inputs require
//     ReadOptions.Column.
//   - ParseRaw interprets an inline sequence typed on the command line,
//     with or without surrounding brackets ("[1,3,5]" or "1,3,5").
//   - NoisyWave generates the deterministic square-wave-plus-noise
//     fixture used in tests and demos.
//
// Errors:
//
//   - ErrUnsupportedFormat: extension outside {.csv, .txt, .xlsx, .xlsm}.
//   - ErrNoData: the file holds no data rows or no columns.
//   - ErrColumnRequired, ErrColumnNotFound: multi-column selection.
//   - ErrNotNumeric: a selected cell does not parse as a float.
//   - ErrBadSequence: an inline sequence does not parse.
//
// Cells holding "NaN" parse as floating-point NaN and flow through; the
// window package treats NaN input values as missing data.
package dataset
