// Package report persists sliding-window results: the staggered slice
// tables as CSV, the combined Excel workbook, the reduced series CSV and
// the two-line comparison figure.
//
// Layout: all artifacts of one run share a base name derived from the
// dataset name (truncated to 20 characters) plus the window token
// (truncated to 20 characters), inside a "weighslide_output" directory next
// to the input file. OutputPaths computes the five paths; CheckOverwrite
// guards against clobbering an earlier run.
//
// The staggered tables reproduce the diagonal layout of the per-position
// windows: column i holds the window centred on position i, rows run from
// -half to n-1+half, cells outside a column's window stay empty. In the
// sliced table boundary padding renders as "nodata"; in the weighted table
// missing products render as empty cells.
package report
