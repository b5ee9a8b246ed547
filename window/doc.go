// Package window implements weighted sliding-window reduction over a
// one-dimensional sequence of float64 values, using flexible windows
// defined by the caller.
//
// What:
//
//   - Spec describes the window: either a compact digit string
//     (StringSpec, e.g. "494" or "9xxxxx9") or an explicit list of
//     weights (ListSpec, e.g. [2, x, 2]). The rune 'x' marks positions
//     excluded from the reduction.
//   - BuildWeights converts a Spec into the numeric weight vector,
//     enforcing the odd-length contract.
//   - Slide walks the input once: per position it extracts the
//     neighborhood slice (boundaries padded with missing values),
//     multiplies element-wise by the weights, and reduces the
//     non-missing products with the chosen Statistic (Mean, Std, Sum).
//   - Value is an explicit optional float64. Missing values never
//     participate arithmetically in a reduction: excluded, not treated
//     as zero. NaN input values are promoted to missing on slicing, so
//     gaps in a dataset vanish from the statistics instead of
//     contaminating them.
//
// Why:
//
//   - Smoothing or normalising noisy measurement series.
//   - Periodicity analysis: a spec like "9xxxxx9xxxxx9" averages every
//     sixth position, exposing repeats in the data.
//   - Weighted neighborhood scoring in scanning-window pipelines.
//
// Complexity:
//
//   - BuildWeights: O(L) time and memory (L = window length).
//   - Slide:        O(N·L) time, O(N·L) memory for the diagnostic
//     tables (N = input length). Deliberately unoptimised; inputs
//     beyond WarnInputLen trigger a warning, beyond MaxInputLen an
//     error unless overridden.
//
// Options:
//
//   - Options.AllowLongWindow: lift the MaxWindowLen guard.
//   - Options.AllowLargeInput: lift the MaxInputLen guard (use at your
//     own risk given the O(N·L) loop).
//   - Options.Progress: per-position callback for progress display.
//   - Options.Warn: sink for the non-fatal long-input warning.
//
// Errors:
//
//   - ErrInvalidSpec: spec is neither form, or contains an invalid rune
//     or element.
//   - ErrEmptyWindow, ErrEvenLength, ErrWindowTooLong: length contract.
//   - ErrUnknownStatistic: statistic outside {Mean, Std, Sum}.
//   - ErrEmptyInput, ErrInputTooLarge: input length contract.
//   - ErrSliceLength: internal invariant violation (never expected).
//
// The first and last (L-1)/2 output positions are computed from
// boundary-truncated windows and carry less support than interior
// positions; see Result for details.
package window
