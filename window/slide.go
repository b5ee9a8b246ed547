package window

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Slide runs the full weighted sliding-window pipeline over data:
//
//  1. build the weight vector from spec (BuildWeights rules apply),
//  2. for every position, cut the centred slice, padding both edges with
//     missing sentinels (NaN input values also count as missing),
//  3. multiply slice and weights element-wise (missing propagates),
//  4. reduce each weighted slice with statistic, skipping missing entries.
//
// A nil opts is equivalent to DefaultOptions. Inputs longer than
// WarnInputLen trigger Options.Warn; inputs longer than MaxInputLen
// additionally fail with ErrInputTooLarge unless Options.AllowLargeInput is
// set, with the warning emitted before the failure. The returned
// Result retains every intermediate stage so callers can inspect or persist
// them.
//
// Complexity: O(n·L) time, O(n·L) memory for n input values and window
// length L.
func Slide(data []float64, spec Spec, statistic Statistic, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	weights, err := BuildWeights(spec, o.AllowLongWindow)
	if err != nil {
		return nil, err
	}

	if !statistic.valid() {
		return nil, wrapFmt(ErrUnknownStatistic, "got %v", statistic)
	}

	n := len(data)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if n > WarnInputLen && o.Warn != nil {
		o.Warn("input is long; expect a proportionally long run")
	}
	if n > MaxInputLen && !o.AllowLargeInput {
		return nil, wrapFmt(ErrInputTooLarge, "%d values exceed %d; long inputs slide slowly", n, MaxInputLen)
	}

	res := &Result{
		Weights:  weights,
		Slices:   make([][]Value, n),
		Weighted: make([][]Value, n),
		Output:   make([]float64, n),
	}

	half := len(weights) / 2
	scratch := make([]float64, 0, len(weights))
	for i := 0; i < n; i++ {
		slice := sliceAt(data, i, half)
		if len(slice) != len(weights) {
			return nil, wrapFmt(ErrSliceLength, "position %d: slice length %d, window length %d", i, len(slice), len(weights))
		}

		weighted := make([]Value, len(slice))
		for j, v := range slice {
			weighted[j] = v.Mul(weights[j])
		}

		res.Slices[i] = slice
		res.Weighted[i] = weighted
		res.Output[i] = reduce(statistic, weighted, scratch)

		if o.Progress != nil {
			o.Progress(i+1, n)
		}
	}

	return res, nil
}

// sliceAt cuts the window of radius half centred on position i. Positions
// outside [0, len(data)) contribute the missing sentinel, so the slice
// always has length 2*half+1. NaN input values count as missing data, not
// as numbers.
func sliceAt(data []float64, i, half int) []Value {
	slice := make([]Value, 0, 2*half+1)
	for j := i - half; j <= i+half; j++ {
		if j < 0 || j >= len(data) || math.IsNaN(data[j]) {
			slice = append(slice, None())
			continue
		}
		slice = append(slice, Num(data[j]))
	}
	return slice
}

// reduce collapses one weighted slice to a single number, considering only
// the non-missing entries. Mean of zero entries and standard deviation of
// fewer than two are NaN; Sum of zero entries is 0. The scratch buffer is
// reused across calls to avoid per-position allocation.
func reduce(statistic Statistic, weighted []Value, scratch []float64) float64 {
	vals := scratch[:0]
	for _, v := range weighted {
		if f, ok := v.Float64(); ok {
			vals = append(vals, f)
		}
	}

	switch statistic {
	case Std:
		return stat.StdDev(vals, nil)
	case Sum:
		return floats.Sum(vals)
	default: // Mean; Slide validates the statistic upfront.
		return stat.Mean(vals, nil)
	}
}
