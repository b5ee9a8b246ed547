package report

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/teese/weighslide/window"
)

const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 5 * vg.Inch

	// maxTitleSpecLen bounds the window description in the figure title.
	maxTitleSpecLen = 50

	// The y-axis stretches 20% beyond the data range on both ends.
	yPadLow  = 0.8
	yPadHigh = 1.2
)

// SavePlot renders the input sequence and the reduced output as two
// labelled lines ("original data" and "<statistic> over window") into a
// PNG at path. NaN entries are dropped from the lines and ignored for the
// axis range.
func SavePlot(path string, input, output []float64, spec window.Spec, statistic window.Statistic) error {
	p := plot.New()
	p.Title.Text = "weighslide output for window " + truncate(specLabel(spec), maxTitleSpecLen)
	p.X.Label.Text = "position"
	p.Y.Label.Text = "value"

	if err := plotutil.AddLines(p,
		"original data", lineXYs(input),
		statistic.String()+" over window", lineXYs(output),
	); err != nil {
		return fmt.Errorf("report: build figure: %w", err)
	}

	if lo, hi, ok := finiteRange(input, output); ok && lo*yPadLow < hi*yPadHigh {
		p.Y.Min = lo * yPadLow
		p.Y.Max = hi * yPadHigh
	}

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("report: save figure %s: %w", path, err)
	}
	return nil
}

// specLabel renders a window spec for display: the raw string for the
// compact form, the bracketed value list otherwise.
func specLabel(spec window.Spec) string {
	switch s := spec.(type) {
	case window.StringSpec:
		return string(s)
	case window.ListSpec:
		return fmt.Sprint([]window.Value(s))
	case nil:
		return ""
	default:
		return spec.Token()
	}
}

// lineXYs converts a sequence into plot points, skipping NaN entries.
func lineXYs(vals []float64) plotter.XYs {
	xys := make(plotter.XYs, 0, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(i), Y: v})
	}
	return xys
}

// finiteRange scans all series for the smallest and largest finite value.
func finiteRange(series ...[]float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi, lo <= hi
}
