package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/teese/weighslide/window"
)

// WriteSlicedCSV persists the staggered table of raw window slices, with
// boundary padding rendered as "nodata".
func WriteSlicedCSV(path string, res *window.Result) error {
	return writeCSV(path, csvRecords(staggeredCells(res.Slices, slicedFill)))
}

// WriteWeightedCSV persists the staggered table of weighted slices, with
// missing products rendered as empty cells.
func WriteWeightedCSV(path string, res *window.Result) error {
	return writeCSV(path, csvRecords(staggeredCells(res.Weighted, weightedFill)))
}

// WriteSeriesCSV persists the reduced output sequence as a two-column
// "position,<statistic> over window" file.
func WriteSeriesCSV(path string, output []float64, statistic window.Statistic) error {
	return writeCSV(path, csvRecords(seriesCells(output, statistic.String()+" over window")))
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", path, err)
	}
	return nil
}
