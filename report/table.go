package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/teese/weighslide/window"
)

// Cell fill for in-window missing values: padding shows as "nodata" in the
// sliced table, weighted products stay empty.
const (
	slicedFill   = "nodata"
	weightedFill = ""
)

// staggeredCells lays the per-position windows out diagonally: column j
// holds the window centred on position j, covering rows j-half through
// j+half. Rows run from -half to n-1+half; cells outside a column's window
// are nil, in-window missing values take missingFill. The first row is the
// header ("window 0", "window 1", ...), the first column the row position.
func staggeredCells(columns [][]window.Value, missingFill string) [][]interface{} {
	n := len(columns)
	if n == 0 {
		return nil
	}
	half := (len(columns[0]) - 1) / 2

	header := make([]interface{}, n+1)
	header[0] = ""
	for j := 0; j < n; j++ {
		header[j+1] = "window " + strconv.Itoa(j)
	}

	rows := make([][]interface{}, 0, n+2*half+1)
	rows = append(rows, header)
	for pos := -half; pos <= n-1+half; pos++ {
		row := make([]interface{}, n+1)
		row[0] = pos
		for j := 0; j < n; j++ {
			lo, hi := j-half, j+half
			if pos < lo || pos > hi {
				continue // nil cell: row alignment gap
			}
			v := columns[j][pos-lo]
			if v.IsMissing() {
				row[j+1] = missingFill
				continue
			}
			f, _ := v.Float64()
			row[j+1] = cellValue(f)
		}
		rows = append(rows, row)
	}

	return rows
}

// seriesCells renders the reduced sequence as a two-column table with the
// given value-column label.
func seriesCells(output []float64, label string) [][]interface{} {
	rows := make([][]interface{}, 0, len(output)+1)
	rows = append(rows, []interface{}{"position", label})
	for i, v := range output {
		rows = append(rows, []interface{}{i, cellValue(v)})
	}
	return rows
}

// cellValue keeps numeric cells numeric and renders NaN as text, since
// spreadsheet number cells cannot hold it.
func cellValue(v float64) interface{} {
	if math.IsNaN(v) {
		return "NaN"
	}
	return v
}

// csvRecords flattens a cell table into CSV records: nil cells and empty
// strings become empty fields, numbers render in compact form.
func csvRecords(cells [][]interface{}) [][]string {
	records := make([][]string, len(cells))
	for i, row := range cells {
		record := make([]string, len(row))
		for j, c := range row {
			switch v := c.(type) {
			case nil:
				record[j] = ""
			case string:
				record[j] = v
			case int:
				record[j] = strconv.Itoa(v)
			case float64:
				record[j] = strconv.FormatFloat(v, 'g', -1, 64)
			default:
				record[j] = fmt.Sprint(v)
			}
		}
		records[i] = record
	}
	return records
}
