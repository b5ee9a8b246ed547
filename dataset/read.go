package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Series is a named one-dimensional sequence of numeric values.
type Series struct {
	// Name is the label of the selected column; empty for header-less
	// inputs.
	Name string

	// Values holds the data in file order.
	Values []float64
}

// Read loads a Series from the tabular file at path, dispatching on the
// file extension: ".csv" and ".txt" use the delimited-text reader, ".xlsx"
// and ".xlsm" the spreadsheet reader. Any other extension fails with
// ErrUnsupportedFormat.
//
// A single-column input yields that column. A multi-column input requires
// ReadOptions.Column, matched against the header row (or interpreted as a
// 0-based index when CSV.NoHeader is set). A nil opts is equivalent to
// DefaultReadOptions.
func Read(path string, opts *ReadOptions) (*Series, error) {
	o := DefaultReadOptions()
	if opts != nil {
		o = *opts
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		return readCSV(path, o)
	case ".xlsx", ".xlsm":
		return readExcel(path, o)
	default:
		return nil, wrapFmt(ErrUnsupportedFormat, "%q has extension %q", path, ext)
	}
}

func readCSV(path string, o ReadOptions) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	if o.CSV.Comma != 0 {
		r.Comma = o.CSV.Comma
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	return seriesFromTable(rows, !o.CSV.NoHeader, o.Column, path)
}

func readExcel(path string, o ReadOptions) (*Series, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	sheet := o.Excel.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s sheet %q: %w", path, sheet, err)
	}

	return seriesFromTable(rows, true, o.Column, path+"#"+sheet)
}

// seriesFromTable selects one column of a row-major string table and parses
// it into a Series. Row numbers in error messages are 1-based and count the
// header row.
func seriesFromTable(rows [][]string, hasHeader bool, column, src string) (*Series, error) {
	// Spreadsheet readers may report trailing blank rows; drop them.
	table := rows[:0:0]
	for _, row := range rows {
		if len(row) > 0 {
			table = append(table, row)
		}
	}
	if len(table) == 0 {
		return nil, wrapFmt(ErrNoData, "%s is empty", src)
	}

	width := len(table[0])
	var names []string
	data := table
	if hasHeader {
		names = table[0]
		data = table[1:]
	}
	if len(data) == 0 || width == 0 {
		return nil, wrapFmt(ErrNoData, "%s has no data rows", src)
	}

	idx, name, err := pickColumn(width, names, column, src)
	if err != nil {
		return nil, err
	}

	s := &Series{Name: name, Values: make([]float64, 0, len(data))}
	firstRow := 1
	if hasHeader {
		firstRow = 2
	}
	for i, row := range data {
		var cell string
		if idx < len(row) {
			cell = strings.TrimSpace(row[idx])
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, wrapFmt(ErrNotNumeric, "%s row %d: %q", src, firstRow+i, cell)
		}
		s.Values = append(s.Values, v)
	}

	return s, nil
}

// pickColumn resolves the column selection to an index and display name.
func pickColumn(width int, names []string, column, src string) (int, string, error) {
	colName := func(i int) string {
		if names != nil {
			return names[i]
		}
		return ""
	}

	if width == 1 {
		return 0, colName(0), nil
	}

	if column == "" {
		if names != nil {
			return 0, "", wrapFmt(ErrColumnRequired, "%s has columns: %s", src, strings.Join(names, ", "))
		}
		return 0, "", wrapFmt(ErrColumnRequired, "%s has %d columns", src, width)
	}

	if names != nil {
		for i, n := range names {
			if n == column {
				return i, n, nil
			}
		}
		return 0, "", wrapFmt(ErrColumnNotFound, "%q not in %s columns: %s", column, src, strings.Join(names, ", "))
	}

	// Header-less input: the selection is a 0-based column index.
	i, err := strconv.Atoi(column)
	if err != nil || i < 0 || i >= width {
		return 0, "", wrapFmt(ErrColumnNotFound, "%q is not a valid 0-based index for the %d columns of %s", column, width, src)
	}
	return i, "", nil
}
