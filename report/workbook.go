package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/teese/weighslide/window"
)

// Workbook sheet names. The reduced series lands on "window_<statistic>".
const (
	defaultSheet  = "Sheet1"
	sheetSliced   = "orig_data_sliced"
	sheetWeighted = "data_multiplied"
	sheetPrefix   = "window_"
)

// WriteWorkbook persists all three result stages into one .xlsx: the
// staggered sliced table, the staggered weighted table, and the reduced
// series.
func WriteWorkbook(path string, res *window.Result, statistic window.Statistic) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, sheetSliced); err != nil {
		return fmt.Errorf("report: workbook %s: %w", path, err)
	}

	seriesSheet := sheetPrefix + statistic.String()
	sheets := []struct {
		name  string
		cells [][]interface{}
	}{
		{sheetSliced, staggeredCells(res.Slices, slicedFill)},
		{sheetWeighted, staggeredCells(res.Weighted, weightedFill)},
		{seriesSheet, seriesCells(res.Output, seriesSheet)},
	}
	for _, s := range sheets {
		if s.name != sheetSliced {
			if _, err := f.NewSheet(s.name); err != nil {
				return fmt.Errorf("report: workbook %s sheet %q: %w", path, s.name, err)
			}
		}
		if err := fillSheet(f, s.name, s.cells); err != nil {
			return fmt.Errorf("report: workbook %s sheet %q: %w", path, s.name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: save workbook %s: %w", path, err)
	}
	return nil
}

func fillSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}
