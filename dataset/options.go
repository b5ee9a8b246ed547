package dataset

// CSVOptions configures the delimited-text reader.
type CSVOptions struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune

	// NoHeader marks the first row as data rather than column names. With
	// NoHeader set, ReadOptions.Column selects by 0-based index instead of
	// by name.
	NoHeader bool
}

// ExcelOptions configures the spreadsheet reader.
type ExcelOptions struct {
	// Sheet names the worksheet to read. Empty means the first sheet of
	// the workbook.
	Sheet string
}

// ReadOptions configures Read.
type ReadOptions struct {
	// Column selects the data column of a multi-column input, by header
	// name (or by 0-based index when CSV.NoHeader is set). Single-column
	// inputs ignore it.
	Column string

	CSV   CSVOptions
	Excel ExcelOptions
}

// DefaultReadOptions returns the production defaults: comma-delimited text
// with a header row, first worksheet, sole-column selection.
func DefaultReadOptions() ReadOptions { return ReadOptions{} }
