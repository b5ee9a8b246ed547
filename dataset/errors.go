package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors for dataset loading. Callers branch with errors.Is;
// wrapped variants carry the offending path, cell or value.
var (
	// ErrUnsupportedFormat indicates a file extension outside the supported
	// set. The legacy binary .xls format is recognised but not readable;
	// convert such workbooks to .xlsx first.
	ErrUnsupportedFormat = errors.New("dataset: unsupported file format; want .csv, .txt, .xlsx or .xlsm")

	// ErrNoData indicates an input without any data rows or columns.
	ErrNoData = errors.New("dataset: no data found in input")

	// ErrColumnRequired indicates a multi-column input read without a
	// column selection.
	ErrColumnRequired = errors.New("dataset: input has multiple columns; select one with the column option")

	// ErrColumnNotFound indicates a column selection that matches no
	// column of the input.
	ErrColumnNotFound = errors.New("dataset: column not found")

	// ErrNotNumeric indicates a selected cell that does not parse as a
	// floating-point number.
	ErrNotNumeric = errors.New("dataset: value is not numeric")

	// ErrBadSequence indicates an inline raw sequence that does not parse
	// as a list of numbers.
	ErrBadSequence = errors.New("dataset: raw sequence cannot be parsed")
)

// wrapFmt attaches formatted context to a sentinel while keeping errors.Is
// matching intact.
func wrapFmt(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
