package report

import (
	"errors"
	"fmt"
)

// ErrOutputExists indicates that at least one output file of a previous run
// is already in place and overwriting was not requested.
var ErrOutputExists = errors.New("report: output files already exist")

// wrapFmt attaches formatted context to a sentinel while keeping errors.Is
// matching intact.
func wrapFmt(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
