package window

import (
	"errors"
	"fmt"
)

// Sentinel errors for window operations. Callers branch on semantics with
// errors.Is; implementations may attach context via %w wrapping but never
// replace a sentinel with a formatted string.
var (
	// ErrInvalidSpec indicates the window specification is neither a digit
	// string nor a value list, or contains an element that is neither
	// numeric nor the ignore marker.
	ErrInvalidSpec = errors.New("window: invalid window specification")

	// ErrEmptyWindow indicates a window specification of length zero.
	ErrEmptyWindow = errors.New("window: window length is zero")

	// ErrEvenLength indicates an even window length. Only odd lengths are
	// accepted, so that the reduction centres on a single unambiguous
	// original position.
	ErrEvenLength = errors.New("window: window length is even; only odd lengths are accepted")

	// ErrWindowTooLong indicates a window longer than MaxWindowLen without
	// the AllowLongWindow override. The limit guards against accidental
	// misuse, not an algorithmic ceiling.
	ErrWindowTooLong = errors.New("window: window length exceeds the configured maximum")

	// ErrUnknownStatistic indicates a statistic selector outside
	// {Mean, Std, Sum}.
	ErrUnknownStatistic = errors.New("window: unknown statistic; want mean, std or sum")

	// ErrEmptyInput indicates an empty input sequence.
	ErrEmptyInput = errors.New("window: input sequence is empty")

	// ErrInputTooLarge indicates an input longer than MaxInputLen without
	// the AllowLargeInput override. The sliding loop is O(N·L) and has not
	// been optimised for large datasets.
	ErrInputTooLarge = errors.New("window: input sequence exceeds the configured maximum")

	// ErrSliceLength indicates a slice whose length diverged from the
	// weight-vector length. This is an internal invariant violation, an
	// implementation bug rather than a user error, and should be
	// unreachable.
	ErrSliceLength = errors.New("window: slice length diverged from window length")
)

// wrapFmt attaches formatted context to a sentinel while keeping errors.Is
// matching intact.
func wrapFmt(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
