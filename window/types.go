package window

import "strconv"

// Guard limits for window and input lengths. MaxWindowLen and MaxInputLen
// protect against accidental misuse of the unoptimised O(N·L) loop; both can
// be lifted through Options.
const (
	// MaxWindowLen is the largest window length accepted without
	// Options.AllowLongWindow.
	MaxWindowLen = 100

	// WarnInputLen is the input length above which Slide emits a non-fatal
	// performance warning through Options.Warn.
	WarnInputLen = 1000

	// MaxInputLen is the largest input length accepted without
	// Options.AllowLargeInput.
	MaxInputLen = 10000

	// IgnoreRune marks a window position excluded from the reduction, in
	// both the string form ("4x4") and the list syntax ("[2,x,2]").
	IgnoreRune = 'x'
)

// Value is an explicit optional float64: either a concrete number or the
// missing sentinel. Missing values propagate through multiplication and are
// excluded from reductions rather than counted as zero.
type Value struct {
	val float64
	ok  bool
}

// Num returns a Value holding the concrete number v.
func Num(v float64) Value { return Value{val: v, ok: true} }

// None returns the missing sentinel. The zero Value is missing as well.
func None() Value { return Value{} }

// Float64 returns the held number and true, or (0, false) when missing.
func (v Value) Float64() (float64, bool) { return v.val, v.ok }

// IsMissing reports whether v is the missing sentinel.
func (v Value) IsMissing() bool { return !v.ok }

// Mul returns the element-wise product of v and o. A missing operand on
// either side yields missing, not zero.
func (v Value) Mul(o Value) Value {
	if !v.ok || !o.ok {
		return Value{}
	}

	return Value{val: v.val * o.val, ok: true}
}

// String renders the number in compact form, or "x" when missing.
func (v Value) String() string {
	if !v.ok {
		return string(IgnoreRune)
	}

	return strconv.FormatFloat(v.val, 'g', -1, 64)
}

// Spec is a window specification in one of its two forms: the compact digit
// string (StringSpec) or the explicit weight list (ListSpec). Passing any
// other implementation to BuildWeights or Slide fails with ErrInvalidSpec.
type Spec interface {
	// Token returns the filename-safe token identifying this spec: the raw
	// string for StringSpec, empty for ListSpec (an arbitrary weight list
	// has no compact representation suitable for file names).
	Token() string
}

// StringSpec is the compact window form: one rune per position, each either
// a digit 0–9 mapped to the weight (digit+1)/10, or IgnoreRune mapped to the
// missing sentinel. "494" becomes [0.5, 1.0, 0.5]; "4x4" becomes
// [0.5, x, 0.5].
type StringSpec string

// Token returns the spec string itself.
func (s StringSpec) Token() string { return string(s) }

// ListSpec is the explicit window form: weights pass through unchanged and
// missing entries stay missing. [2, x, 2] weighs the neighbours double and
// skips the centre.
type ListSpec []Value

// Token returns the empty string; list specs carry no filename token.
func (ListSpec) Token() string { return "" }

// Statistic selects the reduction applied to the non-missing entries of a
// weighted slice.
type Statistic int

const (
	// Mean is the arithmetic mean. With no non-missing entries the result
	// is NaN.
	Mean Statistic = iota

	// Std is the sample standard deviation (n−1 divisor). With fewer than
	// two non-missing entries the result is NaN.
	Std

	// Sum adds the non-missing entries; missing entries contribute nothing,
	// as if absent rather than zero. With no non-missing entries the result
	// is 0.
	Sum
)

// ParseStatistic converts a selector string ("mean", "std" or "sum") into a
// Statistic. Any other selector fails with ErrUnknownStatistic.
func ParseStatistic(s string) (Statistic, error) {
	switch s {
	case "mean":
		return Mean, nil
	case "std":
		return Std, nil
	case "sum":
		return Sum, nil
	}

	return 0, wrapFmt(ErrUnknownStatistic, "got %q", s)
}

// String returns the canonical selector string for s.
func (s Statistic) String() string {
	switch s {
	case Mean:
		return "mean"
	case Std:
		return "std"
	case Sum:
		return "sum"
	}

	return "statistic(" + strconv.Itoa(int(s)) + ")"
}

// valid reports whether s is one of the supported reductions.
func (s Statistic) valid() bool {
	switch s {
	case Mean, Std, Sum:
		return true
	}

	return false
}

// ProgressFunc receives the number of processed positions and the total
// after every position. Implementations must be cheap; Slide calls them
// inside the hot loop.
type ProgressFunc func(done, total int)

// Options configures Slide.
//
//   - AllowLongWindow lifts the MaxWindowLen guard.
//   - AllowLargeInput lifts the MaxInputLen guard. The loop is O(N·L),
//     unoptimised.
//   - Progress, when non-nil, is invoked once per processed position.
//   - Warn, when non-nil, receives the non-fatal performance warning for
//     inputs longer than WarnInputLen.
//
// The zero Options is ready to use; DefaultOptions returns it explicitly.
type Options struct {
	AllowLongWindow bool
	AllowLargeInput bool
	Progress        ProgressFunc
	Warn            func(msg string)
}

// DefaultOptions returns the production defaults: both guards active, no
// progress reporting, warnings discarded.
func DefaultOptions() Options { return Options{} }

// Result is the full product of one Slide call.
//
// Slices and Weighted are the per-position raw and weighted neighborhoods,
// kept for export and downstream inspection; the core contract is Weights
// and Output.
//
// The first and last (len(Weights)-1)/2 entries of Output are computed from
// boundary-truncated windows (their slices contain padding) and must not be
// read with the same confidence as interior entries.
type Result struct {
	// Weights is the numeric weight vector derived from the Spec, length L.
	Weights []Value

	// Slices holds the raw neighborhood per position, N rows of length L.
	// Out-of-range positions are missing.
	Slices [][]Value

	// Weighted holds the element-wise products per position, N rows of
	// length L. Missing propagates from either operand.
	Weighted [][]Value

	// Output is the reduced sequence, same length and ordering as the
	// input.
	Output []float64
}
