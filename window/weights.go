package window

import (
	"strconv"
	"strings"
)

// digitScale converts the 0–9 digit scale to the 0.1–1.0 weight range:
// weight = (digit+1)/digitScale.
const digitScale = 10

// ParseSpec interprets a raw command-line window argument. A leading '['
// selects the list syntax ("[2,x,2]": comma-separated floats or the ignore
// marker, optional closing bracket required); anything else is taken as the
// compact digit form ("393x393"). The returned Spec is syntactically parsed
// only; length rules are enforced by BuildWeights.
func ParseSpec(raw string) (Spec, error) {
	if !strings.HasPrefix(raw, "[") {
		return StringSpec(raw), nil
	}

	body := strings.TrimPrefix(raw, "[")
	body, closed := strings.CutSuffix(body, "]")
	if !closed {
		return nil, wrapFmt(ErrInvalidSpec, "list form %q is missing the closing bracket", raw)
	}
	if strings.TrimSpace(body) == "" {
		return ListSpec{}, nil
	}

	parts := strings.Split(body, ",")
	list := make(ListSpec, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == string(IgnoreRune) {
			list[i] = None()
			continue
		}
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, wrapFmt(ErrInvalidSpec, "list element %q at position %d is neither numeric nor %q", part, i, string(IgnoreRune))
		}
		list[i] = Num(f)
	}

	return list, nil
}

// BuildWeights converts a window specification into the numeric weight
// vector.
//
// String form: each rune is interpreted on its own: a digit d becomes the
// weight (d+1)/10 (so '0' → 0.1 and '9' → 1.0), IgnoreRune becomes the
// missing sentinel, and any other rune fails with ErrInvalidSpec.
//
// List form: numeric entries pass through unchanged; missing entries stay
// missing.
//
// Validation, in order: a nil or foreign Spec fails with ErrInvalidSpec;
// length 0 fails with ErrEmptyWindow; an even length fails with
// ErrEvenLength; a length above MaxWindowLen fails with ErrWindowTooLong
// unless allowLong is set.
//
// Complexity: O(L) time and memory.
func BuildWeights(spec Spec, allowLong bool) ([]Value, error) {
	var weights []Value

	switch s := spec.(type) {
	case StringSpec:
		weights = make([]Value, 0, len(s))
		for i, r := range s {
			switch {
			case r == IgnoreRune:
				weights = append(weights, None())
			case r >= '0' && r <= '9':
				weights = append(weights, Num(float64(r-'0'+1)/digitScale))
			default:
				return nil, wrapFmt(ErrInvalidSpec, "spec %q has rune %q at position %d; want a digit or %q", string(s), string(r), i, string(IgnoreRune))
			}
		}
	case ListSpec:
		// Copy so later mutation of the caller's slice cannot reach the
		// returned vector.
		weights = make([]Value, len(s))
		copy(weights, s)
	default:
		return nil, wrapFmt(ErrInvalidSpec, "spec is neither a digit string nor a value list, got %T", spec)
	}

	switch l := len(weights); {
	case l == 0:
		return nil, ErrEmptyWindow
	case l%2 == 0:
		return nil, wrapFmt(ErrEvenLength, "length %d", l)
	case l > MaxWindowLen && !allowLong:
		return nil, wrapFmt(ErrWindowTooLong, "length %d exceeds %d", l, MaxWindowLen)
	}

	return weights, nil
}
