package dataset

import (
	"strconv"
	"strings"
)

// ParseRaw interprets an inline data sequence typed on the command line:
// comma-separated numbers with or without surrounding brackets, e.g.
// "[1,3,5,7,2,4]" or "1.1,3.4,5.2". An empty or malformed sequence fails
// with ErrBadSequence.
func ParseRaw(raw string) ([]float64, error) {
	body := strings.TrimSpace(raw)
	if strings.HasPrefix(body, "[") {
		inner, closed := strings.CutSuffix(strings.TrimPrefix(body, "["), "]")
		if !closed {
			return nil, wrapFmt(ErrBadSequence, "%q is missing the closing bracket", raw)
		}
		body = inner
	}
	if strings.TrimSpace(body) == "" {
		return nil, wrapFmt(ErrBadSequence, "%q holds no values", raw)
	}

	parts := strings.Split(body, ",")
	out := make([]float64, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, wrapFmt(ErrBadSequence, "element %q at position %d is not numeric", part, i)
		}
		out[i] = v
	}

	return out, nil
}
