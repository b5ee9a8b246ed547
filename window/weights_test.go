package window_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teese/weighslide/window"
)

// fakeSpec stands in for an unsupported Spec implementation.
type fakeSpec struct{}

func (fakeSpec) Token() string { return "fake" }

func TestParseSpec_StringForm(t *testing.T) {
	spec, err := window.ParseSpec("493x")
	require.NoError(t, err)
	assert.Equal(t, window.StringSpec("493x"), spec)
	assert.Equal(t, "493x", spec.Token())
}

func TestParseSpec_ListForm(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want window.ListSpec
	}{
		{"plain", "[2,4,2]", window.ListSpec{window.Num(2), window.Num(4), window.Num(2)}},
		{"with_ignore", "[2,x,2]", window.ListSpec{window.Num(2), window.None(), window.Num(2)}},
		{"spaced", "[ 2 , x , 2 ]", window.ListSpec{window.Num(2), window.None(), window.Num(2)}},
		{"floats", "[0.5,1.0,0.5]", window.ListSpec{window.Num(0.5), window.Num(1.0), window.Num(0.5)}},
		{"negative", "[-1,0,-1]", window.ListSpec{window.Num(-1), window.Num(0), window.Num(-1)}},
		{"empty", "[]", window.ListSpec{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := window.ParseSpec(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, spec)
		})
	}
}

func TestParseSpec_Invalid(t *testing.T) {
	for _, raw := range []string{"[2,x", "[2,q,2]", "[1,,1]"} {
		t.Run(raw, func(t *testing.T) {
			_, err := window.ParseSpec(raw)
			assert.ErrorIs(t, err, window.ErrInvalidSpec)
		})
	}
}

func TestBuildWeights_DigitString(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []window.Value
	}{
		{"all_digits", "494", []window.Value{window.Num(0.5), window.Num(1.0), window.Num(0.5)}},
		{"centre_ignored", "4x4", []window.Value{window.Num(0.5), window.None(), window.Num(0.5)}},
		{"extremes", "9x9", []window.Value{window.Num(1.0), window.None(), window.Num(1.0)}},
		{"zero_digit", "0", []window.Value{window.Num(0.1)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := window.BuildWeights(window.StringSpec(tc.spec), false)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuildWeights_ListPassthrough(t *testing.T) {
	src := window.ListSpec{window.Num(2), window.None(), window.Num(4)}
	got, err := window.BuildWeights(src, false)
	require.NoError(t, err)
	assert.Equal(t, []window.Value{window.Num(2), window.None(), window.Num(4)}, got)

	// The returned vector must not alias the caller's spec.
	src[0] = window.Num(99)
	assert.Equal(t, window.Num(2), got[0])
}

// The two spec forms describe the same window: "9x9" and [1,x,1] must build
// identical weight vectors.
func TestBuildWeights_FormEquivalence(t *testing.T) {
	fromString, err := window.BuildWeights(window.StringSpec("9x9"), false)
	require.NoError(t, err)
	fromList, err := window.BuildWeights(window.ListSpec{window.Num(1), window.None(), window.Num(1)}, false)
	require.NoError(t, err)
	assert.Equal(t, fromString, fromList)
}

func TestBuildWeights_Validation(t *testing.T) {
	tests := []struct {
		name      string
		spec      window.Spec
		allowLong bool
		wantErr   error
	}{
		{"bad_rune", window.StringSpec("4a4"), false, window.ErrInvalidSpec},
		{"unicode_rune", window.StringSpec("4é4"), false, window.ErrInvalidSpec},
		{"empty_string", window.StringSpec(""), false, window.ErrEmptyWindow},
		{"empty_list", window.ListSpec{}, false, window.ErrEmptyWindow},
		{"even_string", window.StringSpec("44"), false, window.ErrEvenLength},
		{"even_list", window.ListSpec{window.Num(1), window.Num(1)}, false, window.ErrEvenLength},
		{"too_long", window.StringSpec(strings.Repeat("5", 101)), false, window.ErrWindowTooLong},
		{"nil_spec", nil, false, window.ErrInvalidSpec},
		{"foreign_spec", fakeSpec{}, false, window.ErrInvalidSpec},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := window.BuildWeights(tc.spec, tc.allowLong)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestBuildWeights_LongWindowOverride(t *testing.T) {
	long := window.StringSpec(strings.Repeat("5", 101))

	_, err := window.BuildWeights(long, false)
	require.ErrorIs(t, err, window.ErrWindowTooLong)

	got, err := window.BuildWeights(long, true)
	require.NoError(t, err)
	assert.Len(t, got, 101)
	assert.Equal(t, window.Num(0.6), got[0])
}

func TestValue_Mul(t *testing.T) {
	prod := window.Num(3).Mul(window.Num(0.5))
	f, ok := prod.Float64()
	require.True(t, ok)
	assert.InDelta(t, 1.5, f, 1e-12)

	assert.True(t, window.Num(3).Mul(window.None()).IsMissing())
	assert.True(t, window.None().Mul(window.Num(3)).IsMissing())
	assert.True(t, window.None().Mul(window.None()).IsMissing())
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "0.5", window.Num(0.5).String())
	assert.Equal(t, "x", window.None().String())
}
