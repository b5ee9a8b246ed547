package weighslide_test

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teese/weighslide"
	"github.com/teese/weighslide/dataset"
	"github.com/teese/weighslide/report"
	"github.com/teese/weighslide/window"
)

// writeWaveCSV builds the noisy-wave fixture as a multi-column CSV with an
// index column, mirroring a typical exported measurement table.
func writeWaveCSV(t *testing.T, dir string) string {
	t.Helper()
	noisy := dataset.NoisyWave(48, 3)
	var b strings.Builder
	b.WriteString(",wave,noisy wave\n")
	for i, v := range noisy {
		base := 1.0
		if i%6 >= 3 {
			base = 3.0
		}
		fmt.Fprintf(&b, "%d,%g,%g\n", i, base, v)
	}
	path := filepath.Join(dir, "wave.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

// TestRun_EndToEnd drives the whole pipeline over a 48-value noisy wave
// with the every-sixth-position averaging window and checks that all five
// artifacts land under weighslide_output with the truncated base name.
func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	infile := writeWaveCSV(t, dir)

	spec, err := window.ParseSpec("9xxxxx9xxxxx9xxxxx9xxxxx9xxxxx9xxxxx9")
	require.NoError(t, err)

	var progressed int
	cfg := weighslide.DefaultConfig()
	cfg.Name = "wavetest"
	cfg.Read.Column = "noisy wave"
	cfg.Overwrite = true
	cfg.Progress = func(done, total int) { progressed = done }

	res, err := weighslide.Run(testCtx(t), infile, spec, window.Mean, &cfg)
	require.NoError(t, err)

	base := "wavetest9xxxxx9xxxxx9xxxxx9x"
	outDir := filepath.Join(dir, "weighslide_output")
	for _, name := range []string{
		base + ".xlsx",
		base + ".png",
		base + "_mean.csv",
		base + "_sliced.csv",
		base + "_mult.csv",
	} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}

	assert.Equal(t, 48, progressed)
	assert.Len(t, res.Window.Output, 48)
	assert.Equal(t, "noisy wave", res.Series.Name)
	assert.Equal(t, outDir, res.Paths.Dir)

	// All weights are 1.0, so every mean stays inside the data range.
	mn, mx := res.Series.Values[0], res.Series.Values[0]
	for _, v := range res.Series.Values {
		mn = math.Min(mn, v)
		mx = math.Max(mx, v)
	}
	for i, v := range res.Window.Output {
		assert.GreaterOrEqual(t, v, mn, "position %d", i)
		assert.LessOrEqual(t, v, mx, "position %d", i)
	}

	// A rerun without overwrite refuses to clobber the artifacts.
	cfg.Overwrite = false
	_, err = weighslide.Run(testCtx(t), infile, spec, window.Mean, &cfg)
	assert.ErrorIs(t, err, report.ErrOutputExists)
}

func TestRun_ColumnRequired(t *testing.T) {
	infile := writeWaveCSV(t, t.TempDir())

	_, err := weighslide.Run(testCtx(t), infile, window.StringSpec("494"), window.Mean, nil)
	assert.ErrorIs(t, err, dataset.ErrColumnRequired)
}

// Validation failures surface before anything is written.
func TestRun_InvalidWindowLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	infile := writeWaveCSV(t, dir)

	cfg := weighslide.DefaultConfig()
	cfg.Read.Column = "noisy wave"

	_, err := weighslide.Run(testCtx(t), infile, window.StringSpec("44"), window.Mean, &cfg)
	assert.ErrorIs(t, err, window.ErrEvenLength)
	assert.NoDirExists(t, filepath.Join(dir, "weighslide_output"))
}

func TestRun_UnknownStatistic(t *testing.T) {
	infile := writeWaveCSV(t, t.TempDir())

	cfg := weighslide.DefaultConfig()
	cfg.Read.Column = "noisy wave"

	_, err := weighslide.Run(testCtx(t), infile, window.StringSpec("9"), window.Statistic(42), &cfg)
	assert.ErrorIs(t, err, window.ErrUnknownStatistic)
}

func TestRun_MissingInput(t *testing.T) {
	_, err := weighslide.Run(testCtx(t), filepath.Join(t.TempDir(), "absent.csv"), window.StringSpec("9"), window.Mean, nil)
	assert.Error(t, err)
}
