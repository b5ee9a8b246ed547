package weighslide

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/teese/weighslide/dataset"
	"github.com/teese/weighslide/report"
	"github.com/teese/weighslide/window"
)

// Config collects the optional knobs of a Run.
type Config struct {
	// Name labels the run and prefixes all output file names (truncated
	// to 20 characters). Empty means the input file name without its
	// extension.
	Name string

	// Overwrite allows replacing output files left by an earlier run.
	Overwrite bool

	// ShowFigure is reserved for an interactive figure display; the PNG
	// is always written regardless.
	ShowFigure bool

	// AllowLongWindow lifts the window length guard, AllowLargeInput the
	// input length guard. See the window package for the limits.
	AllowLongWindow bool
	AllowLargeInput bool

	// Read configures dataset loading (column selection, delimiter,
	// worksheet).
	Read dataset.ReadOptions

	// Progress, when non-nil, is invoked once per processed position.
	Progress window.ProgressFunc
}

// DefaultConfig returns the production defaults: no overwrite, both length
// guards active, default read options.
func DefaultConfig() Config { return Config{} }

// RunResult bundles everything a Run produced.
type RunResult struct {
	// Series is the loaded input sequence.
	Series *dataset.Series

	// Window holds the full reduction result, diagnostic tables included.
	Window *window.Result

	// Paths locates the five written artifacts.
	Paths report.Paths
}

// Run executes the full weighslide pipeline over the dataset in infile:
// load the series, slide the window across it, and persist the staggered
// slice tables, the reduced series, the combined workbook and the
// comparison figure into a weighslide_output directory next to infile.
//
// Existing outputs of an earlier run abort with report.ErrOutputExists
// unless Config.Overwrite is set; the check runs before any computation.
// The logger is taken from ctx (zerolog.Ctx), so callers control verbosity
// and destination. A nil cfg is equivalent to DefaultConfig.
func Run(ctx context.Context, infile string, spec window.Spec, statistic window.Statistic, cfg *Config) (*RunResult, error) {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}

	logger := zerolog.Ctx(ctx).With().Str("infile", infile).Logger()
	logger.Info().Msg("starting weighslide analysis")

	series, err := dataset.Read(infile, &c.Read)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("values", len(series.Values)).Str("column", series.Name).Msg("dataset loaded")

	paths := report.OutputPaths(infile, c.Name, spec, statistic)
	if err := paths.CheckOverwrite(c.Overwrite); err != nil {
		return nil, err
	}

	opts := window.DefaultOptions()
	opts.AllowLongWindow = c.AllowLongWindow
	opts.AllowLargeInput = c.AllowLargeInput
	opts.Progress = c.Progress
	opts.Warn = func(msg string) {
		logger.Warn().Int("values", len(series.Values)).Msg(msg)
	}

	res, err := window.Slide(series.Values, spec, statistic, &opts)
	if err != nil {
		return nil, err
	}

	if err := paths.EnsureDir(); err != nil {
		return nil, fmt.Errorf("weighslide: create %s: %w", paths.Dir, err)
	}
	if err := report.WriteSlicedCSV(paths.Sliced, res); err != nil {
		return nil, err
	}
	if err := report.WriteWeightedCSV(paths.Weighted, res); err != nil {
		return nil, err
	}
	if err := report.WriteSeriesCSV(paths.Series, res.Output, statistic); err != nil {
		return nil, err
	}
	logger.Debug().Msg("csv tables written")

	if err := report.WriteWorkbook(paths.Workbook, res, statistic); err != nil {
		return nil, err
	}
	if err := report.SavePlot(paths.Figure, series.Values, res.Output, spec, statistic); err != nil {
		return nil, err
	}

	logger.Info().Str("dir", paths.Dir).Msg("weighslide analysis finished")

	return &RunResult{Series: series, Window: res, Paths: paths}, nil
}
