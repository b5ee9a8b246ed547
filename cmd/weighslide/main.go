// Command weighslide runs sliding window analysis from the command line.
//
// Usage:
//
//	weighslide [flags] WINDOW [STATISTIC]
//
// WINDOW is either a digit/x string ("393x393") or a bracketed weight list
// ("[0.5,1.0,0.5]"). STATISTIC is mean, std or sum (default mean). Data
// comes from -i (CSV/Excel file, results written next to it) or -r (inline
// sequence, results printed to stdout).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/teese/weighslide"
	"github.com/teese/weighslide/dataset"
	"github.com/teese/weighslide/report"
	"github.com/teese/weighslide/window"
)

// Exit codes, one per failure family, so scripts can branch on the cause.
const (
	exitOK               = 0
	exitFailure          = 1
	exitUsage            = 2
	exitInvalidSpec      = 3
	exitEmptyWindow      = 4
	exitEvenWindow       = 5
	exitWindowTooLong    = 6
	exitUnknownStatistic = 7
	exitInputTooLarge    = 8
	exitSliceMismatch    = 9
	exitDataset          = 10
	exitOutputExists     = 11
)

// progressEvery sets the dot cadence for long file runs.
const progressEvery = 100

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("weighslide", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		flagRaw        string
		flagInfile     string
		flagName       string
		flagColumn     string
		flagOverwrite  bool
		flagSheet      string
		flagDelimiter  string
		flagNoHeader   bool
		flagLongWindow bool
		flagLargeInput bool
		flagQuiet      bool
		flagVerbose    bool
	)
	fs.StringVar(&flagRaw, "r", "", "inline data sequence, e.g. \"[1,3,5,7,2,4]\"; results print to stdout")
	fs.StringVar(&flagInfile, "i", "", "path to a CSV or Excel file with the original data")
	fs.StringVar(&flagName, "n", "", "dataset name used in output file names (at most 20 characters survive)")
	fs.StringVar(&flagColumn, "c", "", "column holding the data, by header name (0-based index with -csv-no-header)")
	fs.BoolVar(&flagOverwrite, "o", false, "overwrite output files of an earlier run")
	fs.StringVar(&flagSheet, "sheet", "", "worksheet to read from an Excel input (default: first sheet)")
	fs.StringVar(&flagDelimiter, "csv-delimiter", "", "CSV field delimiter (single character, default ',')")
	fs.BoolVar(&flagNoHeader, "csv-no-header", false, "treat the first CSV row as data, not column names")
	fs.BoolVar(&flagLongWindow, "allow-long-window", false, "accept windows longer than 100 positions")
	fs.BoolVar(&flagLargeInput, "allow-large-input", false, "accept inputs longer than 10000 values (use at your own risk)")
	fs.BoolVar(&flagQuiet, "q", false, "log warnings and errors only")
	fs.BoolVar(&flagVerbose, "v", false, "log debug details")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: weighslide [flags] WINDOW [STATISTIC]\n\n"+
			"WINDOW   digit/x string (e.g. 393x393) or bracketed weight list (e.g. [0.5,1.0,0.5])\n"+
			"STATISTIC  mean, std or sum (default mean)\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	logger := newLogger(stderr, flagQuiet, flagVerbose)
	ctx := logger.WithContext(context.Background())

	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return exitUsage
	}
	spec, err := window.ParseSpec(fs.Arg(0))
	if err != nil {
		logger.Error().Err(err).Msg("invalid window")
		return exitCode(err)
	}

	statName := "mean"
	if fs.NArg() == 2 {
		statName = fs.Arg(1)
	}
	statistic, err := window.ParseStatistic(statName)
	if err != nil {
		logger.Error().Err(err).Msg("invalid statistic")
		return exitCode(err)
	}

	switch {
	case flagRaw != "" && flagInfile != "":
		fmt.Fprintln(stderr, "weighslide: -i and -r are mutually exclusive; pass one data source")
		return exitUsage
	case flagRaw == "" && flagInfile == "":
		fs.Usage()
		return exitUsage
	}

	opts := window.DefaultOptions()
	opts.AllowLongWindow = flagLongWindow
	opts.AllowLargeInput = flagLargeInput

	if flagRaw != "" {
		if err := runRaw(logger, stdout, flagRaw, spec, statistic, opts); err != nil {
			logger.Error().Err(err).Msg("weighslide failed")
			return exitCode(err)
		}
		return exitOK
	}

	cfg := weighslide.DefaultConfig()
	cfg.Name = flagName
	cfg.Overwrite = flagOverwrite
	cfg.AllowLongWindow = flagLongWindow
	cfg.AllowLargeInput = flagLargeInput
	cfg.Read.Column = flagColumn
	cfg.Read.Excel.Sheet = flagSheet
	cfg.Read.CSV.NoHeader = flagNoHeader
	if flagDelimiter != "" {
		runes := []rune(flagDelimiter)
		if len(runes) != 1 {
			fmt.Fprintf(stderr, "weighslide: -csv-delimiter wants a single character, got %q\n", flagDelimiter)
			return exitUsage
		}
		cfg.Read.CSV.Comma = runes[0]
	}
	cfg.Progress = func(done, total int) {
		if total > progressEvery && done%progressEvery == 0 {
			fmt.Fprint(stderr, ".")
		}
	}

	res, err := weighslide.Run(ctx, flagInfile, spec, statistic, &cfg)
	if err != nil {
		logger.Error().Err(err).Msg("weighslide failed")
		return exitCode(err)
	}
	fmt.Fprintf(stdout, "output written to %s\n", res.Paths.Dir)
	return exitOK
}

// runRaw slides the window over an inline sequence and prints the reduced
// values one per line, no files involved.
func runRaw(logger zerolog.Logger, stdout io.Writer, raw string, spec window.Spec, statistic window.Statistic, opts window.Options) error {
	data, err := dataset.ParseRaw(raw)
	if err != nil {
		return err
	}

	opts.Warn = func(msg string) {
		logger.Warn().Int("values", len(data)).Msg(msg)
	}
	res, err := window.Slide(data, spec, statistic, &opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Weighslide output:")
	for _, v := range res.Output {
		fmt.Fprintln(stdout, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return nil
}

func newLogger(w io.Writer, quiet, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case quiet:
		level = zerolog.WarnLevel
	case verbose:
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

// exitCode maps a failure onto its exit family via sentinel matching.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, window.ErrInvalidSpec):
		return exitInvalidSpec
	case errors.Is(err, window.ErrEmptyWindow):
		return exitEmptyWindow
	case errors.Is(err, window.ErrEvenLength):
		return exitEvenWindow
	case errors.Is(err, window.ErrWindowTooLong):
		return exitWindowTooLong
	case errors.Is(err, window.ErrUnknownStatistic):
		return exitUnknownStatistic
	case errors.Is(err, window.ErrInputTooLarge):
		return exitInputTooLarge
	case errors.Is(err, window.ErrSliceLength):
		return exitSliceMismatch
	case errors.Is(err, report.ErrOutputExists):
		return exitOutputExists
	case errors.Is(err, window.ErrEmptyInput),
		errors.Is(err, dataset.ErrUnsupportedFormat),
		errors.Is(err, dataset.ErrNoData),
		errors.Is(err, dataset.ErrColumnRequired),
		errors.Is(err, dataset.ErrColumnNotFound),
		errors.Is(err, dataset.ErrNotNumeric),
		errors.Is(err, dataset.ErrBadSequence):
		return exitDataset
	default:
		return exitFailure
	}
}
