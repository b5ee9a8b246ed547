package report

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/teese/weighslide/window"
)

// Filename building blocks shared by all artifacts of a run.
const (
	outputDirName = "weighslide_output"

	maxNameLen  = 20 // dataset-name share of the base name
	maxTokenLen = 20 // window-token share of the base name

	suffixSliced   = "_sliced"
	suffixWeighted = "_mult"
	extCSV         = ".csv"
	extWorkbook    = ".xlsx"
	extFigure      = ".png"
)

// Paths holds the five output locations of one run.
type Paths struct {
	// Dir is the weighslide_output directory next to the input file.
	Dir string

	// Workbook is the combined .xlsx with all three sheets.
	Workbook string

	// Sliced and Weighted are the staggered diagnostic tables as CSV.
	Sliced   string
	Weighted string

	// Series is the reduced output sequence as CSV, suffixed with the
	// statistic name.
	Series string

	// Figure is the two-line comparison plot as PNG.
	Figure string
}

// OutputPaths derives the artifact paths for a run over infile. An empty
// name falls back to the input file name without its extension. Both the
// name and the window token are truncated to 20 characters, so repeated
// runs with long names collapse onto the same base.
func OutputPaths(infile, name string, spec window.Spec, statistic window.Statistic) Paths {
	if name == "" {
		base := filepath.Base(infile)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	var token string
	if spec != nil {
		token = spec.Token()
	}

	dir := filepath.Join(filepath.Dir(infile), outputDirName)
	stem := filepath.Join(dir, truncate(name, maxNameLen)+truncate(token, maxTokenLen))

	return Paths{
		Dir:      dir,
		Workbook: stem + extWorkbook,
		Sliced:   stem + suffixSliced + extCSV,
		Weighted: stem + suffixWeighted + extCSV,
		Series:   stem + "_" + statistic.String() + extCSV,
		Figure:   stem + extFigure,
	}
}

// All lists the five output files, workbook first.
func (p Paths) All() []string {
	return []string{p.Workbook, p.Sliced, p.Weighted, p.Series, p.Figure}
}

// Existing returns the subset of All that is already present on disk.
func (p Paths) Existing() []string {
	var hits []string
	for _, path := range p.All() {
		if _, err := os.Stat(path); err == nil {
			hits = append(hits, path)
		}
	}
	return hits
}

// CheckOverwrite fails with ErrOutputExists when a previous run left files
// in place and overwrite is unset.
func (p Paths) CheckOverwrite(overwrite bool) error {
	if overwrite {
		return nil
	}
	if hits := p.Existing(); len(hits) > 0 {
		return wrapFmt(ErrOutputExists, "%s; enable overwrite to replace", strings.Join(hits, ", "))
	}
	return nil
}

// EnsureDir creates the output directory if needed.
func (p Paths) EnsureDir() error {
	return os.MkdirAll(p.Dir, 0o755)
}

// truncate cuts s to at most max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
