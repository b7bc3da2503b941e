package pipeline

import (
	"errors"
	"os"

	"acsgen/internal"
)

// ErrNoMatches is returned when the row pattern finds nothing in the source
// page. No output file is written in that case.
var ErrNoMatches = errors.New("no matches found in source file, check formatting")

// RunConfig is the full configuration of one pipeline run. Output targets
// left empty are not produced.
type RunConfig struct {
	SourcePath string
	CSVPath    string
	CodePath   string
	XLSXPath   string
	Indent     int
	Overwrite  bool

	// TypeName and Package shape the generated Go source.
	TypeName string
	Package  string
}

type RunResult struct {
	Records []internal.VariableRecord
	Written []string
	Skipped []string
}

// Run reads the source page, extracts the variable records and emits each
// requested target. An existing destination is skipped unless Overwrite is
// set; a skip is not a failure.
func Run(cfg RunConfig) (RunResult, error) {
	blob, err := os.ReadFile(cfg.SourcePath)
	if err != nil {
		return RunResult{}, err
	}

	records, err := Extract(string(blob), cfg.Indent)
	if err != nil {
		return RunResult{}, err
	}
	if len(records) == 0 {
		return RunResult{}, ErrNoMatches
	}

	res := RunResult{Records: records}
	targets := []struct {
		path string
		emit func(string) error
	}{
		{cfg.CSVPath, func(p string) error { return EmitCSV(records, p) }},
		{cfg.CodePath, func(p string) error { return EmitCode(records, cfg.TypeName, cfg.Package, p) }},
		{cfg.XLSXPath, func(p string) error { return EmitXLSX(records, p) }},
	}
	for _, target := range targets {
		if target.path == "" {
			continue
		}
		if fileExists(target.path) && !cfg.Overwrite {
			res.Skipped = append(res.Skipped, target.path)
			continue
		}
		if err := target.emit(target.path); err != nil {
			return res, err
		}
		res.Written = append(res.Written, target.path)
	}

	return res, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
