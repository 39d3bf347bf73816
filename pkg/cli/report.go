package cli

import (
	"sort"

	mcerrors "openatmos/mechconf/pkg/mechconf/errors"
	"openatmos/mechconf/pkg/mechconf/model"
)

// ErrorReport is the printable form of one mechanism error.
type ErrorReport struct {
	Type       string `json:"type"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	File       string `json:"file,omitempty"`
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Field      string `json:"field,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Context    string `json:"context,omitempty"`
}

// FileReport is the outcome of parsing one mechanism file.
type FileReport struct {
	Path      string         `json:"path"`
	Valid     bool           `json:"valid"`
	Name      string         `json:"name,omitempty"`
	Version   string         `json:"version,omitempty"`
	Species   []string       `json:"species,omitempty"`
	Phases    []PhaseReport  `json:"phases,omitempty"`
	Reactions int            `json:"reactions"`
	Variants  map[string]int `json:"variants,omitempty"`
	Errors    []ErrorReport  `json:"errors,omitempty"`
}

// PhaseReport lists the members of one phase.
type PhaseReport struct {
	Name    string   `json:"name"`
	Species []string `json:"species"`
}

// LintReport is the outcome of linting a set of files.
type LintReport struct {
	Files   []FileReport `json:"files"`
	Valid   int          `json:"valid"`
	Invalid int          `json:"invalid"`
	Errors  int          `json:"errors"`
}

// NewFileReport summarizes the result of parsing path. Errors that are
// not mechanism errors are reported with type "io".
func NewFileReport(path string, m *model.Mechanism, err error) FileReport {
	report := FileReport{Path: path}

	if err != nil {
		errs := mcerrors.List(err)
		if len(errs) == 0 {
			report.Errors = []ErrorReport{{
				Type:    string(mcerrors.ErrorTypeIO),
				Message: err.Error(),
				File:    path,
			}}
			return report
		}
		for _, e := range errs {
			report.Errors = append(report.Errors, newErrorReport(e))
		}
		return report
	}

	report.Valid = true
	report.Name = m.Name()
	report.Version = m.Version().String()
	report.Reactions = m.ReactionCount()

	for _, s := range m.Species() {
		report.Species = append(report.Species, s.Name)
	}
	for _, p := range m.Phases() {
		report.Phases = append(report.Phases, PhaseReport{Name: p.Name, Species: p.Species})
	}

	report.Variants = make(map[string]int)
	for _, v := range m.Variants() {
		report.Variants[v.String()] = m.CountOf(v)
	}
	return report
}

func newErrorReport(e *mcerrors.Error) ErrorReport {
	r := ErrorReport{
		Type:       string(e.Type),
		Code:       string(e.Code),
		Message:    e.Message,
		File:       e.Location.File,
		Line:       e.Location.Line,
		Column:     e.Location.Column,
		Field:      e.Field,
		Suggestion: e.Suggestion,
		Context:    e.Context,
	}
	if e.Entity != "" {
		r.Subject = e.Subject()
	}
	return r
}

// NewLintReport aggregates file reports.
func NewLintReport(files []FileReport) LintReport {
	report := LintReport{Files: files}
	for _, f := range files {
		if f.Valid {
			report.Valid++
		} else {
			report.Invalid++
		}
		report.Errors += len(f.Errors)
	}
	return report
}

// Failed reports whether any file was invalid.
func (r LintReport) Failed() bool {
	return r.Invalid > 0
}

// sortedVariants returns the variant tags of a report in a stable order.
func sortedVariants(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
