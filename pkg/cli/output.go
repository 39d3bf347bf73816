package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatText is human-readable output (default).
	FormatText OutputFormat = "text"
	// FormatJSON is JSON output.
	FormatJSON OutputFormat = "json"
)

// ParseFormat converts a --format flag value into an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", NewConfigError("format", fmt.Sprintf("unsupported output format %q (must be text or json)", s))
	}
}

// Formatter formats command output.
type Formatter interface {
	Format(data any) ([]byte, error)
	FormatTo(w io.Writer, data any) error
}

// TextFormatter renders lint and inspect reports for terminals. Other
// values are printed with %v.
type TextFormatter struct {
	// Context includes the source lines around each error.
	Context bool
}

// Format converts data to text format.
func (f *TextFormatter) Format(data any) ([]byte, error) {
	var sb strings.Builder
	if err := f.FormatTo(&sb, data); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// FormatTo writes data to writer in text format.
func (f *TextFormatter) FormatTo(w io.Writer, data any) error {
	var sb strings.Builder
	switch v := data.(type) {
	case LintReport:
		f.writeLint(&sb, v)
	case *LintReport:
		f.writeLint(&sb, *v)
	case FileReport:
		f.writeInspect(&sb, v)
	case *FileReport:
		f.writeInspect(&sb, *v)
	default:
		fmt.Fprintf(&sb, "%v\n", data)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (f *TextFormatter) writeLint(sb *strings.Builder, r LintReport) {
	for _, file := range r.Files {
		if file.Valid {
			fmt.Fprintf(sb, "ok    %s (%d species, %d phases, %d reactions)\n",
				file.Path, len(file.Species), len(file.Phases), file.Reactions)
			continue
		}
		fmt.Fprintf(sb, "FAIL  %s (%d error(s))\n", file.Path, len(file.Errors))
		for _, e := range file.Errors {
			f.writeError(sb, e)
		}
	}
	fmt.Fprintf(sb, "\n%d file(s) checked: %d valid, %d invalid, %d error(s)\n",
		len(r.Files), r.Valid, r.Invalid, r.Errors)
}

func (f *TextFormatter) writeError(sb *strings.Builder, e ErrorReport) {
	sb.WriteString("  [" + e.Type + "]")
	if e.Code != "" {
		sb.WriteString(" " + e.Code)
	}
	sb.WriteString(": ")
	if e.Subject != "" {
		sb.WriteString(e.Subject + ": ")
	}
	sb.WriteString(e.Message + "\n")

	if e.Line > 0 {
		fmt.Fprintf(sb, "    --> %s:%d:%d\n", e.File, e.Line, e.Column)
	}
	if f.Context && e.Context != "" {
		for _, line := range strings.Split(strings.TrimRight(e.Context, "\n"), "\n") {
			sb.WriteString("    " + line + "\n")
		}
	}
	if e.Suggestion != "" {
		sb.WriteString("    = suggestion: " + e.Suggestion + "\n")
	}
}

func (f *TextFormatter) writeInspect(sb *strings.Builder, r FileReport) {
	if !r.Valid {
		f.writeLint(sb, NewLintReport([]FileReport{r}))
		return
	}

	name := r.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(sb, "Mechanism: %s\n", name)
	fmt.Fprintf(sb, "Version:   %s\n", r.Version)
	fmt.Fprintf(sb, "Source:    %s\n\n", r.Path)

	fmt.Fprintf(sb, "Species (%d):\n", len(r.Species))
	for _, s := range r.Species {
		fmt.Fprintf(sb, "  %s\n", s)
	}

	fmt.Fprintf(sb, "\nPhases (%d):\n", len(r.Phases))
	for _, p := range r.Phases {
		fmt.Fprintf(sb, "  %s: %s\n", p.Name, strings.Join(p.Species, ", "))
	}

	fmt.Fprintf(sb, "\nReactions (%d):\n", r.Reactions)
	for _, v := range sortedVariants(r.Variants) {
		fmt.Fprintf(sb, "  %-28s %d\n", v, r.Variants[v])
	}
}

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	Indent bool
}

// Format converts data to JSON format.
func (f *JSONFormatter) Format(data any) ([]byte, error) {
	if f.Indent {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}

// FormatTo writes data to writer in JSON format.
func (f *JSONFormatter) FormatTo(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// NewFormatter creates a new formatter for the specified format.
func NewFormatter(format OutputFormat) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	default:
		return &TextFormatter{Context: true}
	}
}
