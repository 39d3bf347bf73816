package errors

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"openatmos/mechconf/pkg/mechconf/document"
)

// ExtractContext renders the source lines around location, marking the
// offending line and column. It returns "" if the file cannot be read.
func ExtractContext(location document.Location, contextLines int) string {
	if !location.IsValid() {
		return ""
	}

	data, err := os.ReadFile(location.File)
	if err != nil {
		return ""
	}
	return ExtractContextFrom(data, location, contextLines)
}

// ExtractContextFrom is ExtractContext over in-memory source text.
func ExtractContextFrom(data []byte, location document.Location, contextLines int) string {
	if location.Line <= 0 {
		return ""
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lines := make([]string, 0)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return ""
	}

	errorLine := location.Line - 1
	if errorLine >= len(lines) {
		return ""
	}
	startLine := max(errorLine-contextLines, 0)
	endLine := min(errorLine+contextLines, len(lines)-1)

	var sb strings.Builder
	width := len(fmt.Sprintf("%d", endLine+1))

	for i := startLine; i <= endLine; i++ {
		prefix := "  "
		if i == errorLine {
			prefix = "->"
		}
		sb.WriteString(fmt.Sprintf("%s %*d | %s\n", prefix, width, i+1, lines[i]))

		if i == errorLine && location.Column > 0 {
			sb.WriteString(fmt.Sprintf("   %s | %s^\n", strings.Repeat(" ", width), strings.Repeat(" ", location.Column-1)))
		}
	}

	return sb.String()
}

// WithContext attaches source context read from the error's file.
func WithContext(err *Error, contextLines int) *Error {
	if err.Location.IsValid() {
		err.Context = ExtractContext(err.Location, contextLines)
	}
	return err
}

// AddContext attaches two lines of source context to every error in the
// list, reading from data rather than the file system.
func (el *ErrorList) AddContext(data []byte) {
	for _, err := range el.Errors {
		if err.Context == "" {
			err.Context = ExtractContextFrom(data, err.Location, 2)
		}
	}
}
