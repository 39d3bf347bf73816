package catalog

import "fmt"

// LoadError reports a directory that could not be scanned.
type LoadError struct {
	// Path is the file or directory that failed.
	Path string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load catalog %q: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load catalog %q: %s", e.Path, e.Message)
}

// Unwrap implements the errors.Unwrap interface for error chain support.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// RegistryError represents an invalid registry operation.
type RegistryError struct {
	Path      string
	Operation string
	Message   string
}

// Error implements the error interface.
func (e *RegistryError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("registry %s %q: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("registry %s: %s", e.Operation, e.Message)
}
