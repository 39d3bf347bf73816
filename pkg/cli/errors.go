package cli

import (
	"errors"
	"fmt"
)

// Exit codes of the mechconf command.
const (
	ExitOK      = 0
	ExitInvalid = 1 // at least one mechanism failed to parse
	ExitUsage   = 2 // bad flags or configuration
)

// ConfigError represents an error in a flag or configuration value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ErrInvalidMechanism is returned by commands whose report has already
// been printed but at least one mechanism was invalid.
var ErrInvalidMechanism = errors.New("invalid mechanism")

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, ErrInvalidMechanism) {
		return ExitInvalid
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return ExitUsage
	}
	return ExitInvalid
}
