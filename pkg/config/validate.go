package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "parser.max_file_size").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any rule fails. All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateParser(&cfg.Parser)...)
	errs = append(errs, validateLogging(&cfg.Logging)...)
	errs = append(errs, validateMetrics(&cfg.Metrics)...)
	errs = append(errs, validateWatch(&cfg.Watch)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateParser(cfg *ParserConfig) []FieldError {
	var errs []FieldError

	if cfg.MaxFileSize <= 0 {
		errs = append(errs, FieldError{
			Field:   "parser.max_file_size",
			Message: fmt.Sprintf("must be positive, got %d", cfg.MaxFileSize),
		})
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("parser.extensions[%d]", i),
				Message: fmt.Sprintf("extension %q must start with a dot", ext),
			})
		}
	}

	switch strings.ToLower(cfg.Encoding) {
	case "", "auto", "yaml", "yml", "json":
	default:
		errs = append(errs, FieldError{
			Field:   "parser.encoding",
			Message: fmt.Sprintf("must be one of auto, yaml, json, got %q", cfg.Encoding),
		})
	}

	return errs
}

func validateLogging(cfg *LoggingConfig) []FieldError {
	var errs []FieldError

	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error, got %q", cfg.Level),
		})
	}

	switch strings.ToLower(cfg.Format) {
	case "json", "text", "console":
	default:
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: fmt.Sprintf("must be one of json, text, console, got %q", cfg.Format),
		})
	}

	return errs
}

func validateMetrics(cfg *MetricsConfig) []FieldError {
	var errs []FieldError

	if !strings.HasPrefix(cfg.Path, "/") {
		errs = append(errs, FieldError{
			Field:   "metrics.path",
			Message: fmt.Sprintf("must start with '/', got %q", cfg.Path),
		})
	}

	if cfg.Enabled && cfg.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "metrics.listen_address",
			Message: "listen address is required when metrics are enabled",
		})
	}

	if cfg.ScrapeTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "metrics.scrape_timeout",
			Message: fmt.Sprintf("must not be negative, got %s", cfg.ScrapeTimeout),
		})
	}

	for i := 1; i < len(cfg.DurationBuckets); i++ {
		if cfg.DurationBuckets[i] <= cfg.DurationBuckets[i-1] {
			errs = append(errs, FieldError{
				Field:   "metrics.duration_buckets",
				Message: "buckets must be strictly increasing",
			})
			break
		}
	}

	return errs
}

func validateWatch(cfg *WatchConfig) []FieldError {
	var errs []FieldError

	if cfg.DebounceInterval < 0 {
		errs = append(errs, FieldError{
			Field:   "watch.debounce_interval",
			Message: fmt.Sprintf("must not be negative, got %s", cfg.DebounceInterval),
		})
	}

	if cfg.RescanSchedule != RescanOff {
		if _, err := cron.ParseStandard(cfg.RescanSchedule); err != nil {
			errs = append(errs, FieldError{
				Field:   "watch.rescan_schedule",
				Message: fmt.Sprintf("invalid cron expression %q: %v", cfg.RescanSchedule, err),
			})
		}
	}

	return errs
}
