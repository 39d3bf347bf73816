package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"openatmos/mechconf/pkg/config"
)

// LogFormat represents the output format for logs.
type LogFormat string

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON LogFormat = "json"
	// FormatText outputs logs as key=value pairs.
	FormatText LogFormat = "text"
	// FormatConsole outputs key=value pairs without timestamps, for
	// interactive terminals.
	FormatConsole LogFormat = "console"
)

// Config contains configuration for a logger.
type Config struct {
	// Level is the minimum log level ("debug", "info", "warn", "error")
	Level string

	// Format is the output format ("json", "text", "console")
	Format string

	// AddSource includes file and line number in logs
	AddSource bool

	// Writer is the output writer (defaults to os.Stderr)
	Writer io.Writer

	// LevelVar, when set, receives Level and becomes the handler level,
	// so the level can be changed on a running logger with ApplyLevel.
	LevelVar *slog.LevelVar
}

// New creates a slog logger with the given configuration.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	format, err := parseFormat(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid log format: %w", err)
	}

	writer := cfg.Writer
	if writer == nil {
		writer = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
	}
	if cfg.LevelVar != nil {
		cfg.LevelVar.Set(level)
		opts.Level = cfg.LevelVar
	}

	var handler slog.Handler
	switch format {
	case FormatText:
		handler = slog.NewTextHandler(writer, opts)
	case FormatConsole:
		opts.ReplaceAttr = dropTime
		handler = slog.NewTextHandler(writer, opts)
	default:
		handler = slog.NewJSONHandler(writer, opts)
	}

	return slog.New(handler), nil
}

// FromConfig creates a logger from the logging section of the host
// configuration. A verbose flag lowers the level to debug.
func FromConfig(cfg config.LoggingConfig, w io.Writer, verbose bool) (*slog.Logger, error) {
	return FromConfigWithLevel(cfg, w, verbose, nil)
}

// FromConfigWithLevel is FromConfig with the handler level held in lv.
func FromConfigWithLevel(cfg config.LoggingConfig, w io.Writer, verbose bool, lv *slog.LevelVar) (*slog.Logger, error) {
	return New(Config{
		Level:     effectiveLevel(cfg, verbose),
		Format:    cfg.Format,
		AddSource: cfg.AddSource,
		Writer:    w,
		LevelVar:  lv,
	})
}

// ApplyLevel sets lv to the level of a reloaded logging section. The
// format and writer of existing loggers are unchanged.
func ApplyLevel(lv *slog.LevelVar, cfg config.LoggingConfig, verbose bool) error {
	level, err := ParseLevel(effectiveLevel(cfg, verbose))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	lv.Set(level)
	return nil
}

func effectiveLevel(cfg config.LoggingConfig, verbose bool) string {
	if verbose {
		return "debug"
	}
	return cfg.Level
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}

// ParseLevel parses a log level string into slog.Level. The empty string
// is info.
func ParseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", levelStr)
	}
}

// parseFormat parses a log format string into LogFormat.
func parseFormat(formatStr string) (LogFormat, error) {
	switch strings.ToLower(formatStr) {
	case "json", "":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	default:
		return FormatJSON, fmt.Errorf("unknown log format: %s", formatStr)
	}
}
