package logging

import (
	"context"
	"log/slog"
)

// Context keys for common log fields.
type contextKey string

const (
	// ParseIDKey is the context key for the ID of one parse call.
	ParseIDKey contextKey = "parse_id"

	// LoadIDKey is the context key for the ID of one catalog load or rescan.
	LoadIDKey contextKey = "load_id"

	// SourceKey is the context key for the mechanism source being read.
	SourceKey contextKey = "source"

	// CommandKey is the context key for the CLI command being run.
	CommandKey contextKey = "command"
)

// WithParseID adds a parse ID to the context.
func WithParseID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ParseIDKey, id)
}

// GetParseID retrieves the parse ID from the context.
func GetParseID(ctx context.Context) string {
	return stringValue(ctx, ParseIDKey)
}

// WithLoadID adds a catalog load ID to the context.
func WithLoadID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, LoadIDKey, id)
}

// GetLoadID retrieves the catalog load ID from the context.
func GetLoadID(ctx context.Context) string {
	return stringValue(ctx, LoadIDKey)
}

// WithSource adds a mechanism source path to the context.
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, SourceKey, source)
}

// GetSource retrieves the mechanism source path from the context.
func GetSource(ctx context.Context) string {
	return stringValue(ctx, SourceKey)
}

// WithCommand adds the CLI command name to the context.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, CommandKey, command)
}

// GetCommand retrieves the CLI command name from the context.
func GetCommand(ctx context.Context) string {
	return stringValue(ctx, CommandKey)
}

func stringValue(ctx context.Context, key contextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

// extractContextFields extracts the known fields set on ctx as slog
// key-value pairs, in a fixed order.
func extractContextFields(ctx context.Context) []any {
	var fields []any
	for _, key := range []contextKey{CommandKey, LoadIDKey, ParseIDKey, SourceKey} {
		if v := stringValue(ctx, key); v != "" {
			fields = append(fields, string(key), v)
		}
	}
	return fields
}

// WithContext returns logger with the known context fields attached. It
// returns logger itself when ctx carries none.
func WithContext(logger *slog.Logger, ctx context.Context) *slog.Logger {
	fields := extractContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}
