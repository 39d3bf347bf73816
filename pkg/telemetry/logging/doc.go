// Package logging builds slog loggers for the mechconf tools.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - Structured logging with JSON, text, and console formats
//   - Context fields for parse IDs, catalog load IDs and sources
//   - Construction from the host configuration
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	ctx := logging.WithLoadID(ctx, loadID)
//	ctx = logging.WithSource(ctx, "mechanisms/full.yaml")
//	logging.WithContext(logger, ctx).Info("mechanism loaded", "reactions", 16)
//
// The console format drops timestamps and is meant for terminals:
//
//	level=INFO msg="mechanism loaded" source=mechanisms/full.yaml reactions=16
package logging
