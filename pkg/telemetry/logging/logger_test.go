package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"openatmos/mechconf/pkg/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid JSON config",
			config:  Config{Level: "info", Format: "json"},
			wantErr: false,
		},
		{
			name:    "valid text config",
			config:  Config{Level: "debug", Format: "text"},
			wantErr: false,
		},
		{
			name:    "valid console config",
			config:  Config{Level: "WARN", Format: "console"},
			wantErr: false,
		},
		{
			name:    "empty config uses defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name:    "invalid log level",
			config:  Config{Level: "loud", Format: "json"},
			wantErr: true,
		},
		{
			name:    "invalid format",
			config:  Config{Level: "info", Format: "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.config.Writer = &buf
			logger, err := New(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && logger == nil {
				t.Error("New() returned nil logger")
			}
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("mechanism parsed", "reactions", 16)
	logger.Debug("hidden")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not a single JSON object: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "mechanism parsed" {
		t.Errorf("msg = %v, want %q", entry["msg"], "mechanism parsed")
	}
	if entry["reactions"] != float64(16) {
		t.Errorf("reactions = %v, want 16", entry["reactions"])
	}
}

func TestNew_ConsoleDropsTime(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("hello")

	out := buf.String()
	if strings.Contains(out, "time=") {
		t.Errorf("console output contains a timestamp: %q", out)
	}
	if !strings.Contains(out, "msg=hello") {
		t.Errorf("console output = %q, want msg=hello", out)
	}
}

func TestFromConfig(t *testing.T) {
	var buf bytes.Buffer
	logger, err := FromConfig(config.LoggingConfig{Level: "warn", Format: "text"}, &buf, false)
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info enabled at warn level")
	}

	verbose, err := FromConfig(config.LoggingConfig{Level: "warn", Format: "text"}, &buf, true)
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}
	if !verbose.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("verbose logger does not enable debug")
	}
}

func TestApplyLevel(t *testing.T) {
	var buf bytes.Buffer
	lv := new(slog.LevelVar)
	logger, err := FromConfigWithLevel(config.LoggingConfig{Level: "info", Format: "text"}, &buf, false, lv)
	if err != nil {
		t.Fatalf("FromConfigWithLevel() error = %v", err)
	}
	if lv.Level() != slog.LevelInfo {
		t.Errorf("Level() = %v, want info", lv.Level())
	}

	if err := ApplyLevel(lv, config.LoggingConfig{Level: "error"}, false); err != nil {
		t.Fatalf("ApplyLevel() error = %v", err)
	}
	if logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("warn still enabled after raising the level to error")
	}

	if err := ApplyLevel(lv, config.LoggingConfig{Level: "error"}, true); err != nil {
		t.Fatalf("ApplyLevel() error = %v", err)
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("verbose ApplyLevel does not enable debug")
	}

	if err := ApplyLevel(lv, config.LoggingConfig{Level: "loud"}, false); err == nil {
		t.Error("ApplyLevel() accepted an unknown level")
	}
	if lv.Level() != slog.LevelDebug {
		t.Errorf("failed ApplyLevel changed the level to %v", lv.Level())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestContextKeys(t *testing.T) {
	ctx := context.Background()

	ctx = WithParseID(ctx, "parse-1")
	if got := GetParseID(ctx); got != "parse-1" {
		t.Errorf("GetParseID() = %q, want %q", got, "parse-1")
	}

	ctx = WithLoadID(ctx, "load-1")
	if got := GetLoadID(ctx); got != "load-1" {
		t.Errorf("GetLoadID() = %q, want %q", got, "load-1")
	}

	ctx = WithSource(ctx, "full.yaml")
	if got := GetSource(ctx); got != "full.yaml" {
		t.Errorf("GetSource() = %q, want %q", got, "full.yaml")
	}

	ctx = WithCommand(ctx, "lint")
	if got := GetCommand(ctx); got != "lint" {
		t.Errorf("GetCommand() = %q, want %q", got, "lint")
	}
}

func TestContextKeys_Empty(t *testing.T) {
	ctx := context.Background()
	if got := GetParseID(ctx); got != "" {
		t.Errorf("GetParseID() = %q, want empty", got)
	}
	if got := GetSource(ctx); got != "" {
		t.Errorf("GetSource() = %q, want empty", got)
	}
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := WithContext(logger, context.Background()); got != logger {
		t.Error("WithContext() without fields should return the same logger")
	}

	ctx := WithSource(WithLoadID(context.Background(), "load-7"), "a.yaml")
	WithContext(logger, ctx).Info("loaded")

	out := buf.String()
	for _, want := range []string{"load_id=load-7", "source=a.yaml"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if strings.Index(out, "load_id") > strings.Index(out, "source") {
		t.Errorf("fields out of order: %q", out)
	}
}

func TestDiscard(t *testing.T) {
	if Discard().Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard() logger is enabled")
	}
}
