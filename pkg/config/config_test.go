package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mechconf.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Parser.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("expected max file size %d, got %d", DefaultMaxFileSize, cfg.Parser.MaxFileSize)
	}
	if len(cfg.Parser.Extensions) != 3 {
		t.Errorf("expected 3 extensions, got %v", cfg.Parser.Extensions)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("expected info/text logging, got %s/%s", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected metrics disabled by default")
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("expected metrics path %q, got %q", "/metrics", cfg.Metrics.Path)
	}
	if cfg.Watch.DebounceInterval != 100*time.Millisecond {
		t.Errorf("expected debounce %v, got %v", 100*time.Millisecond, cfg.Watch.DebounceInterval)
	}
	if cfg.Metrics.ScrapeTimeout != DefaultScrapeTimeout {
		t.Errorf("expected scrape timeout %v, got %v", DefaultScrapeTimeout, cfg.Metrics.ScrapeTimeout)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestApplyDefaults_KeepsSetFields(t *testing.T) {
	cfg := &Config{
		Parser:  ParserConfig{MaxFileSize: 42},
		Logging: LoggingConfig{Level: "debug"},
		Watch:   WatchConfig{RescanSchedule: RescanOff},
	}
	ApplyDefaults(cfg)

	if cfg.Parser.MaxFileSize != 42 {
		t.Errorf("expected max file size 42, got %d", cfg.Parser.MaxFileSize)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != DefaultLoggingFormat {
		t.Errorf("expected format %q, got %q", DefaultLoggingFormat, cfg.Logging.Format)
	}
	if cfg.Watch.RescanSchedule != RescanOff {
		t.Errorf("expected rescan schedule %q, got %q", RescanOff, cfg.Watch.RescanSchedule)
	}
}

func TestApplyDefaults_DoesNotShareSlices(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Parser.Extensions[0] = ".txt"
	if DefaultExtensions[0] != ".yaml" {
		t.Errorf("DefaultExtensions was modified: %v", DefaultExtensions)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `
parser:
  max_file_size: 2048
  extensions: [".yaml"]

logging:
  level: "debug"
  format: "json"

metrics:
  enabled: true
  listen_address: ":9100"

watch:
  dir: "./mechanisms"
  debounce_interval: "250ms"
  rescan_schedule: "0 * * * *"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Parser.MaxFileSize != 2048 {
		t.Errorf("expected max file size 2048, got %d", cfg.Parser.MaxFileSize)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected format json, got %q", cfg.Logging.Format)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.ListenAddress != ":9100" {
		t.Errorf("unexpected metrics config: %+v", cfg.Metrics)
	}
	if cfg.Metrics.Namespace != DefaultMetricsNamespace {
		t.Errorf("expected namespace default, got %q", cfg.Metrics.Namespace)
	}
	if cfg.Watch.DebounceInterval != 250*time.Millisecond {
		t.Errorf("expected debounce 250ms, got %v", cfg.Watch.DebounceInterval)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "parser: [unclosed",
			wantErr: "failed to parse configuration file",
		},
		{
			name:    "bad level",
			content: "logging:\n  level: loud\n",
			wantErr: "logging.level",
		},
		{
			name:    "bad extension",
			content: "parser:\n  extensions: [yaml]\n",
			wantErr: "parser.extensions[0]",
		},
		{
			name:    "bad cron",
			content: "watch:\n  rescan_schedule: \"every tuesday\"\n",
			wantErr: "watch.rescan_schedule",
		},
		{
			name:    "bad metrics path",
			content: "metrics:\n  path: metrics\n",
			wantErr: "metrics.path",
		},
		{
			name:    "negative scrape timeout",
			content: "metrics:\n  scrape_timeout: -1s\n",
			wantErr: "metrics.scrape_timeout",
		},
		{
			name:    "negative size",
			content: "parser:\n  max_file_size: -1\n",
			wantErr: "parser.max_file_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"
	cfg.Parser.Encoding = "toml"

	err := Validate(cfg)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(verr.Errors), verr.Errors)
	}
	if !strings.Contains(err.Error(), "with 3 errors") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: info\n")

	t.Setenv("MECHCONF_LOGGING_LEVEL", "debug")
	t.Setenv("MECHCONF_PARSER_MAX_FILE_SIZE", "4096")
	t.Setenv("MECHCONF_PARSER_EXTENSIONS", ".json, .yml")
	t.Setenv("MECHCONF_METRICS_ENABLED", "true")
	t.Setenv("MECHCONF_WATCH_DEBOUNCE_INTERVAL", "1s")
	t.Setenv("MECHCONF_WATCH_RESCAN_SCHEDULE", "off")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %q", cfg.Logging.Level)
	}
	if cfg.Parser.MaxFileSize != 4096 {
		t.Errorf("expected max file size 4096, got %d", cfg.Parser.MaxFileSize)
	}
	if len(cfg.Parser.Extensions) != 2 || cfg.Parser.Extensions[1] != ".yml" {
		t.Errorf("unexpected extensions %v", cfg.Parser.Extensions)
	}
	if !cfg.Metrics.Enabled {
		t.Error("expected metrics enabled")
	}
	if cfg.Watch.DebounceInterval != time.Second {
		t.Errorf("expected debounce 1s, got %v", cfg.Watch.DebounceInterval)
	}
	if cfg.Watch.RescanSchedule != RescanOff {
		t.Errorf("expected rescan off, got %q", cfg.Watch.RescanSchedule)
	}
}

func TestLoadConfigWithEnvOverrides_NoFile(t *testing.T) {
	t.Setenv("MECHCONF_LOGGING_FORMAT", "json")

	cfg, err := LoadConfigWithEnvOverrides("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected format json, got %q", cfg.Logging.Format)
	}
	if cfg.Parser.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("expected default max file size, got %d", cfg.Parser.MaxFileSize)
	}
}

func TestLoadConfigWithEnvOverrides_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bool", "MECHCONF_METRICS_ENABLED", "maybe"},
		{"duration", "MECHCONF_WATCH_DEBOUNCE_INTERVAL", "soon"},
		{"int", "MECHCONF_PARSER_MAX_FILE_SIZE", "big"},
		{"validated", "MECHCONF_LOGGING_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfigWithEnvOverrides("")
			if err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func resetSingleton() {
	SetConfig(nil)
}

func TestReloadConfig_KeepsOldOnFailure(t *testing.T) {
	resetSingleton()
	t.Cleanup(resetSingleton)

	SetConfig(DefaultConfig())
	bad := writeConfig(t, "logging:\n  level: loud\n")
	if err := ReloadConfig(bad); err == nil {
		t.Fatal("expected reload error")
	}
	if GetConfig().Logging.Level != DefaultLoggingLevel {
		t.Errorf("expected old config to survive, got level %q", GetConfig().Logging.Level)
	}

	good := writeConfig(t, "logging:\n  level: error\n")
	if err := ReloadConfig(good); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if GetConfig().Logging.Level != "error" {
		t.Errorf("expected level error, got %q", GetConfig().Logging.Level)
	}
}

func TestGetConfig_Concurrent(t *testing.T) {
	resetSingleton()
	t.Cleanup(resetSingleton)
	SetConfig(DefaultConfig())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%5 == 0 {
				SetConfig(DefaultConfig())
				return
			}
			if GetConfig() == nil {
				t.Error("GetConfig returned nil")
			}
		}(i)
	}
	wg.Wait()
}
