package config

import "time"

// Config is the root configuration structure for the mechconf tools.
// It contains the parser limits, logging, metrics and watch settings used
// by the command line.
type Config struct {
	// Parser contains limits and file selection for mechanism parsing.
	Parser ParserConfig `yaml:"parser"`

	// Logging contains structured logging settings.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus exporter settings.
	Metrics MetricsConfig `yaml:"metrics"`

	// Watch contains settings for the watch command, which keeps a catalog
	// of mechanisms in sync with a directory.
	Watch WatchConfig `yaml:"watch"`
}

// ParserConfig contains configuration for reading mechanism files.
type ParserConfig struct {
	// MaxFileSize is the largest mechanism file accepted, in bytes.
	// Default: 10485760 (10MB)
	MaxFileSize int64 `yaml:"max_file_size"`

	// Extensions lists the file suffixes treated as mechanism files when
	// scanning a directory.
	// Default: [".yaml", ".yml", ".json"]
	Extensions []string `yaml:"extensions"`

	// Encoding forces an encoding ("yaml" or "json") for every file.
	// Empty or "auto" detects it from the suffix and content.
	Encoding string `yaml:"encoding"`
}

// LoggingConfig contains configuration for the slog logger.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format ("json", "text", "console").
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file and line number in logs.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains configuration for Prometheus metrics.
type MetricsConfig struct {
	// Enabled turns on metric recording.
	Enabled bool `yaml:"enabled"`

	// Namespace is the Prometheus metric namespace.
	// Default: "mechconf"
	Namespace string `yaml:"namespace"`

	// Subsystem is the Prometheus metric subsystem.
	// Default: "parser"
	Subsystem string `yaml:"subsystem"`

	// ListenAddress is the address the metrics endpoint listens on.
	// Default: "127.0.0.1:9090"
	ListenAddress string `yaml:"listen_address"`

	// Path is the HTTP path of the metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// DurationBuckets are the histogram buckets for parse durations, in
	// seconds.
	DurationBuckets []float64 `yaml:"duration_buckets"`

	// ScrapeTimeout bounds how long one scrape of the endpoint may take.
	// Default: 10s
	ScrapeTimeout time.Duration `yaml:"scrape_timeout"`
}

// WatchConfig contains configuration for the mechanism catalog watcher.
type WatchConfig struct {
	// Dir is the directory scanned for mechanism files.
	// Default: "."
	Dir string `yaml:"dir"`

	// DebounceInterval is how long a file must stay quiet before it is
	// re-parsed.
	// Default: 100ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// RescanSchedule is a cron expression for full rescans of Dir. The
	// value "off" disables periodic rescans.
	// Default: "*/15 * * * *"
	RescanSchedule string `yaml:"rescan_schedule"`

	// IncludeHidden also loads files and directories whose names start
	// with a dot.
	IncludeHidden bool `yaml:"include_hidden"`
}
