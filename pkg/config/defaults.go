package config

import "time"

// Default values for configuration fields.
const (
	// Parser defaults
	DefaultMaxFileSize = int64(10 * 1024 * 1024) // 10MB

	// Logging defaults
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "text"

	// Metrics defaults
	DefaultMetricsNamespace     = "mechconf"
	DefaultMetricsSubsystem     = "parser"
	DefaultMetricsListenAddress = "127.0.0.1:9090"
	DefaultMetricsPath          = "/metrics"
	DefaultScrapeTimeout        = 10 * time.Second

	// Watch defaults
	DefaultWatchDir         = "."
	DefaultDebounceInterval = 100 * time.Millisecond
	DefaultRescanSchedule   = "*/15 * * * *"

	// RescanOff disables periodic rescans.
	RescanOff = "off"
)

// DefaultExtensions are the suffixes of mechanism files.
var DefaultExtensions = []string{".yaml", ".yml", ".json"}

// DefaultDurationBuckets cover parse durations from 100µs to 5s.
var DefaultDurationBuckets = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

// ApplyDefaults fills every zero-valued field of cfg with its default.
// Fields already set are left unchanged.
func ApplyDefaults(cfg *Config) {
	// Parser defaults
	if cfg.Parser.MaxFileSize == 0 {
		cfg.Parser.MaxFileSize = DefaultMaxFileSize
	}
	if len(cfg.Parser.Extensions) == 0 {
		cfg.Parser.Extensions = append([]string(nil), DefaultExtensions...)
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLoggingFormat
	}

	// Metrics defaults
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if cfg.Metrics.ListenAddress == "" {
		cfg.Metrics.ListenAddress = DefaultMetricsListenAddress
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Metrics.ScrapeTimeout == 0 {
		cfg.Metrics.ScrapeTimeout = DefaultScrapeTimeout
	}
	if len(cfg.Metrics.DurationBuckets) == 0 {
		cfg.Metrics.DurationBuckets = append([]float64(nil), DefaultDurationBuckets...)
	}

	// Watch defaults
	if cfg.Watch.Dir == "" {
		cfg.Watch.Dir = DefaultWatchDir
	}
	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = DefaultDebounceInterval
	}
	if cfg.Watch.RescanSchedule == "" {
		cfg.Watch.RescanSchedule = DefaultRescanSchedule
	}
}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
