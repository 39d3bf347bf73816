package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix starts the name of every environment override.
const EnvPrefix = "MECHCONF_"

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any errors.
// The configuration is not modified by environment variables; use LoadConfigWithEnvOverrides
// for that functionality.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention MECHCONF_SECTION_FIELD (e.g., MECHCONF_LOGGING_LEVEL).
// Environment variables always take precedence over file-based configuration.
// An empty path starts from DefaultConfig instead of a file.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	var cfg *Config
	if path == "" {
		cfg = DefaultConfig()
	} else {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// A variable that is set but cannot be parsed is an error.
func applyEnvOverrides(cfg *Config) error {
	var errs []FieldError
	invalid := func(name, val string, err error) {
		errs = append(errs, FieldError{
			Field:   name,
			Message: fmt.Sprintf("invalid value %q: %v", val, err),
		})
	}

	setString := func(name string, dst *string) {
		if val := os.Getenv(EnvPrefix + name); val != "" {
			*dst = val
		}
	}
	setBool := func(name string, dst *bool) {
		if val := os.Getenv(EnvPrefix + name); val != "" {
			b, err := strconv.ParseBool(val)
			if err != nil {
				invalid(EnvPrefix+name, val, err)
				return
			}
			*dst = b
		}
	}
	setDuration := func(name string, dst *time.Duration) {
		if val := os.Getenv(EnvPrefix + name); val != "" {
			d, err := time.ParseDuration(val)
			if err != nil {
				invalid(EnvPrefix+name, val, err)
				return
			}
			*dst = d
		}
	}

	// Parser overrides
	if val := os.Getenv(EnvPrefix + "PARSER_MAX_FILE_SIZE"); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Parser.MaxFileSize = n
		} else {
			invalid(EnvPrefix+"PARSER_MAX_FILE_SIZE", val, err)
		}
	}
	if val := os.Getenv(EnvPrefix + "PARSER_EXTENSIONS"); val != "" {
		var exts []string
		for _, ext := range strings.Split(val, ",") {
			if ext = strings.TrimSpace(ext); ext != "" {
				exts = append(exts, ext)
			}
		}
		cfg.Parser.Extensions = exts
	}
	setString("PARSER_ENCODING", &cfg.Parser.Encoding)

	// Logging overrides
	setString("LOGGING_LEVEL", &cfg.Logging.Level)
	setString("LOGGING_FORMAT", &cfg.Logging.Format)
	setBool("LOGGING_ADD_SOURCE", &cfg.Logging.AddSource)

	// Metrics overrides
	setBool("METRICS_ENABLED", &cfg.Metrics.Enabled)
	setString("METRICS_NAMESPACE", &cfg.Metrics.Namespace)
	setString("METRICS_SUBSYSTEM", &cfg.Metrics.Subsystem)
	setString("METRICS_LISTEN_ADDRESS", &cfg.Metrics.ListenAddress)
	setString("METRICS_PATH", &cfg.Metrics.Path)
	setDuration("METRICS_SCRAPE_TIMEOUT", &cfg.Metrics.ScrapeTimeout)

	// Watch overrides
	setString("WATCH_DIR", &cfg.Watch.Dir)
	setDuration("WATCH_DEBOUNCE_INTERVAL", &cfg.Watch.DebounceInterval)
	setString("WATCH_RESCAN_SCHEDULE", &cfg.Watch.RescanSchedule)
	setBool("WATCH_INCLUDE_HIDDEN", &cfg.Watch.IncludeHidden)

	if len(errs) > 0 {
		return fmt.Errorf("invalid environment override: %w", ValidationError{Errors: errs})
	}
	return nil
}
