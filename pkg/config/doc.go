// Package config provides configuration management for the mechconf command.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. The mechconf library
// packages never read it; only the command line does.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("mechconf.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("mechconf.yaml")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention MECHCONF_SECTION_FIELD.
// For example:
//
//   - MECHCONF_PARSER_MAX_FILE_SIZE overrides parser.max_file_size
//   - MECHCONF_LOGGING_LEVEL overrides logging.level
//   - MECHCONF_WATCH_DEBOUNCE_INTERVAL overrides watch.debounce_interval
//
// Configuration values are applied in the following order (later overrides earlier):
//
//  1. Values from YAML file
//  2. Default values for fields the file left empty
//  3. Environment variable overrides
//  4. Validation
//
// # Singleton Pattern
//
//	cfg, err := config.LoadConfigWithEnvOverrides(configPath)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	config.SetConfig(cfg)
//
//	// On SIGHUP: keeps the running configuration if the file is invalid.
//	if err := config.ReloadConfig(configPath); err != nil {
//	    log.Print(err)
//	}
//
// # Example Configuration
//
//	parser:
//	  max_file_size: 1048576
//	  extensions: [".yaml", ".json"]
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
//	metrics:
//	  enabled: true
//	  listen_address: ":9090"
//
//	watch:
//	  dir: "./mechanisms"
//	  debounce_interval: "250ms"
//	  rescan_schedule: "0 * * * *"
package config
