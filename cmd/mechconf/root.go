package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"openatmos/mechconf/pkg/cli"
	"openatmos/mechconf/pkg/config"
	"openatmos/mechconf/pkg/mechconf"
	"openatmos/mechconf/pkg/mechconf/document"
	"openatmos/mechconf/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// logger is configured by setup before any command runs.
	logger = logging.Discard()

	// logLevel is the level of logger. watch raises or lowers it when the
	// configuration is reloaded.
	logLevel = new(slog.LevelVar)
)

var rootCmd = &cobra.Command{
	Use:   "mechconf",
	Short: "Parse and validate chemical mechanism configurations",
	Long: `mechconf reads chemical mechanism configurations written in YAML or JSON
and checks them before they reach a solver:
  - schema checks for species, phases and every reaction variant
  - cross-reference checks for species and phase names
  - every error reported with file, line, column and a suggestion

Configuration is read from --config (optional) and MECHCONF_* environment
variables.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and exits with the command's exit code.
func Execute() {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, cli.ErrInvalidMechanism) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.ExitCode(err))
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}

// setup loads the configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewConfigError("config", err.Error())
	}
	config.SetConfig(cfg)

	l, err := logging.FromConfigWithLevel(cfg.Logging, cmd.ErrOrStderr(), verbose, logLevel)
	if err != nil {
		return cli.NewConfigError("logging", err.Error())
	}
	logger = l.With("command", cmd.Name())
	slog.SetDefault(logger)
	return nil
}

// currentConfig returns the loaded configuration, or the defaults when
// setup has not run.
func currentConfig() *config.Config {
	if cfg := config.GetConfig(); cfg != nil {
		return cfg
	}
	return config.DefaultConfig()
}

// newParser builds a parser from the configuration. A nil recorder
// disables metrics.
func newParser(cfg *config.Config, recorder mechconf.Recorder) (*mechconf.Parser, error) {
	enc, err := document.ParseEncoding(cfg.Parser.Encoding)
	if err != nil {
		return nil, cli.NewConfigError("parser.encoding", err.Error())
	}

	opts := []mechconf.Option{
		mechconf.WithMaxFileSize(cfg.Parser.MaxFileSize),
		mechconf.WithEncoding(enc),
		mechconf.WithLogger(logger),
	}
	if recorder != nil {
		opts = append(opts, mechconf.WithMetrics(recorder))
	}
	return mechconf.NewParser(opts...), nil
}
