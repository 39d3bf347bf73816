package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"openatmos/mechconf/pkg/catalog"
	"openatmos/mechconf/pkg/cli"
	"openatmos/mechconf/pkg/config"
	"openatmos/mechconf/pkg/mechconf"
	"openatmos/mechconf/pkg/telemetry/metrics"
)

const shutdownTimeout = 5 * time.Second

var watchFlags struct {
	dir         string
	metricsAddr string
	rescan      string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep a directory of mechanisms parsed",
	Long: `Load every mechanism under a directory, re-parse on change and
periodically rescan. Parse and catalog metrics are served in the Prometheus
text format when metrics are enabled or --metrics-addr is given.

Send SIGHUP to re-read the configuration file. The log level and the rescan
schedule take effect immediately; other settings need a restart.

Examples:
  # Watch the current directory
  mechconf watch

  # Watch a directory and serve metrics
  mechconf watch --dir mechanisms/ --metrics-addr 127.0.0.1:9090

  # Rescan every five minutes
  mechconf watch --dir mechanisms/ --rescan "*/5 * * * *"`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFlags.dir, "dir", "d", "", "directory to watch (default from config)")
	watchCmd.Flags().StringVar(&watchFlags.metricsAddr, "metrics-addr", "", "serve metrics on this address")
	watchCmd.Flags().StringVar(&watchFlags.rescan, "rescan", "", `rescan cron schedule, or "off"`)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := *currentConfig()
	if watchFlags.dir != "" {
		cfg.Watch.Dir = watchFlags.dir
	}
	if watchFlags.rescan != "" {
		cfg.Watch.RescanSchedule = watchFlags.rescan
	}
	if watchFlags.metricsAddr != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.ListenAddress = watchFlags.metricsAddr
	}
	if err := config.Validate(&cfg); err != nil {
		return cli.NewConfigError("watch", err.Error())
	}

	ctx, stop := cli.SetupSignalHandler(cmd.Context())
	defer stop()

	var collector *metrics.Collector
	var recorder mechconf.Recorder
	catalogOpts := []catalog.Option{catalog.WithLogger(logger)}
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Metrics, nil)
		recorder = collector
		catalogOpts = append(catalogOpts, catalog.WithRecorder(collector))
	}

	parser, err := newParser(&cfg, recorder)
	if err != nil {
		return err
	}
	loader := catalog.NewLoader(&catalog.LoaderConfig{
		Extensions:    cfg.Parser.Extensions,
		IncludeHidden: cfg.Watch.IncludeHidden,
	}, parser)
	c := catalog.New(cfg.Watch.Dir, loader, catalogOpts...)

	summary, err := c.Load(ctx)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	printSummary(cmd, summary)

	watcher, err := catalog.NewWatcher(c, cfg.Watch.DebounceInterval)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer func() { _ = watcher.Stop() }()

	state, err := newWatchState(ctx, c, cfg.Watch.RescanSchedule)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer state.stop()

	errChan := make(chan error, 2)
	if collector != nil {
		srv, addr, err := serveMetrics(ctx, &cfg.Metrics, collector, errChan)
		if err != nil {
			return cli.NewCommandError("watch", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("metrics server shutdown failed", "error", err)
			}
		}()
		fmt.Fprintf(cmd.OutOrStdout(), "Metrics endpoint: http://%s%s\n", addr, cfg.Metrics.Path)
	}

	go func() {
		errChan <- watcher.Watch(ctx, func(s *catalog.Summary) { printSummary(cmd, s) })
	}()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, reloadSignals...)
	defer signal.Stop(hup)

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl+C to stop)\n", cfg.Watch.Dir)

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(cmd.OutOrStdout(), "Shutting down")
			return nil
		case err := <-errChan:
			if err != nil {
				return cli.NewCommandError("watch", err)
			}
			return nil
		case <-hup:
			if err := state.reload(ctx); err != nil {
				logger.Error("configuration reload failed", "error", err)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration reloaded")
		}
	}
}

// serveMetrics starts the metrics server in the background and returns
// the address it listens on. Listen errors are returned directly; later
// serve errors go to errChan.
func serveMetrics(ctx context.Context, cfg *config.MetricsConfig, collector *metrics.Collector, errChan chan<- error) (*http.Server, net.Addr, error) {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, collector.HandlerWithOptions(promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
		Timeout:           cfg.ScrapeTimeout,
	}))

	srv := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	ln, err := net.Listen("tcp", cfg.ListenAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to listen on %s: %w", cfg.ListenAddress, err)
	}

	go func() {
		logger.Info("serving metrics", "address", ln.Addr().String(), "path", cfg.Path)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("metrics server error: %w", err)
		}
	}()
	return srv, ln.Addr(), nil
}

func printSummary(cmd *cobra.Command, s *catalog.Summary) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d file(s), %d valid, %d rejected\n",
		s.Result, s.Files, s.Valid, s.Rejected)
}
