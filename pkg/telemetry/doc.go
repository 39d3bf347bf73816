// Package telemetry groups the observability packages of the mechconf tools.
//
// # Components
//
//   - logging: slog logger construction and context fields
//   - metrics: Prometheus metrics for parses and the watch catalog
//
// The mechconf library accepts a *slog.Logger and a metrics recorder as
// options and does not import these packages itself. The command line wires
// them from the host configuration:
//
//	logger, _ := logging.FromConfig(cfg.Logging, os.Stderr, verbose)
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//	p := mechconf.NewParser(
//	    mechconf.WithLogger(logger),
//	    mechconf.WithMetrics(collector),
//	)
package telemetry
