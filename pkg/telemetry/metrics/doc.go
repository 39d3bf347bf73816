// Package metrics provides Prometheus metrics for the mechconf tools.
//
// # Overview
//
// The Collector records two groups of metrics:
//
//   - Parse Metrics: parse calls by encoding and outcome, parse durations,
//     reported errors by type, and parsed reactions by variant
//   - Catalog Metrics: mechanisms held by the watch catalog, reloads and
//     rescans
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//
//	// Parse metrics are recorded by the parser itself
//	p := mechconf.NewParser(mechconf.WithMetrics(collector))
//
//	// Expose the endpoint
//	mux.Handle(cfg.Metrics.Path, collector.Handler())
//
// Metric names are prefixed with the configured namespace:
//
//	mechconf_parser_parses_total{encoding="yaml",outcome="success"} 12
//	mechconf_parser_errors_total{type="reference"} 3
//	mechconf_catalog_mechanisms{state="valid"} 8
package metrics
