package metrics

import (
	"time"

	"openatmos/mechconf/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// ParseMetrics tracks mechanism parse calls.
//
// Metrics:
//   - mechconf_parser_parses_total: parse calls by encoding and outcome
//   - mechconf_parser_parse_duration_seconds: parse duration histogram
//   - mechconf_parser_errors_total: reported errors by type
//   - mechconf_parser_reactions_total: reactions in parsed mechanisms by variant
type ParseMetrics struct {
	parsesTotal    *prometheus.CounterVec
	parseDuration  *prometheus.HistogramVec
	errorsTotal    *prometheus.CounterVec
	reactionsTotal *prometheus.CounterVec
}

// NewParseMetrics creates and registers parse metrics with the provided registry.
func NewParseMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ParseMetrics {
	pm := &ParseMetrics{
		parsesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parses_total",
				Help:      "Total number of mechanism parse calls",
			},
			[]string{"encoding", "outcome"},
		),

		parseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parse_duration_seconds",
				Help:      "Duration of mechanism parse calls in seconds",
				Buckets:   cfg.DurationBuckets,
			},
			[]string{"encoding"},
		),

		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "errors_total",
				Help:      "Total number of errors reported by failed parses",
			},
			[]string{"type"},
		),

		reactionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "reactions_total",
				Help:      "Total number of reactions in parsed mechanisms",
			},
			[]string{"variant"},
		),
	}

	registry.MustRegister(
		pm.parsesTotal,
		pm.parseDuration,
		pm.errorsTotal,
		pm.reactionsTotal,
	)

	return pm
}

// RecordParse records one parse call.
func (pm *ParseMetrics) RecordParse(encoding, outcome string, duration time.Duration) {
	pm.parsesTotal.WithLabelValues(encoding, outcome).Inc()
	pm.parseDuration.WithLabelValues(encoding).Observe(duration.Seconds())
}

// RecordErrors adds count errors of one type.
func (pm *ParseMetrics) RecordErrors(errorType string, count int) {
	pm.errorsTotal.WithLabelValues(errorType).Add(float64(count))
}

// RecordReactions adds count reactions of one variant.
func (pm *ParseMetrics) RecordReactions(variant string, count int) {
	pm.reactionsTotal.WithLabelValues(variant).Add(float64(count))
}
