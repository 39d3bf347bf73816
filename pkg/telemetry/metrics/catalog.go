package metrics

import (
	"time"

	"openatmos/mechconf/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// CatalogMetrics tracks the mechanism catalog kept by the watch command.
//
// Metrics:
//   - mechconf_catalog_mechanisms: mechanisms held, by state (valid, rejected)
//   - mechconf_catalog_reloads_total: single-file reloads by result
//   - mechconf_catalog_rescans_total: full rescans
//   - mechconf_catalog_rescan_duration_seconds: rescan duration histogram
type CatalogMetrics struct {
	mechanisms     *prometheus.GaugeVec
	reloadsTotal   *prometheus.CounterVec
	rescansTotal   prometheus.Counter
	rescanDuration prometheus.Histogram
}

// NewCatalogMetrics creates and registers catalog metrics with the provided registry.
// They share the namespace of the parse metrics and use the "catalog" subsystem.
func NewCatalogMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CatalogMetrics {
	cm := &CatalogMetrics{
		mechanisms: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: "catalog",
				Name:      "mechanisms",
				Help:      "Number of mechanism files held by the catalog",
			},
			[]string{"state"},
		),

		reloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "catalog",
				Name:      "reloads_total",
				Help:      "Total number of single-file catalog reloads",
			},
			[]string{"result"},
		),

		rescansTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "catalog",
				Name:      "rescans_total",
				Help:      "Total number of full catalog rescans",
			},
		),

		rescanDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: "catalog",
				Name:      "rescan_duration_seconds",
				Help:      "Duration of full catalog rescans in seconds",
				Buckets:   cfg.DurationBuckets,
			},
		),
	}

	registry.MustRegister(
		cm.mechanisms,
		cm.reloadsTotal,
		cm.rescansTotal,
		cm.rescanDuration,
	)

	return cm
}

// RecordReload records one single-file reload.
func (cm *CatalogMetrics) RecordReload(result string) {
	cm.reloadsTotal.WithLabelValues(result).Inc()
}

// RecordRescan records a full rescan.
func (cm *CatalogMetrics) RecordRescan(duration time.Duration) {
	cm.rescansTotal.Inc()
	cm.rescanDuration.Observe(duration.Seconds())
}

// SetSize sets the number of valid and rejected mechanisms.
func (cm *CatalogMetrics) SetSize(valid, rejected int) {
	cm.mechanisms.WithLabelValues("valid").Set(float64(valid))
	cm.mechanisms.WithLabelValues("rejected").Set(float64(rejected))
}
