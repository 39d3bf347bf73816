package metrics

import (
	"fmt"
	"sync"
	"time"

	"openatmos/mechconf/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector owns the Prometheus metrics of the mechconf tools. It records
// parse outcomes for mechconf.Parser and catalog state for the watch
// command. Recording is a no-op when metrics are disabled.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	parseMetrics   *ParseMetrics
	catalogMetrics *CatalogMetrics

	cardinalityLimiter *CardinalityLimiter
}

// NewCollector creates a collector with the specified configuration and
// Prometheus registry. If registry is nil, a fresh registry is used.
//
// Example:
//
//	cfg := &config.MetricsConfig{
//		Enabled:   true,
//		Namespace: "mechconf",
//		Subsystem: "parser",
//	}
//	collector := metrics.NewCollector(cfg, nil)
//	p := mechconf.NewParser(mechconf.WithMetrics(collector))
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}
	if len(cfg.DurationBuckets) == 0 {
		cfg.DurationBuckets = append([]float64(nil), config.DefaultDurationBuckets...)
	}

	c := &Collector{
		config:             cfg,
		registry:           registry,
		cardinalityLimiter: NewCardinalityLimiter(1000),
	}

	c.parseMetrics = NewParseMetrics(cfg, registry)
	c.catalogMetrics = NewCatalogMetrics(cfg, registry)

	return c
}

// RecordParse records one parse call.
//
// Parameters:
//   - encoding: "yaml" or "json"
//   - outcome: "success", or the error type of a failed parse ("io",
//     "decode", "schema", "reference")
//   - duration: time from the start of the call to its outcome
func (c *Collector) RecordParse(encoding, outcome string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	if encoding == "" {
		encoding = "unknown"
	}
	c.parseMetrics.RecordParse(encoding, outcome, duration)
}

// RecordErrors records the errors of one type reported by a failed parse.
func (c *Collector) RecordErrors(errorType string, count int) {
	if !c.config.Enabled || count <= 0 {
		return
	}
	c.parseMetrics.RecordErrors(errorType, count)
}

// RecordReactions records the reactions of one variant in a parsed
// mechanism.
func (c *Collector) RecordReactions(variant string, count int) {
	if !c.config.Enabled || count <= 0 {
		return
	}
	if !c.cardinalityLimiter.Allow("reactions:" + variant) {
		variant = "other"
	}
	c.parseMetrics.RecordReactions(variant, count)
}

// RecordReload records one catalog reload of a single file.
//
// Parameters:
//   - result: "loaded", "rejected" or "removed"
func (c *Collector) RecordReload(result string) {
	if !c.config.Enabled {
		return
	}
	c.catalogMetrics.RecordReload(result)
}

// RecordRescan records a full catalog rescan.
func (c *Collector) RecordRescan(duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.catalogMetrics.RecordRescan(duration)
}

// SetCatalogSize sets the number of valid and rejected mechanisms held by
// the catalog.
func (c *Collector) SetCatalogSize(valid, rejected int) {
	if !c.config.Enabled {
		return
	}
	c.catalogMetrics.SetSize(valid, rejected)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// CardinalityLimiter caps the number of distinct label values recorded for
// a metric.
type CardinalityLimiter struct {
	maxCardinality int
	current        map[string]struct{}
	mu             sync.RWMutex
}

// NewCardinalityLimiter creates a limiter that admits at most
// maxCardinality distinct keys.
func NewCardinalityLimiter(maxCardinality int) *CardinalityLimiter {
	return &CardinalityLimiter{
		maxCardinality: maxCardinality,
		current:        make(map[string]struct{}),
	}
}

// Allow reports whether key may be recorded. Keys already seen are always
// allowed.
func (cl *CardinalityLimiter) Allow(key string) bool {
	cl.mu.RLock()
	_, seen := cl.current[key]
	cl.mu.RUnlock()
	if seen {
		return true
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()
	if _, seen := cl.current[key]; seen {
		return true
	}
	if len(cl.current) >= cl.maxCardinality {
		return false
	}
	cl.current[key] = struct{}{}
	return true
}

// Size returns the number of distinct keys admitted so far.
func (cl *CardinalityLimiter) Size() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return len(cl.current)
}

// String describes the limiter state.
func (cl *CardinalityLimiter) String() string {
	return fmt.Sprintf("cardinality %d/%d", cl.Size(), cl.maxCardinality)
}
