package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"openatmos/mechconf/pkg/telemetry/logging"
)

// Reload results reported to the Recorder.
const (
	ReloadSuccess = "success"
	ReloadPartial = "partial"
	ReloadFailure = "failure"
)

// Recorder receives catalog metrics. *metrics.Collector implements it.
type Recorder interface {
	RecordReload(result string)
	RecordRescan(duration time.Duration)
	SetCatalogSize(valid, rejected int)
}

// Summary describes one load of the catalog directory.
type Summary struct {
	LoadID   string
	Files    int
	Valid    int
	Rejected int
	Result   string
	Duration time.Duration
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Catalog) {
		c.recorder = r
	}
}

// Catalog keeps the mechanisms under a directory parsed.
type Catalog struct {
	dir      string
	loader   *Loader
	registry *Registry
	logger   *slog.Logger
	recorder Recorder

	// loadMu serializes loads triggered by the watcher and the rescanner.
	loadMu sync.Mutex
}

// New creates a catalog for dir. Nothing is parsed until Load is called.
func New(dir string, loader *Loader, opts ...Option) *Catalog {
	if loader == nil {
		loader = NewLoader(nil, nil)
	}
	c := &Catalog{
		dir:      dir,
		loader:   loader,
		registry: NewRegistry(),
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dir returns the catalog directory.
func (c *Catalog) Dir() string { return c.dir }

// Loader returns the loader used for parsing.
func (c *Catalog) Loader() *Loader { return c.loader }

// Registry returns the current entries.
func (c *Catalog) Registry() *Registry { return c.registry }

// Load parses every mechanism file under the directory and replaces the
// registry contents. Invalid files are kept as rejected entries. An error
// is returned only when the directory cannot be scanned or ctx is done,
// and the registry is then left unchanged.
func (c *Catalog) Load(ctx context.Context) (*Summary, error) {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	started := time.Now()
	summary := &Summary{LoadID: uuid.NewString()}
	ctx = logging.WithSource(logging.WithLoadID(ctx, summary.LoadID), c.dir)
	logger := logging.WithContext(c.logger, ctx)

	files, err := c.loader.Collect(c.dir)
	if err != nil {
		c.record(ReloadFailure)
		logger.Error("catalog load failed", "error", err)
		return nil, err
	}

	entries := make([]*Entry, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			c.record(ReloadFailure)
			return nil, err
		}
		e := c.loader.LoadFile(path)
		if !e.Valid() {
			logger.Warn("mechanism rejected", "path", path, "error", e.Err)
		}
		entries = append(entries, e)
	}

	if err := c.registry.Replace(entries); err != nil {
		c.record(ReloadFailure)
		return nil, err
	}

	summary.Files = len(entries)
	summary.Valid, summary.Rejected = c.registry.Counts()
	summary.Result = resultOf(summary.Valid, summary.Rejected)
	summary.Duration = time.Since(started)

	c.record(summary.Result)
	if c.recorder != nil {
		c.recorder.SetCatalogSize(summary.Valid, summary.Rejected)
	}

	logger.Info("catalog loaded",
		"files", summary.Files,
		"valid", summary.Valid,
		"rejected", summary.Rejected,
		"result", summary.Result,
		"duration", summary.Duration,
	)
	return summary, nil
}

// Rescan is a Load run by the periodic scheduler. Its duration is
// recorded separately.
func (c *Catalog) Rescan(ctx context.Context) (*Summary, error) {
	started := time.Now()
	summary, err := c.Load(ctx)
	if c.recorder != nil {
		c.recorder.RecordRescan(time.Since(started))
	}
	return summary, err
}

func (c *Catalog) record(result string) {
	if c.recorder != nil {
		c.recorder.RecordReload(result)
	}
}

func resultOf(valid, rejected int) string {
	switch {
	case rejected == 0:
		return ReloadSuccess
	case valid == 0:
		return ReloadFailure
	default:
		return ReloadPartial
	}
}
