package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"openatmos/mechconf/pkg/config"
)

// Rescanner reloads a catalog on a cron schedule. It catches changes the
// watcher misses, such as files on network mounts.
type Rescanner struct {
	catalog  *Catalog
	schedule string
	cron     *cron.Cron
	mu       sync.Mutex
	logger   *slog.Logger
	running  bool
}

// NewRescanner creates a rescanner for c. An empty schedule or
// config.RescanOff disables it.
func NewRescanner(c *Catalog, schedule string) *Rescanner {
	return &Rescanner{
		catalog:  c,
		schedule: schedule,
		cron:     cron.New(),
		logger:   c.logger.With("component", "catalog.rescanner"),
	}
}

// Start schedules the rescans and returns immediately. The scheduler stops
// when ctx is canceled.
//
// Common schedules:
//   - "*/15 * * * *" - Every 15 minutes
//   - "0 * * * *"    - Hourly
//   - "@every 30s"   - Every 30 seconds
func (r *Rescanner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.schedule == "" || r.schedule == config.RescanOff {
		r.logger.Info("rescan schedule not configured, skipping rescanner")
		return nil
	}
	if r.running {
		return fmt.Errorf("rescanner already running")
	}

	if _, err := cron.ParseStandard(r.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", r.schedule, err)
	}

	if _, err := r.cron.AddFunc(r.schedule, func() { r.run(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule rescan: %w", err)
	}

	r.cron.Start()
	r.running = true
	r.logger.Info("catalog rescanner started", "schedule", r.schedule)

	go func() {
		<-ctx.Done()
		r.Stop()
	}()

	return nil
}

func (r *Rescanner) run(ctx context.Context) {
	r.logger.Debug("starting scheduled rescan")

	summary, err := r.catalog.Rescan(ctx)
	if err != nil {
		r.logger.Error("scheduled rescan failed", "error", err)
		return
	}
	r.logger.Debug("scheduled rescan completed",
		"valid", summary.Valid,
		"rejected", summary.Rejected,
	)
}

// Stop stops the scheduler and waits for a running rescan to finish.
func (r *Rescanner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		<-r.cron.Stop().Done()
		r.running = false
		r.logger.Info("catalog rescanner stopped")
	}
}

// IsRunning returns true if the rescanner is scheduled.
func (r *Rescanner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.running
}

// NextRun returns the next scheduled rescan, or nil when not running.
func (r *Rescanner) NextRun() *time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return nil
	}
	entries := r.cron.Entries()
	if len(entries) == 0 {
		return nil
	}
	next := entries[0].Next
	return &next
}
