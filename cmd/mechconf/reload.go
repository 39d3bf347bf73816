package main

import (
	"context"
	"os"
	"syscall"

	"openatmos/mechconf/pkg/catalog"
	"openatmos/mechconf/pkg/config"
	"openatmos/mechconf/pkg/telemetry/logging"
)

// reloadSignals ask a running watch to re-read its configuration file.
var reloadSignals = []os.Signal{syscall.SIGHUP}

// watchState holds the parts of a running watch a configuration reload
// may replace.
type watchState struct {
	catalog   *catalog.Catalog
	rescanner *catalog.Rescanner
	schedule  string
}

func newWatchState(ctx context.Context, c *catalog.Catalog, schedule string) (*watchState, error) {
	r := catalog.NewRescanner(c, schedule)
	if err := r.Start(ctx); err != nil {
		return nil, err
	}
	return &watchState{catalog: c, rescanner: r, schedule: schedule}, nil
}

// reload re-reads the configuration and applies the log level and the
// rescan schedule. A --rescan flag keeps precedence over the file. On
// error the running configuration stays in place.
func (s *watchState) reload(ctx context.Context) error {
	if err := config.ReloadConfig(cfgFile); err != nil {
		return err
	}
	cfg := config.GetConfig()

	if err := logging.ApplyLevel(logLevel, cfg.Logging, verbose); err != nil {
		return err
	}

	schedule := cfg.Watch.RescanSchedule
	if watchFlags.rescan != "" {
		schedule = watchFlags.rescan
	}
	if schedule == s.schedule {
		return nil
	}

	next := catalog.NewRescanner(s.catalog, schedule)
	if err := next.Start(ctx); err != nil {
		return err
	}
	s.rescanner.Stop()
	s.rescanner, s.schedule = next, schedule
	logger.Info("rescan schedule changed", "schedule", schedule)
	return nil
}

func (s *watchState) stop() {
	s.rescanner.Stop()
}
