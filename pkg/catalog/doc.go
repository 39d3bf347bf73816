// Package catalog keeps a directory of mechanism configurations parsed and
// up to date.
//
// A Loader finds mechanism files by extension and parses each one with a
// mechconf.Parser. A Catalog stores the latest result for every file in a
// Registry, valid or not, so a broken edit is visible next to the files that
// still parse.
//
// Keeping a catalog in sync:
//
//	loader := catalog.NewLoader(nil, mechconf.NewParser())
//	c := catalog.New("mechanisms", loader, catalog.WithLogger(logger))
//	if _, err := c.Load(ctx); err != nil {
//		return err
//	}
//
//	w, err := catalog.NewWatcher(c, 100*time.Millisecond)
//	if err != nil {
//		return err
//	}
//	defer w.Stop()
//
//	r := catalog.NewRescanner(c, "*/15 * * * *")
//	if err := r.Start(ctx); err != nil {
//		return err
//	}
//
//	return w.Watch(ctx, nil)
//
// The Watcher collapses bursts of file events into one reload. The
// Rescanner reloads on a cron schedule for changes that produce no events.
// Loads are serialized, and each one replaces the registry atomically.
package catalog
