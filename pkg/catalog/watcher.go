package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"openatmos/mechconf/pkg/telemetry/logging"
)

// DefaultDebounceInterval is the quiet period before a reload.
const DefaultDebounceInterval = 100 * time.Millisecond

// Watcher reloads a catalog when mechanism files under its directory
// change. Bursts of events are collapsed into one reload.
type Watcher struct {
	catalog  *Catalog
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce *Debouncer

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// NewWatcher creates a watcher for c. A non-positive interval uses
// DefaultDebounceInterval.
func NewWatcher(c *Catalog, interval time.Duration) (*Watcher, error) {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		catalog:  c,
		watcher:  fsw,
		logger:   c.logger,
		debounce: NewDebouncer(interval),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Watch blocks until ctx is canceled or Stop is called. After each quiet
// period following a relevant event the catalog is reloaded and onReload,
// if non-nil, receives the summary.
func (w *Watcher) Watch(ctx context.Context, onReload func(*Summary)) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return errors.New("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.doneCh)
	}()

	if err := w.addTree(w.catalog.dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", w.catalog.dir, err)
	}

	logger := logging.WithContext(w.logger, logging.WithSource(ctx, w.catalog.dir))
	logger.Info("catalog watcher started", "debounce", w.debounce.interval)

	for {
		select {
		case <-ctx.Done():
			logger.Info("catalog watcher stopped")
			return nil

		case <-w.stopCh:
			logger.Info("catalog watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if w.isNewDir(event) {
				if err := w.addTree(event.Name); err != nil {
					logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
				}
				continue
			}
			if !w.relevant(event) {
				continue
			}

			logger.Debug("mechanism file changed", "path", event.Name, "op", event.Op.String())
			w.debounce.Trigger(func() {
				summary, err := w.catalog.Load(ctx)
				if err != nil {
					logger.Error("catalog reload failed", "error", err)
					return
				}
				if onReload != nil {
					onReload(summary)
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			logger.Error("catalog watcher error", "error", err)
		}
	}
}

// Stop stops a running Watch and releases the underlying watcher. It is
// safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.once.Do(func() {
		w.mu.Lock()
		running := w.running
		w.mu.Unlock()

		close(w.stopCh)
		if running {
			<-w.doneCh
		}
		w.debounce.Stop()
		if cerr := w.watcher.Close(); cerr != nil {
			err = fmt.Errorf("failed to close watcher: %w", cerr)
		}
	})
	return err
}

// addTree watches root and every non-hidden directory below it.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.catalog.loader.hidden(path) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", path, err)
		}
		w.logger.Debug("watching directory", "path", path)
		return nil
	})
}

func (w *Watcher) isNewDir(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) {
		return false
	}
	info, err := os.Stat(event.Name)
	return err == nil && info.IsDir() && !w.catalog.loader.hidden(event.Name)
}

// relevant ignores chmod events and files the loader would skip. Removes
// and renames of mechanism files count.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return w.catalog.loader.Matches(event.Name)
}

// Debouncer collects rapid events and runs the latest callback once the
// interval has passed without a new event.
type Debouncer struct {
	interval time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	callback func()
	stopCh   chan struct{}
	once     sync.Once
}

// NewDebouncer creates a new debouncer.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Trigger schedules callback, replacing any pending one.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	select {
	case <-d.stopCh:
		return
	default:
	}

	d.callback = callback
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		select {
		case <-d.stopCh:
			return
		default:
		}
		d.mu.Lock()
		cb := d.callback
		d.callback = nil
		d.mu.Unlock()

		if cb != nil {
			cb()
		}
	})
}

// Stop cancels any pending callback. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.once.Do(func() { close(d.stopCh) })

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
