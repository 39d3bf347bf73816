package catalog

import (
	"sort"
	"sync"
	"time"

	"openatmos/mechconf/pkg/mechconf/model"
)

// Entry is the latest parse result for one file.
type Entry struct {
	Path      string
	Mechanism *model.Mechanism
	Err       error
	LoadID    string
	LoadedAt  time.Time
}

// Valid reports whether the file parsed into a mechanism.
func (e *Entry) Valid() bool {
	return e.Err == nil && e.Mechanism != nil
}

// Registry is a thread-safe set of entries keyed by path.
type Registry struct {
	mu         sync.RWMutex
	entries    map[string]*Entry
	generation uint64
	updated    time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
		updated: time.Now(),
	}
}

// Put adds or replaces the entry for e.Path.
func (r *Registry) Put(e *Entry) error {
	if e == nil {
		return &RegistryError{Operation: "put", Message: "entry cannot be nil"}
	}
	if e.Path == "" {
		return &RegistryError{Operation: "put", Message: "entry path cannot be empty"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[e.Path] = e
	r.bump()
	return nil
}

// Remove deletes the entry for path and reports whether it existed.
func (r *Registry) Remove(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[path]; !ok {
		return false
	}
	delete(r.entries, path)
	r.bump()
	return true
}

// Replace atomically swaps the whole entry set.
func (r *Registry) Replace(entries []*Entry) error {
	next := make(map[string]*Entry, len(entries))
	for _, e := range entries {
		if e == nil || e.Path == "" {
			return &RegistryError{Operation: "replace", Message: "entries must be non-nil with a path"}
		}
		next[e.Path] = e
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = next
	r.bump()
	return nil
}

// Get returns the entry for path.
func (r *Registry) Get(path string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[path]
	return e, ok
}

// All returns every entry sorted by path.
func (r *Registry) All() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Path < all[j].Path })
	return all
}

// LookupName returns the first valid entry, in path order, whose mechanism
// has the given name.
func (r *Registry) LookupName(name string) (*Entry, bool) {
	for _, e := range r.All() {
		if e.Valid() && e.Mechanism.Name() == name {
			return e, true
		}
	}
	return nil, false
}

// Counts returns the number of valid and rejected entries.
func (r *Registry) Counts() (valid, rejected int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Valid() {
			valid++
		} else {
			rejected++
		}
	}
	return valid, rejected
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Generation increases on every change.
func (r *Registry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.generation
}

// Updated returns the time of the last change.
func (r *Registry) Updated() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.updated
}

// bump must be called with mu held.
func (r *Registry) bump() {
	r.generation++
	r.updated = time.Now()
}
