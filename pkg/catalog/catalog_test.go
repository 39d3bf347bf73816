package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

const invalidMechanism = "version: 1.0.0\nspecies: []\nphases:\n  - name: gas\n    species: [ozone]\nreactions: []\n"

type fakeRecorder struct {
	mu       sync.Mutex
	reloads  []string
	rescans  int
	valid    int
	rejected int
}

func (f *fakeRecorder) RecordReload(result string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reloads = append(f.reloads, result)
}

func (f *fakeRecorder) RecordRescan(time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rescans++
}

func (f *fakeRecorder) SetCatalogSize(valid, rejected int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.valid, f.rejected = valid, rejected
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "mechconf", "testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

// newTree lays out two valid mechanisms, one invalid one and files the
// loader must skip.
func newTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "full.yaml"), readFixture(t, "full_v1.yaml"))
	writeFile(t, filepath.Join(dir, "nested", "full.json"), readFixture(t, "full_v1.json"))
	writeFile(t, filepath.Join(dir, "broken.yml"), []byte(invalidMechanism))
	writeFile(t, filepath.Join(dir, "README.md"), []byte("# mechanisms\n"))
	writeFile(t, filepath.Join(dir, ".draft.yaml"), []byte(invalidMechanism))
	writeFile(t, filepath.Join(dir, ".git", "config.yaml"), []byte(invalidMechanism))
	return dir
}

func TestLoader_Collect(t *testing.T) {
	dir := newTree(t)
	loader := NewLoader(nil, nil)

	files, err := loader.Collect(dir)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []string{
		filepath.Join(dir, "broken.yml"),
		filepath.Join(dir, "full.yaml"),
		filepath.Join(dir, "nested", "full.json"),
	}
	if len(files) != len(want) {
		t.Fatalf("Collect() = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestLoader_Collect_IncludeHidden(t *testing.T) {
	dir := newTree(t)
	loader := NewLoader(&LoaderConfig{Extensions: []string{".yaml"}, IncludeHidden: true}, nil)

	files, err := loader.Collect(dir)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(files) != 3 {
		t.Errorf("Collect() = %v, want .draft.yaml, .git/config.yaml and full.yaml", files)
	}
}

func TestLoader_Collect_Errors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.yaml")
	writeFile(t, file, []byte("x: 1\n"))

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing")},
		{"not a directory", file},
	}
	loader := NewLoader(nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Collect(tt.path)
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("Collect() error = %v, want *LoadError", err)
			}
			if loadErr.Path != tt.path {
				t.Errorf("Path = %q, want %q", loadErr.Path, tt.path)
			}
		})
	}
}

func TestLoader_Matches(t *testing.T) {
	loader := NewLoader(nil, nil)
	tests := []struct {
		path string
		want bool
	}{
		{"a.yaml", true},
		{"a.YML", true},
		{"dir/a.json", true},
		{"a.txt", false},
		{".a.yaml", false},
		{"a.yaml.swp", false},
	}
	for _, tt := range tests {
		if got := loader.Matches(tt.path); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLoader_LoadFile(t *testing.T) {
	dir := newTree(t)
	loader := NewLoader(nil, nil)

	good := loader.LoadFile(filepath.Join(dir, "full.yaml"))
	if !good.Valid() {
		t.Fatalf("LoadFile(full.yaml) error = %v", good.Err)
	}
	if good.Mechanism.ReactionCount() != 16 {
		t.Errorf("ReactionCount() = %d, want 16", good.Mechanism.ReactionCount())
	}
	if good.LoadID == "" {
		t.Error("LoadID is empty")
	}

	bad := loader.LoadFile(filepath.Join(dir, "broken.yml"))
	if bad.Valid() || bad.Err == nil {
		t.Error("LoadFile(broken.yml) is valid, want rejected")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	if err := r.Put(nil); err == nil {
		t.Error("Put(nil) error = nil")
	}
	if err := r.Put(&Entry{}); err == nil {
		t.Error("Put(empty path) error = nil")
	}

	gen := r.Generation()
	if err := r.Put(&Entry{Path: "b.yaml", Err: errors.New("bad")}); err != nil {
		t.Fatal(err)
	}
	if err := r.Put(&Entry{Path: "a.yaml", Err: errors.New("bad")}); err != nil {
		t.Fatal(err)
	}
	if r.Generation() != gen+2 {
		t.Errorf("Generation() = %d, want %d", r.Generation(), gen+2)
	}

	all := r.All()
	if len(all) != 2 || all[0].Path != "a.yaml" {
		t.Errorf("All() = %v, want sorted by path", all)
	}
	if valid, rejected := r.Counts(); valid != 0 || rejected != 2 {
		t.Errorf("Counts() = %d, %d, want 0, 2", valid, rejected)
	}

	if !r.Remove("a.yaml") || r.Remove("a.yaml") {
		t.Error("Remove() should succeed once")
	}
	if _, ok := r.Get("a.yaml"); ok {
		t.Error("Get() found a removed entry")
	}

	if err := r.Replace([]*Entry{{Path: "c.yaml"}}); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
	if err := r.Replace([]*Entry{nil}); err == nil {
		t.Error("Replace(nil entry) error = nil")
	}
	if r.Len() != 1 {
		t.Error("failed Replace() changed the registry")
	}
}

func TestCatalog_Load(t *testing.T) {
	dir := newTree(t)
	rec := &fakeRecorder{}
	c := New(dir, nil, WithRecorder(rec))

	summary, err := c.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if summary.Files != 3 || summary.Valid != 2 || summary.Rejected != 1 {
		t.Errorf("summary = %+v, want 3 files, 2 valid, 1 rejected", summary)
	}
	if summary.Result != ReloadPartial {
		t.Errorf("Result = %q, want %q", summary.Result, ReloadPartial)
	}
	if rec.valid != 2 || rec.rejected != 1 {
		t.Errorf("catalog size = %d/%d, want 2/1", rec.valid, rec.rejected)
	}
	if len(rec.reloads) != 1 || rec.reloads[0] != ReloadPartial {
		t.Errorf("reloads = %v", rec.reloads)
	}

	e, ok := c.Registry().LookupName("Full Configuration")
	if !ok {
		t.Fatal("LookupName() found nothing")
	}
	if e.Path != filepath.Join(dir, "full.yaml") {
		t.Errorf("LookupName() path = %q, want full.yaml first", e.Path)
	}

	yamlEntry, _ := c.Registry().Get(filepath.Join(dir, "full.yaml"))
	jsonEntry, _ := c.Registry().Get(filepath.Join(dir, "nested", "full.json"))
	if !yamlEntry.Mechanism.Equal(jsonEntry.Mechanism) {
		t.Error("YAML and JSON entries differ")
	}
}

func TestCatalog_Load_ReplacesEntries(t *testing.T) {
	dir := newTree(t)
	c := New(dir, nil)
	ctx := context.Background()

	if _, err := c.Load(ctx); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(dir, "broken.yml")); err != nil {
		t.Fatal(err)
	}

	summary, err := c.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Result != ReloadSuccess || c.Registry().Len() != 2 {
		t.Errorf("after removal: result %q, %d entries", summary.Result, c.Registry().Len())
	}
}

func TestCatalog_Load_MissingDir(t *testing.T) {
	rec := &fakeRecorder{}
	c := New(filepath.Join(t.TempDir(), "missing"), nil, WithRecorder(rec))

	if _, err := c.Load(context.Background()); err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	if len(rec.reloads) != 1 || rec.reloads[0] != ReloadFailure {
		t.Errorf("reloads = %v, want [failure]", rec.reloads)
	}
}

func TestCatalog_Load_Canceled(t *testing.T) {
	c := New(newTree(t), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
	if c.Registry().Len() != 0 {
		t.Error("canceled Load() changed the registry")
	}
}

func TestCatalog_Rescan(t *testing.T) {
	rec := &fakeRecorder{}
	c := New(newTree(t), nil, WithRecorder(rec))

	if _, err := c.Rescan(context.Background()); err != nil {
		t.Fatal(err)
	}
	if rec.rescans != 1 {
		t.Errorf("rescans = %d, want 1", rec.rescans)
	}
}

func TestResultOf(t *testing.T) {
	tests := []struct {
		valid, rejected int
		want            string
	}{
		{0, 0, ReloadSuccess},
		{3, 0, ReloadSuccess},
		{2, 1, ReloadPartial},
		{0, 2, ReloadFailure},
	}
	for _, tt := range tests {
		if got := resultOf(tt.valid, tt.rejected); got != tt.want {
			t.Errorf("resultOf(%d, %d) = %q, want %q", tt.valid, tt.rejected, got, tt.want)
		}
	}
}
