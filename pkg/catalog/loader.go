package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"openatmos/mechconf/pkg/mechconf"
)

// LoaderConfig selects which files in a directory are mechanisms.
type LoaderConfig struct {
	// Extensions lists the accepted suffixes (e.g., ".yaml", ".json").
	Extensions []string

	// IncludeHidden includes dot files and dot directories.
	IncludeHidden bool
}

// DefaultLoaderConfig returns the default loader configuration.
func DefaultLoaderConfig() *LoaderConfig {
	return &LoaderConfig{
		Extensions: []string{".yaml", ".yml", ".json"},
	}
}

// Loader finds mechanism files and parses them.
type Loader struct {
	config *LoaderConfig
	parser *mechconf.Parser
}

// NewLoader creates a loader. A nil config uses DefaultLoaderConfig and a
// nil parser uses mechconf.NewParser().
func NewLoader(config *LoaderConfig, parser *mechconf.Parser) *Loader {
	if config == nil {
		config = DefaultLoaderConfig()
	}
	if parser == nil {
		parser = mechconf.NewParser()
	}
	return &Loader{
		config: config,
		parser: parser,
	}
}

// Collect returns the mechanism files under dir in lexical order.
func (l *Loader) Collect(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Path: dir, Message: "directory not found", Cause: err}
		}
		return nil, &LoadError{Path: dir, Message: "failed to access directory", Cause: err}
	}
	if !info.IsDir() {
		return nil, &LoadError{Path: dir, Message: "not a directory"}
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != dir && l.hidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if d.Type().IsRegular() && l.Matches(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, &LoadError{Path: dir, Message: "failed to scan directory", Cause: err}
	}

	sort.Strings(files)
	return files, nil
}

// Matches reports whether path has an accepted extension and is not
// hidden.
func (l *Loader) Matches(path string) bool {
	if l.hidden(path) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, valid := range l.config.Extensions {
		if ext == strings.ToLower(valid) {
			return true
		}
	}
	return false
}

func (l *Loader) hidden(path string) bool {
	return !l.config.IncludeHidden && strings.HasPrefix(filepath.Base(path), ".")
}

// LoadFile parses one file into an entry. Parse failures are stored on
// the entry rather than returned.
func (l *Loader) LoadFile(path string) *Entry {
	m, err := l.parser.Parse(path)
	return &Entry{
		Path:      path,
		Mechanism: m,
		Err:       err,
		LoadID:    uuid.NewString(),
		LoadedAt:  time.Now(),
	}
}
