package camp

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"openatmos/mechconf/pkg/mechconf/document"
	mcerrors "openatmos/mechconf/pkg/mechconf/errors"
	"openatmos/mechconf/pkg/mechconf/model"
	"openatmos/mechconf/pkg/mechconf/parser"
)

// Read loads the CAMP configuration at path, which is either an entry
// point file or a directory holding one. A maxSize of zero or less uses
// parser.DefaultMaxFileSize for every file.
//
// The error is an io or decode *errors.Error, or an *errors.ErrorList of
// schema errors or missing data files. The Mechanism is nil whenever the
// error is not.
func Read(path string, maxSize int64) (*Mechanism, error) {
	files, err := Files(path, maxSize)
	if err != nil {
		return nil, err
	}
	return Load(files, maxSize)
}

// EntryPoint resolves the entry point file of path. A directory resolves
// to its config.yaml, or to config.json when config.yaml is missing.
func EntryPoint(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			e := mcerrors.New(mcerrors.ErrorTypeIO, mcerrors.CodeFileNotFound,
				fmt.Sprintf("file %q does not exist", path), document.Location{File: path})
			e.Err = err
			return "", e
		}
		e := mcerrors.New(mcerrors.ErrorTypeIO, mcerrors.CodeFileUnreadable,
			fmt.Sprintf("cannot access file: %v", err), document.Location{File: path})
		e.Err = err
		return "", e
	}
	if !info.IsDir() {
		return path, nil
	}
	yamlPath := filepath.Join(path, DefaultConfigYAML)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath, nil
	}
	return filepath.Join(path, DefaultConfigJSON), nil
}

// Files reads the entry point at path and returns its data files in
// listed order. Every missing data file is reported.
func Files(path string, maxSize int64) ([]string, error) {
	configPath, err := EntryPoint(path)
	if err != nil {
		return nil, err
	}
	data, err := parser.ReadFile(configPath, maxSize)
	if err != nil {
		return nil, err
	}
	root, _, err := parser.Decode(data, document.EncodingAuto, configPath)
	if err != nil {
		return nil, err
	}

	errs := mcerrors.NewErrorList()
	subject := func(e *mcerrors.Error, index int) {
		e.Entity = EntityConfig
		e.Index = index
		e.Field = KeyCampFiles
	}

	list := root.Get(KeyCampFiles)
	if list == nil {
		loc := document.Location{File: configPath, Line: 1, Column: 1}
		if root != nil {
			loc = root.Location
		}
		e := errs.AddError(mcerrors.ErrorTypeSchema, mcerrors.CodeRequiredKeyNotFound,
			fmt.Sprintf("missing required key '%s'", KeyCampFiles), loc)
		subject(e, mcerrors.NoIndex)
		e.Suggestion = mcerrors.SuggestMissingKey(KeyCampFiles)
		errs.AddContext(data)
		return nil, errs
	}
	if list.Kind != document.KindSequence {
		e := errs.AddError(mcerrors.ErrorTypeSchema, mcerrors.CodeInvalidType,
			fmt.Sprintf("'%s' must be a sequence of file names, got %s", KeyCampFiles, list.Kind), list.Location)
		subject(e, mcerrors.NoIndex)
		errs.AddContext(data)
		return nil, errs
	}

	dir := filepath.Dir(configPath)
	files := make([]string, 0, len(list.Items))
	for i, item := range list.Items {
		name, ok := item.Text()
		if !ok {
			e := errs.AddError(mcerrors.ErrorTypeSchema, mcerrors.CodeInvalidType,
				fmt.Sprintf("'%s[%d]' must be a file name, got %s", KeyCampFiles, i, item.Kind), item.Location)
			subject(e, i)
			continue
		}
		file := filepath.Join(dir, name)
		if _, err := os.Stat(file); err != nil {
			e := errs.AddError(mcerrors.ErrorTypeIO, mcerrors.CodeFileNotFound,
				fmt.Sprintf("data file %q does not exist", file), item.Location)
			subject(e, i)
			e.Err = err
			continue
		}
		files = append(files, file)
	}
	if errs.HasErrors() {
		errs.AddContext(data)
		return nil, errs
	}
	return files, nil
}

// Load builds one Mechanism from the given data files in order. A decode
// error stops the load; schema errors are collected across every file.
func Load(files []string, maxSize int64) (*Mechanism, error) {
	m := &Mechanism{Version: model.Version{}}
	errs := mcerrors.NewErrorList()
	for _, file := range files {
		data, err := parser.ReadFile(file, maxSize)
		if err != nil {
			return nil, err
		}
		root, _, err := parser.Decode(data, document.EncodingAuto, file)
		if err != nil {
			return nil, err
		}
		b := newBuilder(m, file)
		b.data(root)
		if b.errors.HasErrors() {
			b.errors.AddContext(data)
			errs.Merge(b.errors)
		}
	}
	if errs.HasErrors() {
		return nil, errs
	}
	m.attachGasPhase()
	return m, nil
}
