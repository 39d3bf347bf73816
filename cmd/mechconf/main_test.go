package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"openatmos/mechconf/pkg/cli"
	"openatmos/mechconf/pkg/config"
	mcerrors "openatmos/mechconf/pkg/mechconf/errors"
)

const (
	fullYAML = "../../pkg/mechconf/testdata/full_v1.yaml"
	fullJSON = "../../pkg/mechconf/testdata/full_v1.json"
)

// newTestCmd returns a command whose output is captured.
func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	return cmd, &out
}

func resetLintFlags() {
	lintFlags.dir = ""
	lintFlags.format = "text"
	lintFlags.progress = false
}

func writeInvalid(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "typo.yaml")
	doc := "version: 1.0.0\nspecies: [{name: A}]\nphases:\n  - name: gas\n    species: [A, Aa]\nreactions: []\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLint_ValidFiles(t *testing.T) {
	resetLintFlags()
	cmd, out := newTestCmd()

	if err := runLint(cmd, []string{fullYAML, fullJSON}); err != nil {
		t.Fatalf("runLint() error = %v\n%s", err, out)
	}
	if !strings.Contains(out.String(), "2 file(s) checked: 2 valid, 0 invalid, 0 error(s)") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestLint_InvalidFile(t *testing.T) {
	resetLintFlags()
	cmd, out := newTestCmd()
	path := writeInvalid(t)

	err := runLint(cmd, []string{path})
	if !errors.Is(err, cli.ErrInvalidMechanism) {
		t.Fatalf("runLint() error = %v, want ErrInvalidMechanism", err)
	}
	if cli.ExitCode(err) != cli.ExitInvalid {
		t.Errorf("ExitCode() = %d, want %d", cli.ExitCode(err), cli.ExitInvalid)
	}
	for _, want := range []string{"FAIL  " + path, "PhaseRequiresUnknownSpecies", "did you mean 'A'?"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLint_Dir(t *testing.T) {
	resetLintFlags()
	dir := t.TempDir()
	data, err := os.ReadFile(fullYAML)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.yaml", "b.yml", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	lintFlags.dir = dir
	lintFlags.format = "json"
	defer resetLintFlags()

	cmd, out := newTestCmd()
	if err := runLint(cmd, nil); err != nil {
		t.Fatalf("runLint() error = %v", err)
	}

	var report cli.LintReport
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(report.Files) != 2 || report.Valid != 2 {
		t.Errorf("report = %+v, want 2 valid files", report)
	}
}

func TestLint_Progress(t *testing.T) {
	resetLintFlags()
	lintFlags.progress = true
	defer resetLintFlags()

	cmd, out := newTestCmd()
	if err := runLint(cmd, []string{fullYAML}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "[1/1] ok") {
		t.Errorf("progress missing:\n%s", out)
	}
}

func TestLint_UsageErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		dir    string
		format string
	}{
		{"no files", nil, "", "text"},
		{"bad format", []string{fullYAML}, "", "xml"},
		{"missing dir", nil, "does-not-exist", "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetLintFlags()
			lintFlags.dir = tt.dir
			lintFlags.format = tt.format
			defer resetLintFlags()

			cmd, _ := newTestCmd()
			err := runLint(cmd, tt.args)
			if cli.ExitCode(err) != cli.ExitUsage {
				t.Errorf("runLint() error = %v, want usage error", err)
			}
		})
	}
}

func TestLint_MissingFile(t *testing.T) {
	resetLintFlags()
	cmd, out := newTestCmd()

	err := runLint(cmd, []string{"testdata/nonexistent.yaml"})
	if !errors.Is(err, cli.ErrInvalidMechanism) {
		t.Fatalf("runLint() error = %v, want ErrInvalidMechanism", err)
	}
	if !strings.Contains(out.String(), "[io] FileNotFound") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestInspect(t *testing.T) {
	inspectFlags.format = "text"
	cmd, out := newTestCmd()

	if err := runInspect(cmd, []string{fullJSON}); err != nil {
		t.Fatalf("runInspect() error = %v", err)
	}
	for _, want := range []string{"Mechanism: Full Configuration", "Reactions (16):", "CONDENSED_PHASE_ARRHENIUS    2"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInspect_Invalid(t *testing.T) {
	inspectFlags.format = "text"
	cmd, _ := newTestCmd()

	if err := runInspect(cmd, []string{writeInvalid(t)}); !errors.Is(err, cli.ErrInvalidMechanism) {
		t.Errorf("runInspect() error = %v, want ErrInvalidMechanism", err)
	}
}

func TestNewParser_Config(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Parser.Encoding = "toml"
	if _, err := newParser(cfg, nil); cli.ExitCode(err) != cli.ExitUsage {
		t.Errorf("newParser() error = %v, want usage error", err)
	}

	cfg.Parser.Encoding = "json"
	cfg.Parser.MaxFileSize = 16
	p, err := newParser(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.Parse(fullJSON)
	errs := mcerrors.List(err)
	if len(errs) != 1 || errs[0].Code != mcerrors.CodeFileTooLarge {
		t.Errorf("Parse() error = %v, want FileTooLarge", err)
	}
}

func TestCurrentConfig_Defaults(t *testing.T) {
	saved := config.GetConfig()
	defer config.SetConfig(saved)

	config.SetConfig(nil)
	if cfg := currentConfig(); cfg.Parser.MaxFileSize != config.DefaultMaxFileSize {
		t.Errorf("MaxFileSize = %d, want default", cfg.Parser.MaxFileSize)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd, out := newTestCmd()
	versionCmd.Run(cmd, nil)

	for _, want := range []string{"mechconf " + Version, "Go Version: " + runtime.Version()} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRootCommands(t *testing.T) {
	want := map[string]bool{"lint": false, "inspect": false, "watch": false, "version": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
