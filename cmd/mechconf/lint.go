package main

import (
	"github.com/spf13/cobra"

	"openatmos/mechconf/pkg/catalog"
	"openatmos/mechconf/pkg/cli"
)

var lintFlags struct {
	dir      string
	format   string
	progress bool
}

var lintCmd = &cobra.Command{
	Use:   "lint [files...]",
	Short: "Validate mechanism files",
	Long: `Validate chemical mechanism configurations.

Each file is decoded, checked against the schema of its reaction variants
and cross-checked for unknown species and phases. Every error is printed
with its location, the offending source lines and a suggestion when one is
available. The command exits with status 1 if any file is invalid.

Examples:
  # Lint files
  mechconf lint full.yaml cb05.json

  # Lint every .yaml, .yml and .json file under a directory
  mechconf lint --dir mechanisms/

  # JSON output for CI/CD
  mechconf lint --dir mechanisms/ --format json`,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of mechanism files")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
	lintCmd.Flags().BoolVar(&lintFlags.progress, "progress", false, "report progress on stderr")
}

func runLint(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseFormat(lintFlags.format)
	if err != nil {
		return err
	}

	cfg := currentConfig()
	files := append([]string(nil), args...)
	if lintFlags.dir != "" {
		loader := catalog.NewLoader(&catalog.LoaderConfig{
			Extensions:    cfg.Parser.Extensions,
			IncludeHidden: cfg.Watch.IncludeHidden,
		}, nil)
		found, err := loader.Collect(lintFlags.dir)
		if err != nil {
			return cli.NewConfigError("dir", err.Error())
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return cli.NewConfigError("files", "no mechanism files given (pass files or --dir)")
	}

	parser, err := newParser(cfg, nil)
	if err != nil {
		return err
	}

	var progress cli.ProgressReporter = cli.NoProgress{}
	if lintFlags.progress {
		progress = cli.NewProgressReporter(cmd.ErrOrStderr())
	}

	progress.Start(len(files))
	reports := make([]cli.FileReport, 0, len(files))
	for _, path := range files {
		m, err := parser.Parse(path)
		r := cli.NewFileReport(path, m, err)
		progress.Step(path, r.Valid)
		reports = append(reports, r)
	}
	progress.Finish()

	report := cli.NewLintReport(reports)
	if err := cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), report); err != nil {
		return cli.NewCommandError("lint", err)
	}
	if report.Failed() {
		return cli.ErrInvalidMechanism
	}
	return nil
}
