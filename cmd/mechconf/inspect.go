package main

import (
	"github.com/spf13/cobra"

	"openatmos/mechconf/pkg/cli"
)

var inspectFlags struct {
	format string
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Summarize a mechanism",
	Long: `Parse one mechanism and print its name, version, species, phases and
the number of reactions of each variant. Invalid files print their errors
as lint does.

Examples:
  mechconf inspect full.yaml
  mechconf inspect full.json --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectFlags.format, "format", "text", "output format: text, json")
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseFormat(inspectFlags.format)
	if err != nil {
		return err
	}

	parser, err := newParser(currentConfig(), nil)
	if err != nil {
		return err
	}

	m, err := parser.Parse(args[0])
	report := cli.NewFileReport(args[0], m, err)
	if err := cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), report); err != nil {
		return cli.NewCommandError("inspect", err)
	}
	if !report.Valid {
		return cli.ErrInvalidMechanism
	}
	return nil
}
