/*
Package cli provides command-line interface utilities for the mechconf command.

The cli package includes report types, output formatters, progress reporting
and common CLI helpers.

Reports:

Parse results are summarized as FileReport values, which carry every error
with its location and suggestion:

	m, err := p.Parse(path)
	report := cli.NewLintReport([]cli.FileReport{cli.NewFileReport(path, m, err)})

Output Formatting:

Reports are printed as text or JSON:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, report); err != nil {
		return err
	}

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
