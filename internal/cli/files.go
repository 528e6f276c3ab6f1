package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdcascade/internal/logging"
	"github.com/yaklabco/mdcascade/internal/ui/pretty"
	"github.com/yaklabco/mdcascade/pkg/enumerator"
)

func newFilesCommand(globals *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "files [patterns...]",
		Short: "List files discovered from the given patterns",
		Long: `files expands one or more patterns into the set of files a linter
would run against, honoring the ignore system and glob dispatch rules.
It never reads or reports on file contents.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd, args, globals, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table or plain")

	return cmd
}

func runFiles(cmd *cobra.Command, patterns []string, globals *globalFlags, format string) error {
	logger := logging.FromContext(cmd.Context())
	logger.Debug("discovering files", logging.FieldPaths, patterns)
	for _, pattern := range patterns {
		logger.Debug("pattern", logging.FieldPattern, pattern)
	}

	enum, err := buildEnumerator(cmd.Context(), globals)
	if err != nil {
		return err
	}

	colorEnabled := pretty.IsColorEnabled(globals.color, cmd.OutOrStdout())
	styles := pretty.NewStyles(colorEnabled)

	var entries []enumerator.FileAndConfig
	var stats pretty.Stats

	for entry, err := range enum.IterateFiles(patterns...) {
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		stats.Discovered++
		if entry.Ignored {
			stats.Ignored++
		}
	}

	logger.Debug("discovery complete",
		logging.FieldFilesDiscovered, stats.Discovered,
		logging.FieldFilesIgnored, stats.Ignored)

	out := cmd.OutOrStdout()

	switch format {
	case "plain":
		_, _ = out.Write([]byte(pretty.FormatFilesPlain(entries, colorEnabled)))
	default:
		table := pretty.NewTableFormatter(styles, 0)
		if rendered := table.FormatFiles(entries); rendered != "" {
			_, _ = out.Write([]byte(rendered))
		}
	}

	_, _ = out.Write([]byte(styles.FormatSummaryOneLine(stats)))

	return nil
}
