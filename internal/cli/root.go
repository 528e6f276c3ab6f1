// Package cli provides the Cobra command structure for mdcascade.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdcascade/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdcascade command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string
	globals := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "mdcascade",
		Short: "Cascading file and configuration resolver",
		Long: `mdcascade discovers files matching a set of patterns and resolves,
for each one, the fully merged configuration a linter should apply to
it: a directory-cascaded chain of config files, CLI overrides, and a
base configuration, exactly the way ESLint resolves .eslintrc.

mdcascade never lints or fixes anything itself; it only answers "which
files, and with what configuration".`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "info"
			if debug {
				level = "debug"
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.New(level)))
			globals.color = color
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globals.configFile, "config", "", "path to explicit config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&globals.noConfigCascade, "no-config-cascade", false,
		"resolve every file against the base and CLI configuration only, skipping the ancestor walk")
	rootCmd.PersistentFlags().StringSliceVar(&globals.rulePaths, "rulesdir", nil,
		"additional directories to expose as rule descriptors")
	rootCmd.PersistentFlags().StringSliceVar(&globals.extensions, "ext", nil,
		"file extensions to discover (default: .md, .markdown)")
	rootCmd.PersistentFlags().StringVar(&globals.ignorePath, "ignore-path", "",
		"gitignore-syntax file of paths to ignore")
	rootCmd.PersistentFlags().StringSliceVar(&globals.ignorePatterns, "ignore-pattern", nil,
		"additional gitignore-syntax ignore pattern")
	rootCmd.PersistentFlags().BoolVar(&globals.noIgnore, "no-ignore", false,
		"disable the ignore system entirely")
	rootCmd.PersistentFlags().BoolVar(&globals.noGlob, "no-glob", false,
		"treat patterns containing glob metacharacters as literal paths")

	// Add subcommands.
	rootCmd.AddCommand(newFilesCommand(globals))
	rootCmd.AddCommand(newPrintConfigCommand(globals))
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// globalFlags collects the persistent flags shared by every subcommand
// that constructs an enumerator.
type globalFlags struct {
	color           string
	configFile      string
	noConfigCascade bool
	rulePaths       []string
	extensions      []string
	ignorePath      string
	ignorePatterns  []string
	noIgnore        bool
	noGlob          bool
}
