package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdcascade/internal/logging"
	"github.com/yaklabco/mdcascade/pkg/config"
)

// errNotATerminal is returned when --interactive is requested but
// stdout isn't a terminal, so there is nothing to page through.
var errNotATerminal = errors.New("print-config: --interactive requires a terminal stdout")

func newPrintConfigCommand(globals *globalFlags) *cobra.Command {
	var format string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "print-config [path]",
		Short: "Print the resolved configuration for a file",
		Long: `print-config resolves the full cascade of configuration files and
CLI overrides that would apply to path and prints the flattened result,
the way ESLint's --print-config does. path need not exist; an empty
path resolves against a synthetic file in the working directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive && !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotATerminal
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runPrintConfig(cmd, path, globals, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	cmd.Flags().BoolVar(&interactive, "interactive", false,
		"require stdout to be a terminal (refuses otherwise); output is printed directly, not paged")

	return cmd
}

func runPrintConfig(cmd *cobra.Command, path string, globals *globalFlags, format string) error {
	logger := logging.FromContext(cmd.Context())

	enum, err := buildEnumerator(cmd.Context(), globals)
	if err != nil {
		return err
	}

	if path == "" {
		logger.Debug("resolving synthetic path", logging.FieldDir, enum.CWD())
	} else {
		logger.Debug("resolving config", logging.FieldPath, path)
	}

	array, err := enum.GetConfigArrayForFile(path)
	if err != nil {
		return err
	}

	target := path
	if target == "" {
		target = enum.CWD() + "/a.js"
	}

	extracted := config.Extract(array, target)
	compat := extracted.ToCompatibleObjectAsConfigFileContent()

	var encoded []byte
	switch format {
	case "json":
		encoded, err = json.MarshalIndent(compat, "", "  ")
	default:
		encoded, err = yaml.Marshal(compat)
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(append(encoded, '\n'))
	return err
}
