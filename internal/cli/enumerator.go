package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/mdcascade/internal/envoverride"
	"github.com/yaklabco/mdcascade/internal/logging"
	"github.com/yaklabco/mdcascade/pkg/enumerator"
)

// buildEnumerator turns the shared global flags into an Enumerator.
// MDCASCADE_* environment overrides are applied on top of the flags
// last, so an env var wins over a flag setting the same scalar field;
// unlike the Base-Config/CLI-Config precedence, there is no
// flag-already-set tracking here.
func buildEnumerator(ctx context.Context, globals *globalFlags) (*enumerator.Enumerator, error) {
	logger := logging.FromContext(ctx)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("determine working directory: %w", err)
	}
	logger.Debug("building enumerator", logging.FieldWorkingDir, cwd)

	opts := enumerator.Options{
		CWD:            cwd,
		ConfigFile:     globals.configFile,
		RulePaths:      globals.rulePaths,
		Extensions:     globals.extensions,
		IgnorePath:     globals.ignorePath,
		IgnorePatterns: globals.ignorePatterns,
		Ignore:         !globals.noIgnore,
		UseEslintrc:    !globals.noConfigCascade,
		GlobInputPaths: !globals.noGlob,
	}

	if err := envoverride.Apply(&opts); err != nil {
		return nil, err
	}

	return enumerator.New(opts)
}
