package cli

import (
	"errors"

	"github.com/yaklabco/mdcascade/internal/finalize"
	"github.com/yaklabco/mdcascade/internal/iterator"
)

// Exit codes for mdcascade.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid command-line usage or that no
	// files were discovered / all discovered files were ignored.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors, including
	// a cascading configuration that resolved to no config file.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps an error returned by the enumerator to an
// exit code, distinguishing usage errors from configuration errors
// from unexpected internal failures.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var noFiles *iterator.NoFilesFoundError
	var allIgnored *iterator.AllFilesIgnoredError
	var noConfig *finalize.ConfigurationNotFoundError

	switch {
	case errors.As(err, &noFiles), errors.As(err, &allIgnored):
		return ExitInvalidUsage
	case errors.As(err, &noConfig):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}
