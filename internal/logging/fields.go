// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldPattern    = "pattern"
	FieldDir        = "dir"
	FieldWorkingDir = "working_dir"

	// Discovery statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesIgnored    = "files_ignored"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
