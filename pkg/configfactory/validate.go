package configfactory

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdcascade/pkg/config"
)

// ValidationError is a single field-scoped problem, optionally located
// in a source file.
type ValidationError struct {
	Field    string
	Value    any
	Message  string
	FilePath string
}

func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult collects every problem found across a ConfigArray.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether validation found no fatal errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// AllMessages renders every error and warning as a single flat slice,
// errors first.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownEnvironments lists the environment names this module
// recognizes; anything else produces a warning, not a fatal error,
// since a plugin the factory does not know about may define its own.
var knownEnvironments = map[string]bool{
	"browser": true,
	"node":    true,
	"es2021":  true,
	"worker":  true,
	"jest":    true,
	"mocha":   true,
}

// Validate checks every element of array for schema problems: rule
// settings whose severity does not parse, unrecognized environment
// names, and overrides that declare no files pattern. Override glob
// patterns themselves are not compiled or checked.
func Validate(array *config.ConfigArray) *ValidationResult {
	result := &ValidationResult{}
	if array == nil {
		return result
	}
	for _, element := range array.Elements {
		validateElement(element, result)
	}
	return result
}

func validateElement(e *config.ConfigElement, result *ValidationResult) {
	for name := range e.Env {
		if !knownEnvironments[name] {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:    "env." + name,
				Value:    name,
				Message:  fmt.Sprintf("unrecognized environment %q", name),
				FilePath: e.FilePath,
			})
		}
	}

	for ruleID, setting := range e.Rules {
		if _, err := setting.Severity(); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:    "rules." + ruleID,
				Value:    setting,
				Message:  err.Error(),
				FilePath: e.FilePath,
			})
		}
	}

	if e.Root && e.FilePath == "" {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:    "root",
			Message:  "root: true has no effect on a synthetic (non-file) config element",
			FilePath: e.FilePath,
		})
	}

	for i, ov := range e.Overrides {
		if len(ov.Files) == 0 {
			result.Errors = append(result.Errors, ValidationError{
				Field:    fmt.Sprintf("overrides[%d].files", i),
				Message:  "overrides entry must declare at least one files pattern",
				FilePath: e.FilePath,
			})
			continue
		}
		validateElement(ov.Config, result)
	}
}
