// Package envoverride applies MDCASCADE_* environment variable
// overrides to enumerator.Options before construction, via a mapping
// table that translates a flat set of named variables onto the target
// struct.
package envoverride

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/mdcascade/pkg/enumerator"
)

const envVarPrefix = "MDCASCADE_"

type mapping struct {
	suffix      string
	description string
	apply       func(opts *enumerator.Options, value string) error
}

var mappings = []mapping{
	{
		suffix: "CONFIG",
		description: "Explicit config file path",
		apply: func(opts *enumerator.Options, value string) error {
			opts.ConfigFile = value
			return nil
		},
	},
	{
		suffix: "IGNORE_PATH",
		description: "Gitignore-syntax ignore file path",
		apply: func(opts *enumerator.Options, value string) error {
			opts.IgnorePath = value
			return nil
		},
	},
	{
		suffix: "IGNORE_PATTERN",
		description: "Comma-separated inline ignore patterns",
		apply: func(opts *enumerator.Options, value string) error {
			opts.IgnorePatterns = append(opts.IgnorePatterns, parseSlice(value)...)
			return nil
		},
	},
	{
		suffix: "RULESDIR",
		description: "Comma-separated extra rule directories",
		apply: func(opts *enumerator.Options, value string) error {
			opts.RulePaths = append(opts.RulePaths, parseSlice(value)...)
			return nil
		},
	},
	{
		suffix: "EXT",
		description: "Comma-separated file extensions to discover",
		apply: func(opts *enumerator.Options, value string) error {
			opts.Extensions = parseSlice(value)
			return nil
		},
	},
	{
		suffix: "NO_ESLINTRC",
		description: "Disable the cascading config walk: true or false",
		apply: func(opts *enumerator.Options, value string) error {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return err
			}
			opts.UseEslintrc = !b
			return nil
		},
	},
	{
		suffix: "NO_IGNORE",
		description: "Disable the ignore system entirely: true or false",
		apply: func(opts *enumerator.Options, value string) error {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return err
			}
			opts.Ignore = !b
			return nil
		},
	},
	{
		suffix: "NO_GLOB",
		description: "Disable glob-pattern dispatch: true or false",
		apply: func(opts *enumerator.Options, value string) error {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return err
			}
			opts.GlobInputPaths = !b
			return nil
		},
	},
}

// Apply reads every recognized MDCASCADE_* environment variable and
// overlays it onto opts, mutating it in place.
func Apply(opts *enumerator.Options) error {
	for _, m := range mappings {
		envVar := envVarPrefix + m.suffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		if err := m.apply(opts, value); err != nil {
			return fmt.Errorf("envoverride: %s=%q: %w", envVar, value, err)
		}
	}
	return nil
}

// ListEnvVars returns every supported environment variable and a short
// description. The help output does not list them.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(mappings))
	for _, m := range mappings {
		out[envVarPrefix+m.suffix] = m.description
	}
	return out
}

func parseSlice(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
