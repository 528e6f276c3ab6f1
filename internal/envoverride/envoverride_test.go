package envoverride_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcascade/internal/envoverride"
	"github.com/yaklabco/mdcascade/pkg/enumerator"
)

func TestApply_Config(t *testing.T) {
	t.Setenv("MDCASCADE_CONFIG", "/etc/mdcascade.yml")
	opts := &enumerator.Options{}
	require.NoError(t, envoverride.Apply(opts))
	assert.Equal(t, "/etc/mdcascade.yml", opts.ConfigFile)
}

func TestApply_IgnorePath(t *testing.T) {
	t.Setenv("MDCASCADE_IGNORE_PATH", "/repo/.mdcascadeignore")
	opts := &enumerator.Options{}
	require.NoError(t, envoverride.Apply(opts))
	assert.Equal(t, "/repo/.mdcascadeignore", opts.IgnorePath)
}

func TestApply_IgnorePatternAppends(t *testing.T) {
	t.Setenv("MDCASCADE_IGNORE_PATTERN", "*.tmp, build/")
	opts := &enumerator.Options{IgnorePatterns: []string{"dist/"}}
	require.NoError(t, envoverride.Apply(opts))
	assert.Equal(t, []string{"dist/", "*.tmp", "build/"}, opts.IgnorePatterns)
}

func TestApply_RulesdirAppends(t *testing.T) {
	t.Setenv("MDCASCADE_RULESDIR", "./rules,./more-rules")
	opts := &enumerator.Options{RulePaths: []string{"./base-rules"}}
	require.NoError(t, envoverride.Apply(opts))
	assert.Equal(t, []string{"./base-rules", "./rules", "./more-rules"}, opts.RulePaths)
}

func TestApply_ExtOverwrites(t *testing.T) {
	t.Setenv("MDCASCADE_EXT", ".md, .markdown")
	opts := &enumerator.Options{Extensions: []string{".txt"}}
	require.NoError(t, envoverride.Apply(opts))
	assert.Equal(t, []string{".md", ".markdown"}, opts.Extensions)
}

func TestApply_NoEslintrcTrueDisablesCascade(t *testing.T) {
	t.Setenv("MDCASCADE_NO_ESLINTRC", "true")
	opts := &enumerator.Options{UseEslintrc: true}
	require.NoError(t, envoverride.Apply(opts))
	assert.False(t, opts.UseEslintrc)
}

func TestApply_NoEslintrcFalseKeepsCascadeEnabled(t *testing.T) {
	t.Setenv("MDCASCADE_NO_ESLINTRC", "false")
	opts := &enumerator.Options{UseEslintrc: false}
	require.NoError(t, envoverride.Apply(opts))
	assert.True(t, opts.UseEslintrc)
}

func TestApply_NoIgnoreTrueDisablesIgnoreSystem(t *testing.T) {
	t.Setenv("MDCASCADE_NO_IGNORE", "true")
	opts := &enumerator.Options{Ignore: true}
	require.NoError(t, envoverride.Apply(opts))
	assert.False(t, opts.Ignore)
}

func TestApply_NoGlobTrueDisablesGlobDispatch(t *testing.T) {
	t.Setenv("MDCASCADE_NO_GLOB", "true")
	opts := &enumerator.Options{GlobInputPaths: true}
	require.NoError(t, envoverride.Apply(opts))
	assert.False(t, opts.GlobInputPaths)
}

func TestApply_UnsetVariablesLeaveOptionsUntouched(t *testing.T) {
	opts := &enumerator.Options{ConfigFile: "explicit.yml"}
	require.NoError(t, envoverride.Apply(opts))
	assert.Equal(t, "explicit.yml", opts.ConfigFile)
}

func TestApply_InvalidBoolValueErrors(t *testing.T) {
	t.Setenv("MDCASCADE_NO_IGNORE", "not-a-bool")
	opts := &enumerator.Options{}
	err := envoverride.Apply(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MDCASCADE_NO_IGNORE")
}

func TestListEnvVars_CoversEveryMapping(t *testing.T) {
	vars := envoverride.ListEnvVars()
	for _, name := range []string{
		"MDCASCADE_CONFIG",
		"MDCASCADE_IGNORE_PATH",
		"MDCASCADE_IGNORE_PATTERN",
		"MDCASCADE_RULESDIR",
		"MDCASCADE_EXT",
		"MDCASCADE_NO_ESLINTRC",
		"MDCASCADE_NO_IGNORE",
		"MDCASCADE_NO_GLOB",
	} {
		assert.Contains(t, vars, name)
		assert.NotEmpty(t, vars[name])
	}
}
