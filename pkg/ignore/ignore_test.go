package ignore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcascade/pkg/ignore"
)

func TestPredicate_DefaultPatternsAlwaysApply(t *testing.T) {
	dir := t.TempDir()
	p, err := ignore.New(ignore.Options{CWD: dir, Enabled: false})
	require.NoError(t, err)

	assert.True(t, p.Contains(filepath.Join(dir, "node_modules", "pkg", "index.js")))
	assert.True(t, p.ContainsDefault(filepath.Join(dir, ".git", "HEAD")))
	assert.False(t, p.Contains(filepath.Join(dir, "src", "a.md")))
}

func TestPredicate_DotfilesExcludedUnlessPairedInstance(t *testing.T) {
	dir := t.TempDir()
	standard, withDotfiles, err := ignore.NewPair(ignore.Options{CWD: dir, Enabled: true})
	require.NoError(t, err)

	assert.True(t, standard.Contains(filepath.Join(dir, ".config.md")))
	assert.False(t, withDotfiles.Contains(filepath.Join(dir, ".config.md")))
}

func TestPredicate_UserPatternsOnlyApplyWhenEnabled(t *testing.T) {
	dir := t.TempDir()
	p, err := ignore.New(ignore.Options{CWD: dir, Enabled: false, IgnorePatterns: []string{"skip.md"}})
	require.NoError(t, err)
	assert.False(t, p.Contains(filepath.Join(dir, "skip.md")))

	p, err = ignore.New(ignore.Options{CWD: dir, Enabled: true, IgnorePatterns: []string{"skip.md"}})
	require.NoError(t, err)
	assert.True(t, p.Contains(filepath.Join(dir, "skip.md")))
}

func TestPredicate_ContainsDefaultIgnoresUserPatterns(t *testing.T) {
	dir := t.TempDir()
	p, err := ignore.New(ignore.Options{CWD: dir, Enabled: true, IgnorePatterns: []string{"skip.md"}})
	require.NoError(t, err)

	assert.True(t, p.Contains(filepath.Join(dir, "skip.md")))
	assert.False(t, p.ContainsDefault(filepath.Join(dir, "skip.md")))
}

func TestPredicate_IgnorePathFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mdcascadeignore"), []byte("*.tmp\n"), 0o644))

	p, err := ignore.New(ignore.Options{CWD: dir, Enabled: true, IgnorePath: filepath.Join(dir, ".mdcascadeignore")})
	require.NoError(t, err)

	assert.True(t, p.Contains(filepath.Join(dir, "a.tmp")))
	assert.False(t, p.Contains(filepath.Join(dir, "a.md")))
}

func TestPredicate_NegationPattern(t *testing.T) {
	dir := t.TempDir()
	p, err := ignore.New(ignore.Options{
		CWD:            dir,
		Enabled:        true,
		IgnorePatterns: []string{"*.md", "!keep.md"},
	})
	require.NoError(t, err)

	assert.True(t, p.Contains(filepath.Join(dir, "drop.md")))
	assert.False(t, p.Contains(filepath.Join(dir, "keep.md")))
}

func TestPredicate_NilReceiverNeverIgnores(t *testing.T) {
	var p *ignore.Predicate
	assert.False(t, p.Contains("/anything"))
	assert.False(t, p.Enabled())
}
