package iterator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcascade/internal/ancestor"
	"github.com/yaklabco/mdcascade/internal/iterator"
	"github.com/yaklabco/mdcascade/pkg/config"
	"github.com/yaklabco/mdcascade/pkg/configfactory"
	"github.com/yaklabco/mdcascade/pkg/ignore"
)

func newIterator(t *testing.T, cwd string, extensions []string, globEnabled bool) *iterator.Iterator {
	t.Helper()
	factory := configfactory.New()
	resolver := ancestor.New(factory, config.NewConfigArray(), "", cwd, false)

	std, dotfiles, err := ignore.NewPair(ignore.Options{CWD: cwd, Enabled: true})
	require.NoError(t, err)

	extRe, err := iterator.BuildExtensionRegex(extensions)
	require.NoError(t, err)

	return iterator.New(factory, resolver, std, dotfiles, cwd, extRe, globEnabled)
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
}

func collect(t *testing.T, it *iterator.Iterator, patterns ...string) ([]iterator.Entry, error) {
	t.Helper()
	var entries []iterator.Entry
	for e, err := range it.Iterate(patterns) {
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func TestIterate_SingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"))

	it := newIterator(t, dir, nil, true)
	entries, err := collect(t, it, "a.md")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Join(dir, "a.md"), entries[0].FilePath)
	assert.Equal(t, iterator.FlagNone, entries[0].Flag)
}

func TestIterate_DirectoryWalkFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"))
	writeFile(t, filepath.Join(dir, "b.txt"))
	writeFile(t, filepath.Join(dir, "sub", "c.md"))

	it := newIterator(t, dir, []string{".md"}, true)
	entries, err := collect(t, it, ".")
	require.NoError(t, err)

	var paths []string
	for _, e := range entries {
		paths = append(paths, e.FilePath)
	}
	assert.Contains(t, paths, filepath.Join(dir, "a.md"))
	assert.Contains(t, paths, filepath.Join(dir, "sub", "c.md"))
	assert.NotContains(t, paths, filepath.Join(dir, "b.txt"))
}

func TestIterate_GlobDispatchTakesPrecedenceOverDirectory(t *testing.T) {
	dir := t.TempDir()
	// A directory literally named "*.md" would be walked by a
	// directory-first dispatch, yielding its c.md; the glob branch must
	// still win because the pattern itself contains glob
	// metacharacters, so only a.md and b.md are yielded.
	writeFile(t, filepath.Join(dir, "a.md"))
	writeFile(t, filepath.Join(dir, "b.md"))
	writeFile(t, filepath.Join(dir, "*.md", "c.md"))

	it := newIterator(t, dir, []string{".md"}, true)
	entries, err := collect(t, it, "*.md")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestIterate_GlobDisabledFallsBackToLiteralPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "*.md"))

	it := newIterator(t, dir, nil, false)
	_, err := collect(t, it, "*.md")
	require.NoError(t, err)
}

func TestIterate_NoFilesFoundError(t *testing.T) {
	dir := t.TempDir()
	it := newIterator(t, dir, nil, true)

	_, err := collect(t, it, "nope-*.md")
	require.Error(t, err)
	var notFound *iterator.NoFilesFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope-*.md", notFound.Pattern)
	assert.False(t, notFound.GlobDisabled)
}

func TestIterate_NoFilesFoundGlobDisabledFlag(t *testing.T) {
	dir := t.TempDir()
	it := newIterator(t, dir, nil, false)

	_, err := collect(t, it, "nope-*.md")
	require.Error(t, err)
	var notFound *iterator.NoFilesFoundError
	require.ErrorAs(t, err, &notFound)
	assert.True(t, notFound.GlobDisabled)
}

func TestIterate_AllFilesIgnoredError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mdcascadeignore"), []byte("a.md\n"), 0o644))

	factory := configfactory.New()
	resolver := ancestor.New(factory, config.NewConfigArray(), "", dir, false)
	std, dotfiles, err := ignore.NewPair(ignore.Options{CWD: dir, Enabled: true, IgnorePath: filepath.Join(dir, ".mdcascadeignore")})
	require.NoError(t, err)
	extRe, err := iterator.BuildExtensionRegex([]string{".md"})
	require.NoError(t, err)
	it := iterator.New(factory, resolver, std, dotfiles, dir, extRe, true)

	_, err = collect(t, it, "*.md")
	require.Error(t, err)
	var allIgnored *iterator.AllFilesIgnoredError
	require.ErrorAs(t, err, &allIgnored)
	assert.Equal(t, "*.md", allIgnored.Pattern)
}

func TestIterate_DirectoryWalkSilentlyIgnoresMatches(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"))
	writeFile(t, filepath.Join(dir, "b.md"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mdcascadeignore"), []byte("b.md\n"), 0o644))

	factory := configfactory.New()
	resolver := ancestor.New(factory, config.NewConfigArray(), "", dir, false)
	std, dotfiles, err := ignore.NewPair(ignore.Options{CWD: dir, Enabled: true, IgnorePath: filepath.Join(dir, ".mdcascadeignore")})
	require.NoError(t, err)
	extRe, err := iterator.BuildExtensionRegex([]string{".md"})
	require.NoError(t, err)
	it := iterator.New(factory, resolver, std, dotfiles, dir, extRe, true)

	entries, err := collect(t, it, ".")
	require.NoError(t, err)

	var paths []string
	for _, e := range entries {
		paths = append(paths, e.FilePath)
	}
	assert.Contains(t, paths, filepath.Join(dir, "a.md"))
	assert.NotContains(t, paths, filepath.Join(dir, "b.md"))
}

func TestIterate_DotfilesExcludedByDefaultPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"))
	writeFile(t, filepath.Join(dir, ".hidden.md"))

	it := newIterator(t, dir, []string{".md"}, true)
	entries, err := collect(t, it, ".")
	require.NoError(t, err)

	var paths []string
	for _, e := range entries {
		paths = append(paths, e.FilePath)
	}
	assert.Contains(t, paths, filepath.Join(dir, "a.md"))
	assert.NotContains(t, paths, filepath.Join(dir, ".hidden.md"))
}

func TestIterate_DotPatternSelectsDotfilesPredicate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".config.md"))

	it := newIterator(t, dir, []string{".md"}, true)
	entries, err := collect(t, it, ".config.md")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, iterator.FlagNone, entries[0].Flag)
}

func TestIterate_ExplicitlyNamedIgnoredFileIsFlagged(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "node_modules", "pkg", "a.md"))

	it := newIterator(t, dir, nil, true)
	entries, err := collect(t, it, filepath.Join("node_modules", "pkg", "a.md"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, iterator.FlagIgnored, entries[0].Flag)
}

func TestIterate_DeduplicatesAcrossPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"))

	it := newIterator(t, dir, []string{".md"}, true)
	entries, err := collect(t, it, "a.md", "*.md")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestIterate_EmptyPatternSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"))

	it := newIterator(t, dir, []string{".md"}, true)
	entries, err := collect(t, it, "", "a.md")
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestIterate_NonRecursiveGlobStaysInBaseDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"))
	writeFile(t, filepath.Join(dir, "sub", "b.md"))

	it := newIterator(t, dir, []string{".md"}, true)
	entries, err := collect(t, it, "*.md")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Join(dir, "a.md"), entries[0].FilePath)
}

func TestIterate_RecursiveGlobDescendsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"))
	writeFile(t, filepath.Join(dir, "sub", "b.md"))

	it := newIterator(t, dir, []string{".md"}, true)
	entries, err := collect(t, it, "**/*.md")
	require.NoError(t, err)

	var paths []string
	for _, e := range entries {
		paths = append(paths, e.FilePath)
	}
	assert.Contains(t, paths, filepath.Join(dir, "sub", "b.md"))
}

func TestIterate_RecursiveGlobEmitsNestedFilesBeforeParentSiblings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "nested", "one.md"))
	writeFile(t, filepath.Join(dir, "nested", "two.md"))
	writeFile(t, filepath.Join(dir, "one.md"))
	writeFile(t, filepath.Join(dir, "two.md"))

	it := newIterator(t, dir, []string{".md"}, true)
	entries, err := collect(t, it, "**/*.md")
	require.NoError(t, err)

	var paths []string
	for _, e := range entries {
		paths = append(paths, e.FilePath)
	}
	assert.Equal(t, []string{
		filepath.Join(dir, "nested", "one.md"),
		filepath.Join(dir, "nested", "two.md"),
		filepath.Join(dir, "one.md"),
		filepath.Join(dir, "two.md"),
	}, paths)
}

func TestFlag_String(t *testing.T) {
	assert.Equal(t, "NONE", iterator.FlagNone.String())
	assert.Equal(t, "IGNORED_SILENTLY", iterator.FlagIgnoredSilently.String())
	assert.Equal(t, "IGNORED", iterator.FlagIgnored.String())
}
