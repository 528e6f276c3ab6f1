// Package iterator implements the File Iterator: it expands each input
// pattern into a lazy sequence of discovered files, dispatching per
// pattern to a glob strategy, a directory-walk strategy, or a
// single-file strategy.
//
// Discovery is single-threaded and pull-based: callers consume one
// entry at a time via a Go 1.23 range-over-func iterator rather than
// draining a worker-pool queue, since a caller may need to react to
// one file (an ignore rule, an error) before deciding whether to ask
// for the next.
package iterator

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/mdcascade/internal/ancestor"
	"github.com/yaklabco/mdcascade/pkg/configfactory"
	"github.com/yaklabco/mdcascade/pkg/ignore"
)

// Iterator drives file discovery for a set of patterns.
type Iterator struct {
	factory        *configfactory.Factory
	ancestor       *ancestor.Resolver
	ignoreDefault  *ignore.Predicate
	ignoreDotfiles *ignore.Predicate
	cwd            string
	extensions     *regexp.Regexp
	globEnabled    bool
}

// New creates an Iterator. ignoreDefault excludes dotfiles universally;
// ignoreDotfiles is the paired instance that does not.
func New(factory *configfactory.Factory, resolver *ancestor.Resolver, ignoreDefault, ignoreDotfiles *ignore.Predicate, cwd string, extensions *regexp.Regexp, globEnabled bool) *Iterator {
	return &Iterator{
		factory:        factory,
		ancestor:       resolver,
		ignoreDefault:  ignoreDefault,
		ignoreDotfiles: ignoreDotfiles,
		cwd:            cwd,
		extensions:     extensions,
		globEnabled:    globEnabled,
	}
}

// Iterate returns a lazy, pull-based sequence of (Entry, error) pairs
// for patterns. A non-nil error is always the final pair produced for
// a given call; once yielded, iteration stops. Empty-string patterns
// are silently skipped. Entries flagged FlagIgnoredSilently count as
// found but are not yielded, and a file already yielded for an earlier
// pattern is not yielded again.
func (it *Iterator) Iterate(patterns []string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		seen := make(map[string]struct{})

		for _, pattern := range patterns {
			if pattern == "" {
				continue
			}

			foundAny := false
			foundVisible := false
			stopped := false

			patternSeen := make(map[string]struct{})
			err := it.iteratePattern(pattern, patternSeen, func(e Entry) bool {
				foundAny = true
				if e.Flag == FlagIgnoredSilently {
					return true
				}
				foundVisible = true
				if _, dup := seen[e.FilePath]; dup {
					return true
				}
				seen[e.FilePath] = struct{}{}
				if !yield(e, nil) {
					stopped = true
					return false
				}
				return true
			})
			if stopped {
				return
			}
			if err != nil {
				yield(Entry{}, err)
				return
			}
			if !foundAny {
				globDisabled := !it.globEnabled && hasGlobMeta(pattern)
				yield(Entry{}, &NoFilesFoundError{Pattern: pattern, GlobDisabled: globDisabled})
				return
			}
			if !foundVisible {
				yield(Entry{}, &AllFilesIgnoredError{Pattern: pattern})
				return
			}
		}
	}
}

// iteratePattern dispatches pattern to the glob, directory, or
// single-file strategy and drives emit for every discovered entry.
// Precedence is glob → directory → file.
func (it *Iterator) iteratePattern(pattern string, seen map[string]struct{}, emit func(Entry) bool) error {
	predicate := it.predicateFor(pattern)

	if it.globEnabled && hasGlobMeta(pattern) {
		return it.iterateGlob(pattern, predicate, seen, emit)
	}

	absPath := it.resolvePath(pattern)
	info, statErr := os.Stat(absPath)
	if statErr == nil && info.IsDir() {
		cfg, err := it.ancestor.ResolveDir(absPath)
		if err != nil {
			return err
		}
		_, err = it.walkDir(absPath, cfg, true, true, predicate, it.extensionSelector(), seen, emit)
		return err
	}
	if statErr == nil {
		return it.emitFile(absPath, predicate, seen, emit)
	}
	return nil
}

// emitFile handles the single-file dispatch branch.
func (it *Iterator) emitFile(absPath string, predicate *ignore.Predicate, seen map[string]struct{}, emit func(Entry) bool) error {
	if _, dup := seen[absPath]; dup {
		return nil
	}
	seen[absPath] = struct{}{}

	var ignored bool
	if predicate.Enabled() {
		ignored = predicate.Contains(absPath)
	} else {
		ignored = predicate.ContainsDefault(absPath)
	}
	flag := FlagNone
	if ignored {
		flag = FlagIgnored
	}

	cfg, err := it.ancestor.Resolve(absPath)
	if err != nil {
		return err
	}
	emit(Entry{FilePath: absPath, Config: cfg, Flag: flag})
	return nil
}

// iterateGlob handles the glob dispatch branch: it splits pattern into
// a non-glob base directory and a glob tail, then walks the base
// directory, selecting entries whose absolute path matches the
// original pattern (with a basename fallback when the tail contains no
// separator, approximating matchBase semantics).
func (it *Iterator) iterateGlob(pattern string, predicate *ignore.Predicate, seen map[string]struct{}, emit func(Entry) bool) error {
	base, tail := splitGlobPattern(pattern)
	baseDir := it.resolvePath(base)
	recursive := strings.Contains(tail, "**") || strings.Contains(tail, "/")

	fullPattern := filepath.ToSlash(it.resolvePath(pattern))
	fullMatcher, err := glob.Compile(fullPattern, '/')
	if err != nil {
		return fmt.Errorf("iterator: compile pattern %q: %w", pattern, err)
	}
	// "**/" also matches zero directories ("lib/**/*.js" selects
	// lib/one.js): that case is tried against the pattern with every
	// "/**/" collapsed to "/" at once.
	var zeroDirMatcher glob.Glob
	if strings.Contains(fullPattern, "/**/") {
		if m, compileErr := glob.Compile(strings.ReplaceAll(fullPattern, "/**/", "/"), '/'); compileErr == nil {
			zeroDirMatcher = m
		}
	}
	var baseMatcher glob.Glob
	if !strings.Contains(tail, "/") {
		if m, compileErr := glob.Compile(tail, '/'); compileErr == nil {
			baseMatcher = m
		}
	}
	sel := func(absPath string) bool {
		slash := filepath.ToSlash(absPath)
		if fullMatcher.Match(slash) || (zeroDirMatcher != nil && zeroDirMatcher.Match(slash)) {
			return true
		}
		return baseMatcher != nil && baseMatcher.Match(filepath.Base(slash))
	}

	info, statErr := os.Stat(baseDir)
	if statErr != nil || !info.IsDir() {
		return nil
	}

	cfg, err := it.ancestor.ResolveDir(baseDir)
	if err != nil {
		return err
	}
	_, err = it.walkDir(baseDir, cfg, true, recursive, predicate, sel, seen, emit)
	return err
}

// predicateFor chooses the dotfile-excluding or dotfile-including
// instance based on the pattern text itself: a pattern that names or
// crosses a dotfile segment must be able to match it.
func (it *Iterator) predicateFor(pattern string) *ignore.Predicate {
	slash := filepath.ToSlash(pattern)
	for _, segment := range strings.Split(slash, "/") {
		if segment != "." && segment != ".." && strings.HasPrefix(segment, ".") {
			return it.ignoreDotfiles
		}
	}
	return it.ignoreDefault
}

func (it *Iterator) extensionSelector() func(string) bool {
	return func(absPath string) bool {
		if it.extensions == nil {
			return true
		}
		return it.extensions.MatchString(absPath)
	}
}

func (it *Iterator) resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(it.cwd, p))
}

// hasGlobMeta reports whether pattern contains an unescaped glob
// meta-character.
func hasGlobMeta(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '*', '?', '[', ']', '{', '}':
			return true
		}
	}
	return false
}

// splitGlobPattern splits pattern (in "/"-normalized form) at the
// first segment containing a meta-character, returning the plain
// prefix and the remaining glob tail.
func splitGlobPattern(pattern string) (base, tail string) {
	segments := strings.Split(filepath.ToSlash(pattern), "/")
	i := 0
	for ; i < len(segments); i++ {
		if hasGlobMeta(segments[i]) {
			break
		}
	}
	return strings.Join(segments[:i], "/"), strings.Join(segments[i:], "/")
}
