// Package ignore implements the Ignore Predicate: given a path, answer
// whether it should be excluded from discovery. Two instances are held
// by callers — one honoring the default dotfile exclusion, one not —
// since switching a single "dotfiles" flag per call would risk
// reinterpreting user-supplied ignore-file patterns.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

// defaultPatterns mirrors the small built-in exclusion set a lint tool
// ships regardless of user configuration.
var defaultPatterns = []string{
	"/node_modules/",
	"/.git/",
}

// Options configures a Predicate.
type Options struct {
	// CWD is the directory paths are resolved against.
	CWD string

	// Enabled is the master on/off switch (the enumerator's `ignore`
	// flag). When false, Contains skips the user's ignore file and
	// inline patterns but still applies the dotfile exclusion and the
	// built-in defaults, answering exactly as ContainsDefault does.
	Enabled bool

	// IgnorePath is an optional path to a gitignore-syntax file
	// (".mdcascadeignore").
	IgnorePath string

	// IgnorePatterns are additional inline gitignore-syntax patterns,
	// as a caller's --ignore-pattern flags would supply.
	IgnorePatterns []string

	// Dotfiles, when true, suppresses the default dotfile exclusion.
	// Used to build the "with-dotfiles" instance.
	Dotfiles bool
}

// Predicate answers whether a path is ignored.
type Predicate struct {
	cwd            string
	enabled        bool
	includeDotfiles bool
	userMatcher    gitignore.GitIgnore
	defaultMatcher gitignore.GitIgnore
}

// New builds a single Predicate from opts.
func New(opts Options) (*Predicate, error) {
	defaultMatcher, err := compilePatterns(defaultPatterns, "<default>")
	if err != nil {
		return nil, fmt.Errorf("ignore: compile default patterns: %w", err)
	}

	userMatcher, err := buildUserMatcher(opts)
	if err != nil {
		return nil, err
	}

	return &Predicate{
		cwd:             opts.CWD,
		enabled:         opts.Enabled,
		includeDotfiles: opts.Dotfiles,
		userMatcher:     userMatcher,
		defaultMatcher:  defaultMatcher,
	}, nil
}

// NewPair builds the two Predicate instances a File Iterator holds:
// the default (dotfiles excluded) and the with-dotfiles variant,
// sharing the same user/default pattern sources.
func NewPair(opts Options) (standard, withDotfiles *Predicate, err error) {
	opts.Dotfiles = false
	standard, err = New(opts)
	if err != nil {
		return nil, nil, err
	}
	opts.Dotfiles = true
	withDotfiles, err = New(opts)
	if err != nil {
		return nil, nil, err
	}
	return standard, withDotfiles, nil
}

func buildUserMatcher(opts Options) (gitignore.GitIgnore, error) {
	var lines []string

	if opts.IgnorePath != "" {
		data, err := readIgnoreFile(opts.IgnorePath)
		if err != nil {
			return nil, err
		}
		lines = append(lines, data...)
	}
	lines = append(lines, opts.IgnorePatterns...)

	if len(lines) == 0 {
		return nil, nil
	}
	return compilePatterns(lines, opts.IgnorePath)
}

func compilePatterns(lines []string, path string) (gitignore.GitIgnore, error) {
	joined := strings.Join(lines, "\n")
	matcher := gitignore.New(strings.NewReader(joined), path, nil)
	return matcher, nil
}

func readIgnoreFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ignore: read %s: %w", path, err)
	}
	return strings.Split(string(data), "\n"), nil
}

// Enabled reports whether this instance consults user-supplied ignore
// files and inline patterns in addition to the built-in defaults.
func (p *Predicate) Enabled() bool {
	return p != nil && p.enabled
}

// Contains reports whether path is ignored under the full rule set:
// dotfile exclusion (unless this instance allows dotfiles), the
// built-in defaults, and — when Enabled — the user's ignore file and
// inline patterns.
func (p *Predicate) Contains(path string) bool {
	return p.evaluate(path, true)
}

// ContainsDefault reports whether path is ignored under only the
// built-in default patterns (plus dotfile exclusion), ignoring any
// user-supplied ignore file or inline patterns. This is the mode used
// when a caller named a file directly and the `ignore` flag is off.
func (p *Predicate) ContainsDefault(path string) bool {
	return p.evaluate(path, false)
}

func (p *Predicate) evaluate(path string, checkUser bool) bool {
	if p == nil {
		return false
	}
	rel := p.relativeSlash(path)
	if rel == "" || rel == "." {
		return false
	}

	if !p.includeDotfiles && isDotfilePath(rel) {
		return true
	}

	info, statErr := os.Stat(path)
	isdir := statErr == nil && info.IsDir()

	if p.defaultMatcher != nil && matches(p.defaultMatcher, rel, isdir) {
		return true
	}

	if !checkUser || !p.enabled || p.userMatcher == nil {
		return false
	}
	return matches(p.userMatcher, rel, isdir)
}

// matches reports whether rel (slash-separated, relative to the
// predicate's cwd) or one of its parent directories is ignored by m.
// The last pattern matching a path decides, so a negated pattern
// re-includes it.
func matches(m gitignore.GitIgnore, rel string, isdir bool) bool {
	parts := strings.Split(rel, "/")
	for i := 1; i < len(parts); i++ {
		if match := m.Relative(strings.Join(parts[:i], "/"), true); match != nil && match.Ignore() {
			return true
		}
	}
	match := m.Relative(rel, isdir)
	return match != nil && match.Ignore()
}

func (p *Predicate) relativeSlash(path string) string {
	rel := path
	if p.cwd != "" {
		if r, err := filepath.Rel(p.cwd, path); err == nil {
			rel = r
		}
	}
	return filepath.ToSlash(rel)
}

// isDotfilePath reports whether any path component (excluding a
// leading "./") begins with a dot.
func isDotfilePath(relSlash string) bool {
	for _, part := range strings.Split(relSlash, "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}
