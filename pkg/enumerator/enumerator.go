// Package enumerator is the public surface of the file-and-configuration
// resolver: given input patterns, it discovers target files and binds
// each to a fully merged, validated configuration array assembled from
// a cascading hierarchy of configuration files, CLI options, and a
// base configuration.
package enumerator

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"regexp"

	"github.com/yaklabco/mdcascade/internal/ancestor"
	"github.com/yaklabco/mdcascade/internal/baseconfig"
	"github.com/yaklabco/mdcascade/internal/cliconfig"
	"github.com/yaklabco/mdcascade/internal/finalize"
	"github.com/yaklabco/mdcascade/internal/iterator"
	"github.com/yaklabco/mdcascade/pkg/config"
	"github.com/yaklabco/mdcascade/pkg/configfactory"
	"github.com/yaklabco/mdcascade/pkg/ignore"
)

// FileAndConfig is one entry an Enumerator hands back to its caller:
// an absolute file path, its finalized configuration array, and
// whether the caller must be told it was ignored.
type FileAndConfig struct {
	FilePath string
	Config   *config.ConfigArray
	Ignored  bool
}

// Options configures a new Enumerator. Every field is retained
// verbatim so ClearCache can rebuild the base and CLI arrays from
// scratch.
type Options struct {
	// CWD is the working directory patterns and relative file paths
	// resolve against. Defaults to os.Getwd().
	CWD string

	// Factory materializes configuration arrays from data, files, and
	// directories. Defaults to configfactory.New().
	Factory *configfactory.Factory

	// BaseConfigData seeds the immutable tail of every chain.
	BaseConfigData *config.RawDocument

	// CLIConfigData seeds the head of every chain (caller-supplied
	// options such as --rule or inline --global flags).
	CLIConfigData *config.RawDocument

	// ConfigFile is an optional explicit --config file path, loaded
	// ahead of CLIConfigData in merge order.
	ConfigFile string

	// RulePaths are extra --rulesdir directories to expose as a
	// synthetic pseudo-plugin.
	RulePaths []string

	// Extensions are the file extensions the directory-walk selector
	// matches (with or without a leading dot).
	Extensions []string

	// IgnorePath is an optional gitignore-syntax ignore file.
	IgnorePath string

	// IgnorePatterns are additional inline gitignore-syntax patterns.
	IgnorePatterns []string

	// Ignore is the master ignore-system on/off switch.
	Ignore bool

	// UseEslintrc enables the cascading ancestor walk and the
	// personal-config fallback. When false, every file receives the
	// base (plus CLI) array directly.
	UseEslintrc bool

	// GlobInputPaths enables glob-pattern dispatch. When false, a
	// pattern containing glob meta-characters is treated as a literal
	// path and, if it does not exist, fails NoFilesFound with
	// globDisabled set.
	GlobInputPaths bool
}

// Enumerator is the file-and-configuration resolver. It is not safe
// for concurrent use by multiple goroutines.
type Enumerator struct {
	opts           Options
	homeDir        string
	extensionRegex *regexp.Regexp

	baseArray *config.ConfigArray
	cliArray  *config.ConfigArray
	resolver  *ancestor.Resolver
	iterator  *iterator.Iterator
	finalizer *finalize.Finalizer
}

// New builds an Enumerator from opts.
func New(opts Options) (*Enumerator, error) {
	if opts.Factory == nil {
		opts.Factory = configfactory.New()
	}
	if opts.CWD == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("enumerator: determine working directory: %w", err)
		}
		opts.CWD = cwd
	}

	extensionRegex, err := iterator.BuildExtensionRegex(opts.Extensions)
	if err != nil {
		return nil, fmt.Errorf("enumerator: compile extension regex: %w", err)
	}

	e := &Enumerator{
		opts:           opts,
		homeDir:        ancestor.UserHomeDir(),
		extensionRegex: extensionRegex,
	}
	if err := e.rebuild(); err != nil {
		return nil, err
	}
	return e, nil
}

// CWD returns the configured working directory.
func (e *Enumerator) CWD() string {
	return e.opts.CWD
}

// ClearCache rebuilds the base and CLI arrays from the retained source
// inputs and discards every cached directory and finalization,
// guaranteeing that subsequently returned arrays are not reference-
// equal to any returned before the call.
func (e *Enumerator) ClearCache() error {
	return e.rebuild()
}

func (e *Enumerator) rebuild() error {
	base, err := baseconfig.Build(e.opts.Factory, e.opts.BaseConfigData, e.opts.RulePaths)
	if err != nil {
		return fmt.Errorf("enumerator: build base config: %w", err)
	}

	cli, err := cliconfig.Build(e.opts.Factory, e.opts.CLIConfigData, e.opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("enumerator: build CLI config: %w", err)
	}

	ignoreDefault, ignoreDotfiles, err := ignore.NewPair(ignore.Options{
		CWD:            e.opts.CWD,
		Enabled:        e.opts.Ignore,
		IgnorePath:     e.opts.IgnorePath,
		IgnorePatterns: e.opts.IgnorePatterns,
	})
	if err != nil {
		return fmt.Errorf("enumerator: build ignore predicates: %w", err)
	}

	resolver := ancestor.New(e.opts.Factory, base, e.homeDir, e.opts.CWD, e.opts.UseEslintrc)
	fileIterator := iterator.New(e.opts.Factory, resolver, ignoreDefault, ignoreDotfiles, e.opts.CWD, e.extensionRegex, e.opts.GlobInputPaths)
	finalizer := finalize.New(e.opts.Factory, cli, e.homeDir, e.opts.UseEslintrc)

	e.baseArray = base
	e.cliArray = cli
	e.resolver = resolver
	e.iterator = fileIterator
	e.finalizer = finalizer
	return nil
}

// IterateFiles expands patterns into a lazy sequence of finalized
// FileAndConfig entries. A single pattern is simply a one-element
// call. Silently-ignored discoveries are omitted entirely; explicitly
// named files that turn out to be ignored are surfaced with
// Ignored=true rather than dropped.
func (e *Enumerator) IterateFiles(patterns ...string) iter.Seq2[FileAndConfig, error] {
	return func(yield func(FileAndConfig, error) bool) {
		for entry, err := range e.iterator.Iterate(patterns) {
			if err != nil {
				yield(FileAndConfig{}, err)
				return
			}
			if entry.Flag == iterator.FlagIgnoredSilently {
				continue
			}

			finalized, ferr := e.finalizer.Finalize(entry.Config, filepath.Dir(entry.FilePath))
			if ferr != nil {
				yield(FileAndConfig{}, ferr)
				return
			}

			fc := FileAndConfig{
				FilePath: entry.FilePath,
				Config:   finalized,
				Ignored:  entry.Flag == iterator.FlagIgnored,
			}
			if !yield(fc, nil) {
				return
			}
		}
	}
}

// GetConfigArrayForFile resolves ancestors for filePath (resolved
// against the working directory) and finalizes against its directory.
// An empty filePath resolves against a synthetic "a.js" in the working
// directory, the documented hook for --print-config style callers that
// have no target file.
func (e *Enumerator) GetConfigArrayForFile(filePath string) (*config.ConfigArray, error) {
	if filePath == "" {
		filePath = "a.js"
	}
	abs := filePath
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(e.opts.CWD, abs)
	}

	raw, err := e.resolver.Resolve(abs)
	if err != nil {
		return nil, err
	}
	return e.finalizer.Finalize(raw, filepath.Dir(abs))
}
