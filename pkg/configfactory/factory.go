// Package configfactory implements the Configuration Factory contract
// the enumerator depends on: it turns in-memory data, a single file, or
// a directory scan into a *config.ConfigArray, resolving `extends` and
// leaving `parser`/`plugins` as lazily-loaded descriptors.
package configfactory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdcascade/pkg/config"
)

// recognizedConfigFiles are the config filenames LoadOnDirectory looks
// for, in order of preference.
var recognizedConfigFiles = []string{
	".mdcascaderc.yaml",
	".mdcascaderc.yml",
	".mdcascaderc.json",
	".mdcascaderc",
	"mdcascade.config.yaml",
	"mdcascade.config.yml",
	"mdcascade.config.json",
}

// Factory implements the Configuration Factory contract.
type Factory struct {
	// Presets are built-in extends targets, keyed by the name a
	// document's `extends` entry may reference (e.g.
	// "mdcascade:recommended"). Preset elements reached through Create
	// carry no FilePath, so they do not satisfy the "real config file
	// exists" test the Finalizer relies on; LoadFile gives them the
	// loading file's path like every other element it returns.
	Presets map[string]*config.RawDocument

	// LoadParser resolves a parser id to an absolute file path.
	// Defaults to resolveModulePath if nil.
	LoadParser func(id, baseDir string) (string, error)

	// LoadPlugin resolves a plugin id to a descriptor (its exposed
	// rule table). Defaults to a stub that returns an empty rule set,
	// since this module never executes rules.
	LoadPlugin func(id, baseDir string) (*config.PluginDescriptor, error)
}

// New returns a Factory with the built-in presets and default
// parser/plugin resolution.
func New() *Factory {
	return &Factory{
		Presets: defaultPresets(),
	}
}

// ErrAccessDenied is returned (wrapped) by LoadOnDirectory when
// reading a config file fails with a permission error. The Ancestor
// Resolver recognizes it via errors.Is and substitutes the base array
// rather than propagating.
var ErrAccessDenied = errors.New("configfactory: access denied")

// Create materializes a ConfigArray directly from in-memory data,
// bypassing file discovery. Used for base config and CLI config.
func (f *Factory) Create(doc *config.RawDocument, name string) (*config.ConfigArray, error) {
	if doc == nil {
		return config.NewConfigArray(), nil
	}
	elements, err := f.resolveDocument(doc, name, "")
	if err != nil {
		return nil, err
	}
	return config.NewConfigArray(elements...), nil
}

// LoadFile loads and resolves a single explicit config file,
// following its extends chain.
func (f *Factory) LoadFile(filePath, name string) (*config.ConfigArray, error) {
	doc, err := readDocument(filePath)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrAccessDenied, filePath)
		}
		return nil, err
	}
	if name == "" {
		name = filePath
	}
	elements, err := f.resolveDocument(doc, name, filepath.Dir(filePath))
	if err != nil {
		return nil, err
	}
	for _, e := range elements {
		if e.FilePath == "" {
			e.FilePath = filePath
		}
	}
	return config.NewConfigArray(elements...), nil
}

// LoadOnDirectory scans dir for a recognized config filename and, if
// found, loads it. An empty ConfigArray (no error) is returned when no
// recognized file exists.
func (f *Factory) LoadOnDirectory(dir, name string) (*config.ConfigArray, error) {
	found := ""
	for _, candidate := range recognizedConfigFiles {
		path := filepath.Join(dir, candidate)
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrPermission) {
				return nil, fmt.Errorf("%w: %s", ErrAccessDenied, path)
			}
			continue
		}
		if info.IsDir() {
			continue
		}
		found = path
		break
	}
	if found == "" {
		return config.NewConfigArray(), nil
	}
	if name == "" {
		name = found
	}
	return f.LoadFile(found, name)
}

// readDocument reads filePath and parses it as YAML or JSON based on
// its extension. Files with no recognized extension (bare ".mdcascaderc")
// are parsed as YAML, matching ESLint's own rc-file convention.
func readDocument(filePath string) (*config.RawDocument, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("configfactory: read %s: %w", filePath, err)
	}
	if strings.EqualFold(filepath.Ext(filePath), ".json") {
		return config.ParseJSONDocument(data)
	}
	return config.ParseYAMLDocument(data)
}
