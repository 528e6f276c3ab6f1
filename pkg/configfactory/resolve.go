package configfactory

import (
	"fmt"
	"path/filepath"

	"github.com/yaklabco/mdcascade/pkg/config"
)

// resolveDocument expands one document's `extends` chain and returns
// the resulting elements in precedence order (extended configs first,
// this document's own settings last). baseDir is used to resolve
// extends entries that name a file relative to the document.
func (f *Factory) resolveDocument(doc *config.RawDocument, name, baseDir string) ([]*config.ConfigElement, error) {
	var elements []*config.ConfigElement

	for _, ext := range doc.Extends {
		extended, err := f.resolveExtends(ext, baseDir)
		if err != nil {
			return nil, fmt.Errorf("configfactory: resolve extends %q of %s: %w", ext, name, err)
		}
		elements = append(elements, extended...)
	}

	own, err := f.toElement(doc, name, baseDir)
	if err != nil {
		return nil, err
	}
	elements = append(elements, own)
	return elements, nil
}

// resolveExtends resolves a single `extends` entry to the elements it
// contributes. An entry that names a known preset expands to that
// preset's own (recursively resolved) elements; anything else is
// treated as a file path, resolved relative to baseDir.
func (f *Factory) resolveExtends(ext, baseDir string) ([]*config.ConfigElement, error) {
	if preset, ok := f.Presets[ext]; ok {
		return f.resolveDocument(preset, ext, baseDir)
	}

	path := ext
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	elements, err := f.resolveDocument(doc, path, filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	elements[len(elements)-1].FilePath = path
	return elements, nil
}

// toElement converts a RawDocument's own (non-extends) fields into a
// ConfigElement, resolving parser and plugin identifiers along the
// way.
func (f *Factory) toElement(doc *config.RawDocument, name, baseDir string) (*config.ConfigElement, error) {
	e := config.NewConfigElement(name)
	e.Root = doc.Root
	e.Processor = doc.Processor

	for k, v := range doc.Env {
		e.Env[k] = v
	}
	for k, v := range doc.Globals {
		e.Globals[k] = v
	}
	for k, v := range doc.ParserOptions {
		e.ParserOptions[k] = v
	}
	for k, v := range doc.Rules {
		e.Rules[k] = v
	}
	for k, v := range doc.Settings {
		e.Settings[k] = v
	}

	if doc.Parser != "" {
		parserPath, err := f.loadParser(doc.Parser, baseDir)
		if err != nil {
			return nil, err
		}
		e.Parser = &config.ParserDescriptor{ID: doc.Parser, FilePath: parserPath}
	}

	for _, pluginID := range doc.Plugins {
		plugin, err := f.loadPlugin(pluginID, baseDir)
		if err != nil {
			return nil, err
		}
		e.Plugins[pluginID] = plugin
	}

	for _, rawOv := range doc.Overrides {
		ovElement := config.NewConfigElement(name + " > overrides")
		for k, v := range rawOv.Env {
			ovElement.Env[k] = v
		}
		for k, v := range rawOv.Globals {
			ovElement.Globals[k] = v
		}
		for k, v := range rawOv.ParserOptions {
			ovElement.ParserOptions[k] = v
		}
		for k, v := range rawOv.Rules {
			ovElement.Rules[k] = v
		}
		for k, v := range rawOv.Settings {
			ovElement.Settings[k] = v
		}
		e.Overrides = append(e.Overrides, config.Override{
			Files:         rawOv.Files,
			ExcludedFiles: rawOv.ExcludedFiles,
			Config:        ovElement,
		})
	}

	return e, nil
}

func (f *Factory) loadParser(id, baseDir string) (string, error) {
	if f.LoadParser != nil {
		return f.LoadParser(id, baseDir)
	}
	return resolveModulePath(id, baseDir)
}

func (f *Factory) loadPlugin(id, baseDir string) (*config.PluginDescriptor, error) {
	if f.LoadPlugin != nil {
		return f.LoadPlugin(id, baseDir)
	}
	return &config.PluginDescriptor{ID: id, Rules: map[string]any{}}, nil
}

// resolveModulePath resolves a bare or relative parser identifier to
// an absolute path the way Node's module resolution would for a
// relative specifier: absolute already, or joined against baseDir.
// Bare package-style identifiers (no leading "." or "/") are returned
// unchanged since this module never actually loads the module, only
// threads its identity through the merge (config.ParserDescriptor).
func resolveModulePath(id, baseDir string) (string, error) {
	if id == "" {
		return "", nil
	}
	if filepath.IsAbs(id) {
		return filepath.Clean(id), nil
	}
	if id[0] == '.' {
		return filepath.Clean(filepath.Join(baseDir, id)), nil
	}
	return id, nil
}

func defaultPresets() map[string]*config.RawDocument {
	return map[string]*config.RawDocument{
		"mdcascade:recommended": {
			Env: map[string]bool{"node": true},
			Rules: map[string]config.RuleSetting{
				"no-duplicate-heading": {"error"},
				"no-trailing-spaces":   {"warn"},
			},
		},
	}
}
