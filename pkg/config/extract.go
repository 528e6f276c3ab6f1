package config

import (
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/samber/lo"
)

// ExtractedConfig is the flattened view of a ConfigArray for one target
// file: every element folded together in order, with any matching
// overrides applied last-wins on top.
type ExtractedConfig struct {
	Env           map[string]bool
	Globals       map[string]GlobalAccess
	Parser        *ParserDescriptor
	ParserOptions map[string]any
	Plugins       map[string]*PluginDescriptor
	Processor     string
	Rules         map[string]RuleSetting
	Settings      map[string]any

	// pluginOrder records plugin ids in first-seen order, needed to
	// reproduce ESLint's reverse-insertion-order compat listing. Ids
	// first seen in the same element are appended in map iteration
	// order, so their order relative to each other is not defined.
	pluginOrder []string
}

// Extract folds a ConfigArray plus a target path through any
// applicable overrides into a single flattened ExtractedConfig.
func Extract(array *ConfigArray, filePath string) *ExtractedConfig {
	acc := newExtractedConfig()
	if array == nil {
		return acc
	}
	for _, element := range array.Elements {
		acc.mergeElement(element)
		for _, ov := range element.Overrides {
			if overrideMatches(ov, filePath) {
				acc.mergeElement(ov.Config)
			}
		}
	}
	return acc
}

func newExtractedConfig() *ExtractedConfig {
	return &ExtractedConfig{
		Env:           make(map[string]bool),
		Globals:       make(map[string]GlobalAccess),
		ParserOptions: make(map[string]any),
		Plugins:       make(map[string]*PluginDescriptor),
		Rules:         make(map[string]RuleSetting),
		Settings:      make(map[string]any),
	}
}

func (c *ExtractedConfig) mergeElement(e *ConfigElement) {
	if e == nil {
		return
	}

	for name, on := range e.Env {
		c.Env[name] = on
	}
	for name, mode := range e.Globals {
		c.Globals[name] = mode
	}
	if e.Parser != nil {
		c.Parser = e.Parser
	}
	for k, v := range e.ParserOptions {
		c.ParserOptions[k] = v
	}
	for id, plugin := range e.Plugins {
		if _, seen := c.Plugins[id]; !seen {
			c.pluginOrder = append(c.pluginOrder, id)
		}
		c.Plugins[id] = plugin
	}
	if e.Processor != "" {
		c.Processor = e.Processor
	}
	for id, setting := range e.Rules {
		c.Rules[id] = setting
	}
	for k, v := range e.Settings {
		c.Settings[k] = v
	}
}

// overrideMatches reports whether filePath (an absolute path) matches
// an override's files patterns and none of its excludedFiles patterns.
// Patterns are matched with dotfile-inclusive, ** aware globbing.
func overrideMatches(ov Override, filePath string) bool {
	if len(ov.Files) == 0 {
		return false
	}
	base := filepath.ToSlash(filepath.Base(filePath))
	slashPath := filepath.ToSlash(filePath)

	matched := false
	for _, pattern := range ov.Files {
		if patternMatches(pattern, slashPath, base) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, pattern := range ov.ExcludedFiles {
		if patternMatches(pattern, slashPath, base) {
			return false
		}
	}
	return true
}

func patternMatches(pattern, fullPath, base string) bool {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return false
	}
	return g.Match(fullPath) || g.Match(base)
}

// PluginIDsReverseInsertionOrder returns plugin ids in the reverse of
// the order they were first encountered while folding the array. This
// is the ordering ESLint's --print-config uses. The order holds between
// elements; ids first contributed by the same element come out in no
// defined order relative to each other.
func (c *ExtractedConfig) PluginIDsReverseInsertionOrder() []string {
	return lo.Reverse(append([]string(nil), c.pluginOrder...))
}

// CompatConfig is the shape ToCompatibleObjectAsConfigFileContent
// produces: a --print-config-style rendering where the parser
// descriptor is replaced by its resolved file path and plugins are
// listed as a reverse-insertion-order slice of ids instead of a map.
// Processor is intentionally omitted, matching the documented compat
// contract.
type CompatConfig struct {
	Env           map[string]bool        `json:"env,omitempty" yaml:"env,omitempty"`
	Globals       map[string]GlobalAccess `json:"globals,omitempty" yaml:"globals,omitempty"`
	Parser        string                 `json:"parser,omitempty" yaml:"parser,omitempty"`
	ParserOptions map[string]any         `json:"parserOptions,omitempty" yaml:"parserOptions,omitempty"`
	Plugins       []string               `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	Rules         map[string]RuleSetting `json:"rules,omitempty" yaml:"rules,omitempty"`
	Settings      map[string]any         `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// ToCompatibleObjectAsConfigFileContent renders the ExtractedConfig the
// way --print-config style tooling expects: parser as a bare file path
// (or empty if unset) and plugins as a reverse-insertion-ordered id
// list. The processor field is deliberately dropped.
func (c *ExtractedConfig) ToCompatibleObjectAsConfigFileContent() *CompatConfig {
	compat := &CompatConfig{
		Env:           c.Env,
		Globals:       c.Globals,
		ParserOptions: c.ParserOptions,
		Rules:         c.Rules,
		Settings:      c.Settings,
	}
	if c.Parser != nil {
		compat.Parser = c.Parser.FilePath
	}
	if ids := c.PluginIDsReverseInsertionOrder(); len(ids) > 0 {
		compat.Plugins = ids
	}
	return compat
}
