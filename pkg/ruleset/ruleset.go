// Package ruleset scans extra rule directories (the --rulesdir
// mechanism) for rule descriptor files and exposes the resulting id ->
// metadata table the Base-Config Builder wraps in a synthetic plugin.
package ruleset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta describes one rule discovered in a --rulesdir directory.
type Meta struct {
	ID              string   `yaml:"id"`
	Description     string   `yaml:"description"`
	DefaultSeverity string   `yaml:"defaultSeverity"`
	Tags            []string `yaml:"tags"`
}

// ruleFileSuffix is the extension a rule descriptor file must carry to
// be picked up by LoadDir.
const ruleFileSuffix = ".rule.yaml"

// LoadDir scans dir (non-recursively) for "*.rule.yaml" descriptor
// files and returns their contents keyed by rule id. Rules are
// described here, not executed: a directory of rule descriptors is a
// plugin a Go binary can read without a JS runtime behind it.
func LoadDir(dir string) (map[string]Meta, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ruleset: read dir %s: %w", dir, err)
	}

	rules := make(map[string]Meta)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ruleFileSuffix) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		meta, err := loadRuleFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if meta.ID == "" {
			meta.ID = strings.TrimSuffix(name, ruleFileSuffix)
		}
		rules[meta.ID] = meta
	}
	return rules, nil
}

func loadRuleFile(path string) (Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Meta{}, fmt.Errorf("ruleset: read %s: %w", path, err)
	}
	var meta Meta
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return Meta{}, fmt.Errorf("ruleset: parse %s: %w", path, err)
	}
	return meta, nil
}

// LoadDirs scans each directory in order and concatenates their rule
// tables, with a rule id discovered in a later directory overwriting
// one discovered in an earlier directory, matching the Base-Config
// Builder's documented "later entries overwrite earlier ones on id
// collision" contract.
func LoadDirs(dirs []string) (map[string]Meta, error) {
	merged := make(map[string]Meta)
	for _, dir := range dirs {
		rules, err := LoadDir(dir)
		if err != nil {
			return nil, err
		}
		for id, meta := range rules {
			merged[id] = meta
		}
	}
	return merged, nil
}
