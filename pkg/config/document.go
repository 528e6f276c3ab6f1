package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// RawOverride is the on-disk shape of one overrides[] entry.
type RawOverride struct {
	Files         []string          `yaml:"files" json:"files"`
	ExcludedFiles []string          `yaml:"excludedFiles,omitempty" json:"excludedFiles,omitempty"`
	Env           map[string]bool   `yaml:"env,omitempty" json:"env,omitempty"`
	Globals       map[string]GlobalAccess `yaml:"globals,omitempty" json:"globals,omitempty"`
	ParserOptions map[string]any    `yaml:"parserOptions,omitempty" json:"parserOptions,omitempty"`
	Rules         map[string]RuleSetting `yaml:"rules,omitempty" json:"rules,omitempty"`
	Settings      map[string]any    `yaml:"settings,omitempty" json:"settings,omitempty"`
}

// RawDocument is the on-disk shape of a single configuration file,
// before extends resolution or plugin/parser loading. The
// configuration factory turns a RawDocument into a *ConfigElement.
type RawDocument struct {
	Root          bool              `yaml:"root,omitempty" json:"root,omitempty"`
	Extends       []string          `yaml:"extends,omitempty" json:"extends,omitempty"`
	Parser        string            `yaml:"parser,omitempty" json:"parser,omitempty"`
	ParserOptions map[string]any    `yaml:"parserOptions,omitempty" json:"parserOptions,omitempty"`
	Plugins       []string          `yaml:"plugins,omitempty" json:"plugins,omitempty"`
	Env           map[string]bool   `yaml:"env,omitempty" json:"env,omitempty"`
	Globals       map[string]GlobalAccess `yaml:"globals,omitempty" json:"globals,omitempty"`
	Processor     string            `yaml:"processor,omitempty" json:"processor,omitempty"`
	Rules         map[string]RuleSetting `yaml:"rules,omitempty" json:"rules,omitempty"`
	Settings      map[string]any    `yaml:"settings,omitempty" json:"settings,omitempty"`
	Overrides     []RawOverride     `yaml:"overrides,omitempty" json:"overrides,omitempty"`
}

// ParseYAMLDocument parses raw YAML bytes into a RawDocument.
func ParseYAMLDocument(data []byte) (*RawDocument, error) {
	doc := &RawDocument{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("config: parse YAML: %w", err)
	}
	return doc, nil
}

// ParseJSONDocument parses raw JSON bytes into a RawDocument.
func ParseJSONDocument(data []byte) (*RawDocument, error) {
	doc := &RawDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("config: parse JSON: %w", err)
	}
	return doc, nil
}

// UnmarshalYAML lets a global be declared either as "readonly"/"writable"/
// "off" or as the ESLint-legacy booleans true/false.
func (g *GlobalAccess) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		var b bool
		if err2 := value.Decode(&b); err2 != nil {
			return fmt.Errorf("config: invalid global access value: %w", err)
		}
		raw = fmt.Sprintf("%v", b)
	}
	mode, err := ParseGlobalAccess(raw)
	if err != nil {
		return err
	}
	*g = mode
	return nil
}

// UnmarshalJSON mirrors UnmarshalYAML's leniency for JSON documents.
func (g *GlobalAccess) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var text string
	switch v := raw.(type) {
	case string:
		text = v
	case bool:
		text = fmt.Sprintf("%v", v)
	default:
		return fmt.Errorf("config: invalid global access value %v", raw)
	}
	mode, err := ParseGlobalAccess(text)
	if err != nil {
		return err
	}
	*g = mode
	return nil
}

// UnmarshalYAML lets a rule be configured either as a bare severity
// ("error") or as an [severity, ...options] sequence.
func (r *RuleSetting) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var seq []any
		if err := value.Decode(&seq); err != nil {
			return fmt.Errorf("config: invalid rule setting: %w", err)
		}
		*r = seq
		return nil
	default:
		var scalar any
		if err := value.Decode(&scalar); err != nil {
			return fmt.Errorf("config: invalid rule setting: %w", err)
		}
		*r = RuleSetting{scalar}
		return nil
	}
}

// UnmarshalJSON mirrors UnmarshalYAML's leniency for JSON documents.
func (r *RuleSetting) UnmarshalJSON(data []byte) error {
	var seq []any
	if err := json.Unmarshal(data, &seq); err == nil {
		*r = seq
		return nil
	}
	var scalar any
	if err := json.Unmarshal(data, &scalar); err != nil {
		return fmt.Errorf("config: invalid rule setting: %w", err)
	}
	*r = RuleSetting{scalar}
	return nil
}
