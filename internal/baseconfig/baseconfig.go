// Package baseconfig assembles the immutable tail of every
// configuration chain: the caller-supplied base config, plus a
// synthetic "--rulesdir" pseudo-plugin exposing rules loaded from
// extra rule directories.
package baseconfig

import (
	"fmt"

	"github.com/yaklabco/mdcascade/pkg/config"
	"github.com/yaklabco/mdcascade/pkg/configfactory"
	"github.com/yaklabco/mdcascade/pkg/ruleset"
)

// rulesDirPluginID is the reserved, empty-string plugin key the
// synthetic --rulesdir element exposes its rule table under.
const rulesDirPluginID = ""

// rulesDirElementName identifies the synthetic element in diagnostics
// and lets the Finalizer recognize it as never satisfying the "a real
// config file exists" test (it carries no FilePath).
const rulesDirElementName = "--rulesdir"

// Build materializes baseData through factory, then — if any extra
// rule directories were supplied — appends the --rulesdir pseudo-plugin
// element built from the rule files discovered in each directory, in
// order, with later directories overwriting earlier ones on id
// collision.
func Build(factory *configfactory.Factory, baseData *config.RawDocument, ruleDirs []string) (*config.ConfigArray, error) {
	base, err := factory.Create(baseData, "BaseConfig")
	if err != nil {
		return nil, fmt.Errorf("baseconfig: build base data: %w", err)
	}

	if len(ruleDirs) == 0 {
		return base, nil
	}

	rules, err := ruleset.LoadDirs(ruleDirs)
	if err != nil {
		return nil, fmt.Errorf("baseconfig: load rule directories: %w", err)
	}

	pluginRules := make(map[string]any, len(rules))
	for id, meta := range rules {
		pluginRules[id] = meta
	}

	element := config.NewConfigElement(rulesDirElementName)
	element.Plugins[rulesDirPluginID] = &config.PluginDescriptor{
		ID:    rulesDirPluginID,
		Rules: pluginRules,
	}

	return base.WithElement(element), nil
}
