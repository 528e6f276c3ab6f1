package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcascade/pkg/config"
)

func TestConfigArray_ConcatOrdersPrefixFirst(t *testing.T) {
	a := config.NewConfigArray(config.NewConfigElement("a"))
	b := config.NewConfigArray(config.NewConfigElement("b"))

	result := b.Concat(a)
	require.Equal(t, 2, result.Len())
	assert.Equal(t, "a", result.Elements[0].Name)
	assert.Equal(t, "b", result.Elements[1].Name)
}

func TestConfigArray_AppendOrdersOwnFirst(t *testing.T) {
	a := config.NewConfigArray(config.NewConfigElement("a"))
	tail := config.NewConfigArray(config.NewConfigElement("tail"))

	result := a.Append(tail)
	require.Equal(t, 2, result.Len())
	assert.Equal(t, "a", result.Elements[0].Name)
	assert.Equal(t, "tail", result.Elements[1].Name)
}

func TestConfigArray_HasRealConfigFile(t *testing.T) {
	synthetic := config.NewConfigArray(config.NewConfigElement("CLIOptions"))
	assert.False(t, synthetic.HasRealConfigFile())

	real := config.NewConfigElement("real")
	real.FilePath = "/proj/.mdcascaderc.yml"
	assert.True(t, config.NewConfigArray(real).HasRealConfigFile())
}

func TestConfigArray_EmptyAndLenHandleNil(t *testing.T) {
	var nilArray *config.ConfigArray
	assert.True(t, nilArray.Empty())
	assert.Equal(t, 0, nilArray.Len())
}

func TestConfigArray_WithElementDoesNotMutateOriginal(t *testing.T) {
	original := config.NewConfigArray(config.NewConfigElement("a"))
	extended := original.WithElement(config.NewConfigElement("b"))

	assert.Equal(t, 1, original.Len())
	assert.Equal(t, 2, extended.Len())
}

func TestRuleSetting_SeverityAndOptions(t *testing.T) {
	setting := config.RuleSetting{"error", map[string]any{"max": 80}}
	sev, err := setting.Severity()
	require.NoError(t, err)
	assert.Equal(t, config.SeverityError, sev)
	assert.Equal(t, []any{map[string]any{"max": 80}}, setting.Options())
}

func TestRuleSetting_EmptyTreatedAsOff(t *testing.T) {
	var setting config.RuleSetting
	sev, err := setting.Severity()
	require.NoError(t, err)
	assert.Equal(t, config.SeverityOff, sev)
	assert.Nil(t, setting.Options())
}

func TestParseSeverity_AcceptsAliasesAndNumbers(t *testing.T) {
	cases := map[any]config.Severity{
		"off":     config.SeverityOff,
		"warn":    config.SeverityWarn,
		"warning": config.SeverityWarn,
		"error":   config.SeverityError,
		0:         config.SeverityOff,
		1:         config.SeverityWarn,
		2:         config.SeverityError,
		float64(2): config.SeverityError,
	}
	for input, want := range cases {
		got, err := config.ParseSeverity(input)
		require.NoError(t, err, "input=%v", input)
		assert.Equal(t, want, got, "input=%v", input)
	}
}

func TestParseSeverity_RejectsUnknownValues(t *testing.T) {
	_, err := config.ParseSeverity("critical")
	assert.Error(t, err)

	_, err = config.ParseSeverity(3)
	assert.Error(t, err)

	_, err = config.ParseSeverity(true)
	assert.Error(t, err)
}

func TestParseGlobalAccess(t *testing.T) {
	mode, err := config.ParseGlobalAccess("writable")
	require.NoError(t, err)
	assert.Equal(t, config.GlobalWritable, mode)

	_, err = config.ParseGlobalAccess("bogus")
	assert.Error(t, err)
}

func TestParseYAMLDocument_ParsesRulesAndOverrides(t *testing.T) {
	doc, err := config.ParseYAMLDocument([]byte(`
root: true
rules:
  no-hard-tabs: error
  max-len: [warn, 80]
overrides:
  - files: ["*.test.md"]
    rules:
      no-hard-tabs: off
`))
	require.NoError(t, err)
	assert.True(t, doc.Root)
	assert.Equal(t, config.RuleSetting{"error"}, doc.Rules["no-hard-tabs"])
	assert.Equal(t, config.RuleSetting{"warn", 80}, doc.Rules["max-len"])
	require.Len(t, doc.Overrides, 1)
	assert.Equal(t, []string{"*.test.md"}, doc.Overrides[0].Files)
}

func TestExtract_MergesElementsInOrder(t *testing.T) {
	base := config.NewConfigElement("base")
	base.Rules["no-hard-tabs"] = config.RuleSetting{"warn"}

	override := config.NewConfigElement("head")
	override.Rules["no-hard-tabs"] = config.RuleSetting{"error"}

	array := config.NewConfigArray(base, override)
	extracted := config.Extract(array, "/proj/a.md")
	assert.Equal(t, config.RuleSetting{"error"}, extracted.Rules["no-hard-tabs"])
}

func TestExtract_AppliesMatchingOverride(t *testing.T) {
	element := config.NewConfigElement("root")
	element.Rules["no-hard-tabs"] = config.RuleSetting{"warn"}

	overrideConfig := config.NewConfigElement("override")
	overrideConfig.Rules["no-hard-tabs"] = config.RuleSetting{"off"}
	element.Overrides = []config.Override{
		{Files: []string{"*.generated.md"}, Config: overrideConfig},
	}

	array := config.NewConfigArray(element)

	matched := config.Extract(array, "/proj/report.generated.md")
	assert.Equal(t, config.RuleSetting{"off"}, matched.Rules["no-hard-tabs"])

	unmatched := config.Extract(array, "/proj/report.md")
	assert.Equal(t, config.RuleSetting{"warn"}, unmatched.Rules["no-hard-tabs"])
}

func TestExtract_OverrideExcludedFilesWins(t *testing.T) {
	element := config.NewConfigElement("root")
	overrideConfig := config.NewConfigElement("override")
	overrideConfig.Rules["no-hard-tabs"] = config.RuleSetting{"off"}
	element.Overrides = []config.Override{
		{Files: []string{"*.md"}, ExcludedFiles: []string{"keep.md"}, Config: overrideConfig},
	}

	array := config.NewConfigArray(element)
	kept := config.Extract(array, "/proj/keep.md")
	assert.NotContains(t, kept.Rules, "no-hard-tabs")
}

func TestExtractedConfig_PluginOrderReversedForCompat(t *testing.T) {
	first := config.NewConfigElement("first")
	first.Plugins["first"] = &config.PluginDescriptor{ID: "first"}
	second := config.NewConfigElement("second")
	second.Plugins["second"] = &config.PluginDescriptor{ID: "second"}

	array := config.NewConfigArray(first, second)
	extracted := config.Extract(array, "/proj/a.md")
	compat := extracted.ToCompatibleObjectAsConfigFileContent()
	require.Len(t, compat.Plugins, 2)
	assert.Equal(t, []string{"second", "first"}, compat.Plugins)
}

func TestExtractedConfig_CompatParserIsFilePath(t *testing.T) {
	element := config.NewConfigElement("root")
	element.Parser = &config.ParserDescriptor{ID: "custom-parser", FilePath: "/node_modules/custom-parser/index.js"}

	array := config.NewConfigArray(element)
	compat := config.Extract(array, "/proj/a.md").ToCompatibleObjectAsConfigFileContent()
	assert.Equal(t, "/node_modules/custom-parser/index.js", compat.Parser)
}
