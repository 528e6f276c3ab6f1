package config

// ParserDescriptor identifies the parser a ConfigElement selected,
// deferring the actual parse-module load until something asks for it.
type ParserDescriptor struct {
	// ID is the parser's package identifier as written in config
	// (e.g. "@typescript-eslint/parser").
	ID string

	// FilePath is the resolved, absolute path to the parser module on
	// disk, empty until resolved by the configuration factory.
	FilePath string

	// definition is lazily populated the first time something calls
	// Definition(); nil otherwise. It is intentionally untyped since
	// this module never executes a parser, only threads its identity
	// through the merge.
	definition any
	loaded     bool
}

// Definition lazily loads and returns the parser's definition object.
// load is invoked on each call until it first succeeds; later calls
// return the cached definition.
func (p *ParserDescriptor) Definition(load func(filePath string) (any, error)) (any, error) {
	if p.loaded {
		return p.definition, nil
	}
	def, err := load(p.FilePath)
	if err != nil {
		return nil, err
	}
	p.definition = def
	p.loaded = true
	return def, nil
}

// PluginDescriptor identifies one loaded plugin.
type PluginDescriptor struct {
	// ID is the plugin's declared identifier (e.g. "react", or "" for
	// the synthetic --rulesdir pseudo-plugin).
	ID string

	// Rules maps rule id -> opaque rule metadata contributed by this
	// plugin. The enumerator never inspects rule bodies; it only needs
	// to know which ids exist so the Base-Config Builder's
	// --rulesdir pseudo-plugin can be assembled. Validation does not
	// check rule references against it.
	Rules map[string]any
}

// Override is one entry of a ConfigElement's `overrides` array: a
// files/excludedFiles glob scope plus the nested configuration that
// applies only to matching paths.
type Override struct {
	Files         []string
	ExcludedFiles []string
	Config        *ConfigElement
}

// ConfigElement is one layer of configuration, as loaded from a single
// config file, from inline data, or synthesized (base config, CLI
// config, --rulesdir pseudo-plugin, personal config).
type ConfigElement struct {
	// Name is a diagnostic label, e.g. the file it was loaded from or
	// "CLIOptions" / "--rulesdir".
	Name string

	// FilePath is the absolute path to the file this element was
	// loaded from, or "" for a synthetic element. Finalize's "does a
	// real config file exist" test is exactly IsSynthetic() == false
	// for at least one element.
	FilePath string

	// Env lists environment names toggled on by this element
	// (e.g. "browser", "node").
	Env map[string]bool

	// Globals maps global variable name -> declared access mode.
	Globals map[string]GlobalAccess

	// Parser is the parser this element selected, or nil if it did
	// not specify one.
	Parser *ParserDescriptor

	// ParserOptions is a free-form options bag passed to the parser.
	ParserOptions map[string]any

	// Plugins maps plugin id -> descriptor.
	Plugins map[string]*PluginDescriptor

	// Processor names an external file processor, or "" if none.
	Processor string

	// Rules maps rule id -> ordered setting whose first element is a
	// severity.
	Rules map[string]RuleSetting

	// Settings is shared, plugin-agnostic configuration.
	Settings map[string]any

	// Root stops the ancestor walk when true.
	Root bool

	// Overrides is evaluated, in order, against a target path during
	// finalization.
	Overrides []Override
}

// RuleSetting is a rule's configuration: [severity, ...args].
type RuleSetting []any

// Severity extracts and normalizes the leading severity of a rule
// setting. An empty setting is treated as "off".
func (r RuleSetting) Severity() (Severity, error) {
	if len(r) == 0 {
		return SeverityOff, nil
	}
	return ParseSeverity(r[0])
}

// Options returns the rule's configuration arguments, excluding the
// leading severity.
func (r RuleSetting) Options() []any {
	if len(r) <= 1 {
		return nil
	}
	return r[1:]
}

// IsSynthetic reports whether this element did not originate from a
// real file on disk.
func (e *ConfigElement) IsSynthetic() bool {
	return e.FilePath == ""
}

// NewConfigElement returns a ConfigElement with every map field
// initialized, avoiding nil-map writes downstream in the merge code.
func NewConfigElement(name string) *ConfigElement {
	return &ConfigElement{
		Name:          name,
		Env:           make(map[string]bool),
		Globals:       make(map[string]GlobalAccess),
		ParserOptions: make(map[string]any),
		Plugins:       make(map[string]*PluginDescriptor),
		Rules:         make(map[string]RuleSetting),
		Settings:      make(map[string]any),
	}
}
