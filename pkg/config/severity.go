// Package config defines the data model shared by every layer of the
// cascading configuration resolver: a single ConfigElement, the ordered
// ConfigArray built from them, and the flattened ExtractedConfig a lint
// engine ultimately consumes.
package config

import "fmt"

// Severity is the normalized rule severity: off, warn, or error.
type Severity int

const (
	SeverityOff Severity = iota
	SeverityWarn
	SeverityError
)

// String renders the severity the way a config file would spell it.
func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "off"
	}
}

// severityAliases accepts the numeric and alias spellings ESLint-style
// configs use interchangeably with the canonical names.
var severityAliases = map[string]Severity{
	"off":   SeverityOff,
	"0":     SeverityOff,
	"warn":  SeverityWarn,
	"warning": SeverityWarn,
	"1":     SeverityWarn,
	"error": SeverityError,
	"2":     SeverityError,
}

// ParseSeverity resolves any of the accepted spellings to a Severity.
func ParseSeverity(v any) (Severity, error) {
	switch t := v.(type) {
	case Severity:
		return t, nil
	case int:
		return severityFromInt(t)
	case float64:
		return severityFromInt(int(t))
	case string:
		if sev, ok := severityAliases[t]; ok {
			return sev, nil
		}
		return 0, fmt.Errorf("config: invalid severity %q", t)
	default:
		return 0, fmt.Errorf("config: invalid severity value %v (%T)", v, v)
	}
}

func severityFromInt(n int) (Severity, error) {
	switch n {
	case 0:
		return SeverityOff, nil
	case 1:
		return SeverityWarn, nil
	case 2:
		return SeverityError, nil
	default:
		return 0, fmt.Errorf("config: invalid numeric severity %d", n)
	}
}

// GlobalAccess is the access mode declared for a global variable.
type GlobalAccess int

const (
	GlobalOff GlobalAccess = iota
	GlobalReadonly
	GlobalWritable
)

var globalAccessAliases = map[string]GlobalAccess{
	"off":       GlobalOff,
	"false":     GlobalOff,
	"readonly":  GlobalReadonly,
	"readable":  GlobalReadonly,
	"true":      GlobalWritable,
	"writable":  GlobalWritable,
	"writeable": GlobalWritable,
}

// ParseGlobalAccess resolves a global-variable access mode string.
func ParseGlobalAccess(v string) (GlobalAccess, error) {
	if mode, ok := globalAccessAliases[v]; ok {
		return mode, nil
	}
	return 0, fmt.Errorf("config: invalid global access mode %q", v)
}
