package iterator

import "github.com/yaklabco/mdcascade/pkg/config"

// Flag classifies a discovered path.
type Flag int

const (
	// FlagNone marks a genuine target.
	FlagNone Flag = iota
	// FlagIgnoredSilently marks a path skipped without notice: it was
	// discovered via glob or directory walk and matched an ignore rule.
	FlagIgnoredSilently
	// FlagIgnored marks a path the caller named explicitly that turned
	// out to be ignored; the caller must be told.
	FlagIgnored
)

func (f Flag) String() string {
	switch f {
	case FlagIgnoredSilently:
		return "IGNORED_SILENTLY"
	case FlagIgnored:
		return "IGNORED"
	default:
		return "NONE"
	}
}

// Entry is one raw discovery result: an absolute file path, the
// ancestor-resolved (not yet finalized) configuration array covering
// its directory, and its ignore classification.
type Entry struct {
	FilePath string
	Config   *config.ConfigArray
	Flag     Flag
}
