package pretty

import (
	"strings"

	"github.com/fatih/color"

	"github.com/yaklabco/mdcascade/pkg/enumerator"
)

// FormatFilesPlain renders one "status\tpath" line per entry using
// fatih/color directly, bypassing Lipgloss's box-model styling for
// callers (scripts, --format plain) that want simple ANSI coloring
// with no table layout.
func FormatFilesPlain(entries []enumerator.FileAndConfig, colorEnabled bool) string {
	ok := color.New(color.FgGreen)
	ignored := color.New(color.FgHiBlack)
	if !colorEnabled {
		ok.DisableColor()
		ignored.DisableColor()
	}

	var b strings.Builder
	for _, e := range entries {
		if e.Ignored {
			b.WriteString(ignored.Sprint("ignored"))
		} else {
			b.WriteString(ok.Sprint("ok"))
		}
		b.WriteString("\t")
		b.WriteString(e.FilePath)
		b.WriteString("\n")
	}
	return b.String()
}
