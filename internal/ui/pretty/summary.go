package pretty

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// Stats captures aggregate information about one enumeration run.
type Stats struct {
	// Discovered is the number of entries surfaced to the caller,
	// including those flagged Ignored.
	Discovered int

	// Ignored is the number of discovered entries the caller named
	// explicitly that turned out to be ignored.
	Ignored int
}

// FormatSummaryOneLine formats enumeration statistics as a single line.
// Example: "12 files discovered, 2 ignored".
func (s *Styles) FormatSummaryOneLine(stats Stats) string {
	if stats.Discovered == 0 {
		return s.Dim.Render("No files discovered") + "\n"
	}

	fileWord := wordFiles
	if stats.Discovered == 1 {
		fileWord = wordFile
	}

	msg := fmt.Sprintf("%d %s discovered", stats.Discovered, fileWord)
	if stats.Ignored > 0 {
		msg += ", " + s.Ignored.Render(fmt.Sprintf("%d ignored", stats.Ignored))
	}
	return msg + "\n"
}

// FormatSummary formats enumeration statistics as a summary block.
func (s *Styles) FormatSummary(stats Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files discovered: " +
		s.SummaryValue.Render(strconv.Itoa(stats.Discovered)) + "\n")

	if stats.Ignored > 0 {
		builder.WriteString("  Files ignored:    " +
			s.Ignored.Render(strconv.Itoa(stats.Ignored)) + "\n")
	}

	builder.WriteString("\n")
	if stats.Discovered == 0 {
		builder.WriteString(s.Failure.Render("No files matched"))
	} else {
		builder.WriteString(s.Success.Render("Discovery complete"))
	}
	builder.WriteString("\n")

	return builder.String()
}
