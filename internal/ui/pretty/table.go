package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdcascade/pkg/enumerator"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 2 // STATUS, FILE
	minStatusWidth   = 8
	minFileWidth     = 20
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TableFormatter formats discovered files as a styled two-column table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

// FormatFiles renders one row per discovered entry: a status column
// ("OK" or "IGNORED") and the file path.
func (t *TableFormatter) FormatFiles(entries []enumerator.FileAndConfig) string {
	if len(entries) == 0 {
		return ""
	}

	fileWidth := minFileWidth
	for _, e := range entries {
		if len(e.FilePath) > fileWidth {
			fileWidth = len(e.FilePath)
		}
	}
	totalWidth := minStatusWidth + fileWidth + tablePadding*tableColumnCount
	if totalWidth > t.termWidth && t.termWidth > minStatusWidth+tablePadding*tableColumnCount {
		fileWidth = t.termWidth - minStatusWidth - tablePadding*tableColumnCount
	}

	var b strings.Builder
	b.WriteString(t.styles.TableHeader.Render(fmt.Sprintf(" %-*s  %-*s", minStatusWidth, "STATUS", fileWidth, "FILE")))
	b.WriteString("\n")
	b.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, minStatusWidth+fileWidth+tablePadding)))
	b.WriteString("\n")

	for _, e := range entries {
		status := "OK"
		style := t.styles.TableOKRow
		if e.Ignored {
			status = "IGNORED"
			style = t.styles.TableIgnoreRow
		}
		file := truncateFilePath(e.FilePath, fileWidth)
		row := fmt.Sprintf(" %-*s  %-*s", minStatusWidth, status, fileWidth, file)
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}

	return b.String()
}

// truncateFilePath truncates a file path, preserving the end (filename)
// rather than the beginning, so the most identifying part survives.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
