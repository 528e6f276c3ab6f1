package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "mdcascade",
		Short: "Cascading file and configuration resolver",
		Long:  "mdcascade discovers files and resolves cascading configuration.",
	}
	root.PersistentFlags().String("config", "", "path to explicit config file")

	sub := &cobra.Command{
		Use:   "files [patterns...]",
		Short: "List files discovered from the given patterns",
		Run:   func(*cobra.Command, []string) {},
	}
	sub.Flags().String("format", "table", "output format: table or plain")
	root.AddCommand(sub)

	return root
}

func TestApplyToCommand_UsageListsSubcommandsAndFlags(t *testing.T) {
	root := buildTestCommand()
	var out bytes.Buffer
	root.SetOut(&out)

	formatter := NewHelpFormatter("never", &out)
	formatter.ApplyToCommand(root)

	require.NoError(t, root.UsageFunc()(root))

	rendered := out.String()
	assert.Contains(t, rendered, "Usage:")
	assert.Contains(t, rendered, "Available Commands:")
	assert.Contains(t, rendered, "files")
	assert.Contains(t, rendered, "Flags:")
	assert.Contains(t, rendered, "--config")
}

func TestApplyToCommand_HelpIncludesLongDescription(t *testing.T) {
	root := buildTestCommand()
	var out bytes.Buffer
	root.SetOut(&out)

	formatter := NewHelpFormatter("never", &out)
	formatter.ApplyToCommand(root)

	root.HelpFunc()(root, nil)

	rendered := out.String()
	assert.Contains(t, rendered, "mdcascade discovers files and resolves cascading configuration.")
	assert.Contains(t, rendered, "Usage:")
}

func TestApplyToCommand_SubcommandUsageListsOwnFlags(t *testing.T) {
	root := buildTestCommand()
	sub, _, err := root.Find([]string{"files"})
	require.NoError(t, err)

	var out bytes.Buffer
	sub.SetOut(&out)

	formatter := NewHelpFormatter("never", &out)
	formatter.ApplyToCommand(root)

	require.NoError(t, sub.UsageFunc()(sub))

	rendered := out.String()
	assert.Contains(t, rendered, "--format")
	assert.Contains(t, rendered, "Flags:")
	assert.Contains(t, rendered, "Global Flags:")
	assert.Contains(t, rendered, "--config")
}

func TestNewHelpStyles_NoColorProducesUnstyledOutput(t *testing.T) {
	styles := NewHelpStyles(false)
	assert.Equal(t, "Usage:", styles.Heading.Render("Usage:"))
}

func TestRpad_PadsToWidth(t *testing.T) {
	assert.Equal(t, "files   ", rpad("files", 8))
	assert.Equal(t, "files", rpad("files", 2))
}

func TestTrimTrailingWhitespaces_StripsPerLine(t *testing.T) {
	assert.Equal(t, "a\nb", trimTrailingWhitespaces("a  \nb\t"))
}

func TestSplitFlagLine_SeparatesFlagFromDescription(t *testing.T) {
	parts := splitFlagLine("-f, --format string   output format")
	require.Len(t, parts, 2)
	assert.Equal(t, "-f, --format string", parts[0])
	assert.Equal(t, "output format", parts[1])
}
