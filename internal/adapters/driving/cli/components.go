package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List all documented components",
	RunE:  runComponents,
}

var docCmd = &cobra.Command{
	Use:   "doc [component]",
	Short: "Show a component's documentation",
	Args:  cobra.ExactArgs(1),
	RunE:  runDoc,
}

func init() {
	rootCmd.AddCommand(componentsCmd)
	rootCmd.AddCommand(docCmd)
}

func runComponents(cmd *cobra.Command, _ []string) error {
	if docService == nil {
		return errors.New("doc service not configured")
	}

	entries, err := docService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing components: %w", err)
	}

	names := make([]string, len(entries))
	for i := range entries {
		names[i] = entries[i].Name
	}

	cmd.Printf("Components (%d):\n\n", len(names))
	cmd.Print(columnize(names, terminalWidth()))
	return nil
}

func runDoc(cmd *cobra.Command, args []string) error {
	if docService == nil {
		return errors.New("doc service not configured")
	}

	entry, err := docService.Lookup(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("looking up %q: %w", args[0], err)
	}

	cmd.Printf("%s\n", entry.Name)
	cmd.Println(strings.Repeat("=", len(entry.Name)))
	if entry.Category != "" {
		cmd.Printf("Category: %s\n", entry.Category)
	}
	cmd.Println()
	cmd.Println(entry.Body)
	return nil
}

// terminalWidth reports the width of stdout, or 80 when stdout is not
// a terminal.
func terminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// columnize lays names out in columns sized to the longest name.
func columnize(names []string, width int) string {
	if len(names) == 0 {
		return ""
	}

	longest := 0
	for _, name := range names {
		if len(name) > longest {
			longest = len(name)
		}
	}
	colWidth := longest + 2
	cols := width / colWidth
	if cols < 1 {
		cols = 1
	}

	var b strings.Builder
	for i, name := range names {
		fmt.Fprintf(&b, "%-*s", colWidth, name)
		if (i+1)%cols == 0 || i == len(names)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
