package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var conceptCmd = &cobra.Command{
	Use:   "concept [name]",
	Short: "Show a design concept",
	Args:  cobra.ExactArgs(1),
	RunE:  runConcept,
}

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "List all design concepts",
	RunE:  runConcepts,
}

func init() {
	rootCmd.AddCommand(conceptCmd)
	rootCmd.AddCommand(conceptsCmd)
}

func runConcept(cmd *cobra.Command, args []string) error {
	if conceptService == nil {
		return errors.New("concept service not configured")
	}

	concept, err := conceptService.Lookup(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("looking up %q: %w", args[0], err)
	}

	cmd.Printf("%s\n", concept.DisplayName)
	cmd.Println(strings.Repeat("=", len(concept.DisplayName)))
	cmd.Println()
	cmd.Println(concept.Description)
	if len(concept.StyleRules) > 0 {
		cmd.Printf("\nClasses: %s\n", strings.Join(concept.StyleRules, ", "))
	}
	if concept.Suggestion != "" {
		cmd.Printf("\nSuggestion: %s\n", concept.Suggestion)
	}
	if concept.Snippet != "" {
		cmd.Printf("\n%s\n", concept.Snippet)
	}
	return nil
}

func runConcepts(cmd *cobra.Command, _ []string) error {
	if conceptService == nil {
		return errors.New("concept service not configured")
	}

	concepts, err := conceptService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing concepts: %w", err)
	}

	cmd.Printf("Design Concepts (%d):\n\n", len(concepts))
	for i := range concepts {
		cmd.Printf("  %-16s %s\n", concepts[i].Name, concepts[i].Description)
	}
	return nil
}
