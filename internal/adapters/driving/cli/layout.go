package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	layoutTitle    string
	layoutConcepts []string
	layoutOut      string
)

var layoutCmd = &cobra.Command{
	Use:   "layout [archetype]",
	Short: "Generate an HTML layout",
	Long: `Generates a complete HTML document for a layout archetype.
Design concepts can be layered on with repeated --concept flags.

Run 'daisyd layouts' to see the available archetypes.`,
	Args: cobra.ExactArgs(1),
	RunE: runLayout,
}

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the layout archetypes",
	RunE:  runLayouts,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest [prompt]",
	Short: "Suggest a layout archetype for a prompt",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSuggest,
}

func init() {
	layoutCmd.Flags().StringVarP(&layoutTitle, "title", "t", "", "page title (default from settings, then per archetype)")
	layoutCmd.Flags().StringArrayVarP(&layoutConcepts, "concept", "c", nil, "design concept to apply (repeatable)")
	layoutCmd.Flags().StringVarP(&layoutOut, "out", "o", "", "write the document to a file instead of stdout")
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(suggestCmd)
}

func runLayout(cmd *cobra.Command, args []string) error {
	if layoutService == nil {
		return errors.New("layout service not configured")
	}

	title := layoutTitle
	if title == "" {
		settings, err := currentSettings()
		if err != nil {
			return err
		}
		title = settings.DefaultTitle
	}

	html, err := layoutService.Generate(cmd.Context(), args[0], title, layoutConcepts)
	if err != nil {
		return fmt.Errorf("generating layout: %w", err)
	}

	if layoutOut != "" {
		if err := os.WriteFile(layoutOut, []byte(html), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", layoutOut, err)
		}
		cmd.Printf("Wrote %s\n", layoutOut)
		return nil
	}

	cmd.Println(html)
	return nil
}

func runLayouts(cmd *cobra.Command, _ []string) error {
	if layoutService == nil {
		return errors.New("layout service not configured")
	}

	cmd.Println("Layout archetypes:")
	cmd.Println()
	for _, archetype := range layoutService.Archetypes() {
		cmd.Printf("  %s\n", archetype)
	}
	return nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if layoutService == nil {
		return errors.New("layout service not configured")
	}

	prompt := strings.Join(args, " ")
	archetype := layoutService.Suggest(cmd.Context(), prompt)

	cmd.Printf("Suggested layout: %s\n", archetype)
	cmd.Printf("Generate it with: daisyd layout %s\n", archetype)
	return nil
}
