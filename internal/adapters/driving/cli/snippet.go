package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	themeName      string
	themePrimary   string
	themeSecondary string
	themeAccent    string
	themeBase      string

	formFields []string

	chartID string
)

var snippetCmd = &cobra.Command{
	Use:   "snippet",
	Short: "Generate standalone markup snippets",
	Long:  `Generates small standalone snippets: themes, forms, tables, charts, and component scripts.`,
}

var snippetThemeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Generate a daisyUI theme plugin block",
	RunE:  runSnippetTheme,
}

var snippetFormCmd = &cobra.Command{
	Use:   "form [title]",
	Short: "Generate a card-wrapped form",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnippetForm,
}

var snippetTableCmd = &cobra.Command{
	Use:   "table [columns...]",
	Short: "Generate a table skeleton",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSnippetTable,
}

var snippetChartCmd = &cobra.Command{
	Use:   "chart [type]",
	Short: "Generate a Chart.js canvas bootstrap",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSnippetChart,
}

var snippetScriptCmd = &cobra.Command{
	Use:   "script [component]",
	Short: "Show a component's interaction script",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnippetScript,
}

func init() {
	snippetThemeCmd.Flags().StringVar(&themeName, "name", "", "theme name")
	snippetThemeCmd.Flags().StringVar(&themePrimary, "primary", "", "primary colour")
	snippetThemeCmd.Flags().StringVar(&themeSecondary, "secondary", "", "secondary colour")
	snippetThemeCmd.Flags().StringVar(&themeAccent, "accent", "", "accent colour")
	snippetThemeCmd.Flags().StringVar(&themeBase, "base", "", "base-100 colour")

	snippetFormCmd.Flags().StringArrayVarP(&formFields, "field", "f", nil, "form field name (repeatable)")

	snippetChartCmd.Flags().StringVar(&chartID, "id", "", "canvas element id")

	snippetCmd.AddCommand(snippetThemeCmd)
	snippetCmd.AddCommand(snippetFormCmd)
	snippetCmd.AddCommand(snippetTableCmd)
	snippetCmd.AddCommand(snippetChartCmd)
	snippetCmd.AddCommand(snippetScriptCmd)
	rootCmd.AddCommand(snippetCmd)
}

func runSnippetTheme(cmd *cobra.Command, _ []string) error {
	if snippetService == nil {
		return errors.New("snippet service not configured")
	}

	cmd.Println(snippetService.Theme(themeName, themePrimary, themeSecondary, themeAccent, themeBase))
	return nil
}

func runSnippetForm(cmd *cobra.Command, args []string) error {
	if snippetService == nil {
		return errors.New("snippet service not configured")
	}

	cmd.Println(snippetService.Form(args[0], formFields))
	return nil
}

func runSnippetTable(cmd *cobra.Command, args []string) error {
	if snippetService == nil {
		return errors.New("snippet service not configured")
	}

	cmd.Println(snippetService.Table(args))
	return nil
}

func runSnippetChart(cmd *cobra.Command, args []string) error {
	if snippetService == nil {
		return errors.New("snippet service not configured")
	}

	kind := ""
	if len(args) > 0 {
		kind = args[0]
	}
	cmd.Println(snippetService.Chart(kind, chartID))
	return nil
}

func runSnippetScript(cmd *cobra.Command, args []string) error {
	if snippetService == nil {
		return errors.New("snippet service not configured")
	}

	script, err := snippetService.Script(args[0])
	if err != nil {
		return fmt.Errorf("no script for %q: %w", args[0], err)
	}
	cmd.Println(script)
	return nil
}
