package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure generation and search settings.

Settings persist to a TOML file in the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a setting",
	Long: `Set a setting and persist it.

Available keys:
  title  - default title for generated layouts
  theme  - daisyUI theme applied to generated documents
  limit  - default maximum number of search results
  http   - listen address for the MCP HTTP transport`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Generate]")
	cmd.Printf("  Default Title: %s\n", settings.DefaultTitle)
	cmd.Printf("  Theme: %s\n", settings.Theme)
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Limit: %d\n", settings.SearchLimit)
	cmd.Println()

	cmd.Println("[MCP]")
	cmd.Printf("  HTTP Address: %s\n", settings.HTTPAddr)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "title":
		settings.DefaultTitle = value
	case "theme":
		settings.Theme = value
	case "limit":
		limit, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("limit must be an integer: %w", err)
		}
		settings.SearchLimit = limit
	case "http":
		settings.HTTPAddr = value
	default:
		return fmt.Errorf("unknown setting %q (title, theme, limit, http)", key)
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Set %s to %s\n", key, value)
	return nil
}
