package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daisy-days/daisyd/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the component documentation",
	Long: `Searches the documentation index by tag and name.
Each distinct query term scores matching entries; name matches
outweigh tag matches and results are ranked by score.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultSearchLimit, "maximum number of results (overrides the configured default)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if docService == nil {
		return errors.New("doc service not configured")
	}

	limit := searchLimit
	if !cmd.Flags().Changed("limit") {
		settings, err := currentSettings()
		if err != nil {
			return err
		}
		limit = settings.SearchLimit
	}

	results, err := docService.Search(cmd.Context(), query, limit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %s (score %d)\n", i+1, results[i].EntryName, results[i].Score)
		if len(results[i].MatchedTags) > 0 {
			cmd.Printf("      matched: %s\n", strings.Join(results[i].MatchedTags, ", "))
		}
	}
	cmd.Println()

	return nil
}
