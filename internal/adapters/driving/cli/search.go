package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docserve/internal/core/domain"
)

var (
	searchMaxResults int
	searchNoContent  bool
	searchNoTitles   bool
	searchJSON       bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search documentation by keyword",
	Long: `Performs a case-insensitive keyword search across document titles
and content. Results are ranked by score: a title match is worth more
than repeated occurrences in the body.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchMaxResults, "max-results", "n", domain.DefaultMaxResults, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchNoContent, "no-content", false, "skip matching document bodies")
	searchCmd.Flags().BoolVar(&searchNoTitles, "no-titles", false, "skip matching document titles")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	opts := domain.SearchOptions{
		MaxResults:    searchMaxResults,
		SearchContent: !searchNoContent,
		SearchTitles:  !searchNoTitles,
	}

	results, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %s (%d)\n", i+1, results[i].Document.Title, results[i].Score)
		cmd.Printf("      %s\n", results[i].Document.Path)
		if results[i].Snippet != "" {
			cmd.Printf("      %s\n", results[i].Snippet)
		}
		cmd.Println()
	}

	return nil
}
