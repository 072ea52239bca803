package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var indexRebuild bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Scan the documentation and refresh the metadata index",
	RunE:  runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&indexRebuild, "rebuild", false, "discard cached metadata before scanning")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	stats, err := indexService.Reindex(cmd.Context(), indexRebuild)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	cmd.Printf("Indexed %d file(s), %d bytes total\n", stats.FilesIndexed, stats.TotalSize)
	if len(stats.Errors) > 0 {
		cmd.Printf("%d file(s) failed:\n", len(stats.Errors))
		for _, e := range stats.Errors {
			cmd.Printf("  %s: %s\n", e.File, e.Error)
		}
	}
	return nil
}
