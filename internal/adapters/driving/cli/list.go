package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [directory]",
	Short: "List documents in the library",
	Long:  `Lists all markdown documents under the documentation root, or under the given subdirectory.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	directory := ""
	if len(args) > 0 {
		directory = args[0]
	}

	docs, err := libraryService.List(cmd.Context(), directory)
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	if listJSON {
		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal documents: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(docs) == 0 {
		cmd.Println("No documents found.")
		return nil
	}

	for i := range docs {
		cmd.Printf("  %s\n", docs[i].Path)
		cmd.Printf("      %s (%d bytes, modified %s)\n",
			docs[i].Title, docs[i].Size, docs[i].Modified.Format("2006-01-02 15:04"))
	}
	cmd.Printf("\n%d document(s)\n", len(docs))
	return nil
}
