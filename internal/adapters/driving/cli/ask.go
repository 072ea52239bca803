package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docserve/internal/core/domain"
	"github.com/custodia-labs/docserve/internal/core/ports/driving"
)

var (
	askContextDocs []string
	askMaxContext  int
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question from the documentation",
	Long: `Assembles context from the documentation and answers the question.
Without --doc flags, the top search results for the question are used
as context. When no OpenAI API key is configured, the assembled context
is printed instead of a generated answer.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringArrayVar(&askContextDocs, "doc", nil, "document path to use as context (repeatable)")
	askCmd.Flags().IntVar(&askMaxContext, "max-context", 0, "maximum context characters (default 4000)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	answer, err := askService.Ask(cmd.Context(), driving.AskRequest{
		Question:         args[0],
		ContextDocs:      askContextDocs,
		MaxContextLength: askMaxContext,
	})
	if err != nil {
		var rle *domain.RateLimitError
		if errors.As(err, &rle) {
			return fmt.Errorf("rate limit exceeded, retry in %d second(s)", rle.ResetSeconds())
		}
		return fmt.Errorf("ask failed: %w", err)
	}

	if answer.Answer != "" {
		cmd.Println(answer.Answer)
	}
	if answer.Context != "" {
		cmd.Println(answer.Context)
	}
	if answer.Note != "" {
		cmd.Printf("\nNote: %s\n", answer.Note)
	}
	if answer.Err != "" {
		cmd.Printf("\nGeneration failed: %s\n", answer.Err)
	}
	if len(answer.Sources) > 0 {
		cmd.Println("\nSources:")
		for _, src := range answer.Sources {
			cmd.Printf("  %s\n", src)
		}
	}
	if answer.Model != "" {
		cmd.Printf("\nModel: %s\n", answer.Model)
	}
	return nil
}
