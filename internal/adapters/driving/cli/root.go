// Package cli wires the documentation services into cobra commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docserve/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docserve/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/docserve/internal/core/ports/driven"
	"github.com/custodia-labs/docserve/internal/core/services"
	"github.com/custodia-labs/docserve/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// containerDocsDir is checked before falling back to ./docs, for
// container deployments that mount documentation there. Variable so
// tests can point it somewhere hermetic.
var containerDocsDir = "/app/docs"

// Persistent flags.
var (
	flagVerbose   bool
	flagDocsDir   string
	flagConfigDir string
)

// Services shared by all commands, wired in initServices.
var (
	libraryService  *services.Library
	searchService   *services.Search
	askService      *services.Asker
	indexService    *services.Indexer
	analysisService *services.Analysis
)

var rootCmd = &cobra.Command{
	Use:   "docserve",
	Short: "Serve a directory of markdown documentation to AI assistants",
	Long: `Docserve exposes a local directory of markdown documentation through
the Model Context Protocol: listing, keyword search, question answering
over assembled context, index maintenance, and analysis hand-offs.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagDocsDir, "docs-dir", "", "documentation root directory")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.docserve)")
}

// ExecuteContext runs the root command with ctx governing all
// long-running commands.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// initServices builds the service graph before any command runs.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	store, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	root, err := resolveDocsRoot(flagDocsDir, store)
	if err != nil {
		return fmt.Errorf("resolving docs directory: %w", err)
	}
	logger.Debug("docs root: %s", root)

	libraryService = services.NewLibrary(root, services.NewMetadataCache())
	searchService = services.NewSearch(libraryService)
	assembler := services.NewAssembler(libraryService, searchService)
	assembler.SetDefaultMaxLength(store.GetInt(file.KeyMaxContextLength))
	indexService = services.NewIndexer(libraryService)
	analysisService = services.NewAnalysis(libraryService)

	generator, err := buildGenerator(store)
	if err != nil {
		return fmt.Errorf("configuring answer generator: %w", err)
	}

	askService = services.NewAsker(assembler, generator, store.GetInt(file.KeyAskRatePerMinute))
	return nil
}

// resolveDocsRoot picks the documentation root. The --docs-dir flag is
// an explicit override and is taken as-is. Otherwise the candidates are
// the DOCS_DIR environment variable, the docs_dir config key,
// /app/docs, and ./docs, in order: the first existing directory wins,
// and when none exist the first candidate is created.
func resolveDocsRoot(flag string, store driven.ConfigStore) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}

	var candidates []string
	for _, c := range []string{os.Getenv("DOCS_DIR"), store.GetString(file.KeyDocsDir), containerDocsDir, "docs"} {
		if c != "" {
			candidates = append(candidates, c)
		}
	}

	for _, c := range candidates {
		abs, err := filepath.Abs(c)
		if err != nil {
			return "", err
		}
		if fi, err := os.Stat(abs); err == nil && fi.IsDir() {
			return abs, nil
		}
	}

	first, err := filepath.Abs(candidates[0])
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(first, 0755); err != nil {
		return "", err
	}
	return first, nil
}

// buildGenerator creates the OpenAI generator when a key is available.
// Without a key, ask falls back to returning assembled context, so a
// nil generator is not an error.
func buildGenerator(store driven.ConfigStore) (driven.AnswerGenerator, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		apiKey = store.GetString(file.KeyOpenAIAPIKey)
	}
	if apiKey == "" {
		logger.Debug("no OpenAI API key configured, ask will return raw context")
		return nil, nil
	}

	return openai.NewGenerator(openai.Config{
		APIKey:  apiKey,
		Model:   store.GetString(file.KeyOpenAIModel),
		BaseURL: store.GetString(file.KeyOpenAIBaseURL),
	})
}
