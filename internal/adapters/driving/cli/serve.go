package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docserve/internal/adapters/driving/mcp"
	"github.com/custodia-labs/docserve/internal/adapters/driving/watch"
)

var (
	servePort  int
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  docserve serve

  # HTTP mode (for MCP Inspector, remote access)
  docserve serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "docserve": {
        "command": "/path/to/docserve",
        "args": ["serve"]
      }
    }
  }`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP port (0 = use stdio)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "rebuild the index when documentation files change")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ports := &mcp.Ports{
		Library:  libraryService,
		Search:   searchService,
		Ask:      askService,
		Index:    indexService,
		Analysis: analysisService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	// Warm the index before accepting requests.
	if _, err := indexService.Reindex(ctx, false); err != nil {
		return fmt.Errorf("initial index: %w", err)
	}

	if serveWatch {
		watcher := watch.NewWatcher(libraryService.Root(), indexService, 0)
		go watcher.Run(ctx) //nolint:errcheck
	}

	if servePort > 0 {
		addr := fmt.Sprintf(":%d", servePort)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
