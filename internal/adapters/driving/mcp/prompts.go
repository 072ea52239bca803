package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docserve/internal/core/domain"
)

// registerPrompts registers all prompt handlers with the MCP server.
func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "documentation_query",
		Description: "Generate a structured documentation query for a topic",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "topic",
				Description: "The topic to look up in the documentation",
				Required:    true,
			},
			{
				Name:        "detail_level",
				Description: "How thorough the answer should be: brief, medium, or comprehensive (default medium)",
				Required:    false,
			},
		},
	}, s.handleQueryPrompt)
}

// handleQueryPrompt builds the documentation_query prompt text.
func (s *Server) handleQueryPrompt(
	_ context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	topic := req.Params.Arguments["topic"]
	detailLevel := req.Params.Arguments["detail_level"]
	if detailLevel == "" {
		detailLevel = domain.DetailMedium
	}

	return &mcp.GetPromptResult{
		Description: "Documentation query for " + topic,
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: domain.QueryPrompt(topic, detailLevel),
				},
			},
		},
	}, nil
}
