package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docserve/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for documentation resources.
	uriScheme = "docs://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Template for document content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "{path}",
		Name:        "document-content",
		Description: "Content of a documentation file by relative path",
		MIMEType:    "text/markdown",
	}, s.handleDocumentResource)
}

// handleDocumentResource returns the content of a documentation file.
func (s *Server) handleDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract the relative path from a URI like docs://guides/setup.md.
	path := extractDocPath(req.Params.URI)
	if path == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	content, err := s.ports.Library.Read(ctx, path)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) ||
			errors.Is(err, domain.ErrNotFile) ||
			errors.Is(err, domain.ErrUnsupportedType) ||
			errors.Is(err, domain.ErrInvalidInput) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: mimeTypeFor(path),
			Text:     content,
		}},
	}, nil
}

// extractDocPath extracts the relative path from a URI like docs://{path}.
func extractDocPath(uri string) string {
	if !strings.HasPrefix(uri, uriScheme) {
		return ""
	}
	return strings.TrimPrefix(uri, uriScheme)
}

// mimeTypeFor maps a document path to its MIME type.
func mimeTypeFor(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".md"), strings.HasSuffix(lower, ".markdown"):
		return "text/markdown"
	default:
		return "text/plain"
	}
}
