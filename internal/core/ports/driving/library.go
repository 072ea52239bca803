// Package driving provides interfaces through which external actors
// (CLI, MCP server) drive the core services (primary/inbound ports).
package driving

import (
	"context"

	"github.com/custodia-labs/docserve/internal/core/domain"
)

// LibraryService exposes the documentation directory.
type LibraryService interface {
	// List returns metadata for every markdown file under directory
	// (relative to the docs root; empty means the whole root), sorted
	// by path. A non-existent directory yields an empty list, not an
	// error.
	List(ctx context.Context, directory string) ([]domain.DocumentInfo, error)

	// Read returns the raw text of the documentation file at path.
	// Missing paths, directories, paths escaping the root, and
	// unsupported extensions are usage errors.
	Read(ctx context.Context, path string) (string, error)
}
