package driving

import (
	"context"

	"github.com/custodia-labs/docserve/internal/core/domain"
)

// SearchService provides keyword search over the documentation root.
type SearchService interface {
	// Search scans every markdown file under the root and returns the
	// top-scoring documents, ordered by descending score with ascending
	// path order breaking ties. An empty query returns no results.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
