package driving

import (
	"context"

	"github.com/custodia-labs/docserve/internal/core/domain"
)

// IndexService rebuilds the metadata cache from the filesystem.
type IndexService interface {
	// Reindex walks all markdown files under the root and warms the
	// metadata cache. When rebuild is set, all cached entries are
	// dropped first; full invalidation is the only supported
	// granularity. Per-file failures are recorded in the returned
	// stats and never abort the run.
	Reindex(ctx context.Context, rebuild bool) (*domain.IndexStats, error)
}
