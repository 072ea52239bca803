package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docserve/internal/core/domain"
	"github.com/custodia-labs/docserve/internal/core/ports/driving"
	"github.com/custodia-labs/docserve/internal/logger"
)

// Ensure Indexer implements the interface.
var _ driving.IndexService = (*Indexer)(nil)

// Indexer walks the documentation root and warms the metadata cache.
type Indexer struct {
	library *Library
}

// NewIndexer creates an indexer over library.
func NewIndexer(library *Library) *Indexer {
	return &Indexer{library: library}
}

// Reindex scans all markdown files under the root, deriving metadata
// for each. With rebuild set, the cache is cleared first - the only
// supported invalidation granularity. A per-file failure is recorded
// and scanning continues.
func (ix *Indexer) Reindex(ctx context.Context, rebuild bool) (*domain.IndexStats, error) {
	logger.Section("Index")

	if rebuild {
		logger.Info("index: rebuilding, clearing %d cached entries", ix.library.Cache().Len())
		ix.library.Cache().Clear()
	}

	stats := &domain.IndexStats{
		RunID:     uuid.New().String(),
		Errors:    []domain.IndexError{},
		Timestamp: time.Now(),
	}

	for _, o := range ix.library.ScanMarkdown(ix.library.Root()) {
		if o.Err != nil {
			stats.Errors = append(stats.Errors, domain.IndexError{
				File:  o.RelPath,
				Error: o.Err.Error(),
			})
			continue
		}

		info, err := ix.library.Cache().Metadata(o.AbsPath, o.RelPath)
		if err != nil {
			stats.Errors = append(stats.Errors, domain.IndexError{
				File:  o.RelPath,
				Error: err.Error(),
			})
			continue
		}

		stats.FilesIndexed++
		stats.TotalSize += info.Size
	}

	logger.Info("index: %d files, %d bytes, %d errors",
		stats.FilesIndexed, stats.TotalSize, len(stats.Errors))
	return stats, nil
}
