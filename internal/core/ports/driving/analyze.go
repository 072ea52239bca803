package driving

import (
	"context"

	"github.com/custodia-labs/docserve/internal/core/domain"
)

// AnalysisService validates and routes documentation analysis tasks.
// No analysis is performed locally; a valid task yields a structured
// hand-off report for a specialised agent.
type AnalysisService interface {
	// Analyze validates task against the closed identifier set and
	// builds a hand-off report covering docs (or every document when
	// docs is empty). An unrecognised task returns a
	// *domain.UnknownTaskError enumerating the valid set.
	Analyze(ctx context.Context, task string, docs []string, outputFormat string) (*domain.AnalysisReport, error)
}
