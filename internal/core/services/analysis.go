package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docserve/internal/core/domain"
	"github.com/custodia-labs/docserve/internal/core/ports/driving"
)

// Ensure Analysis implements the interface.
var _ driving.AnalysisService = (*Analysis)(nil)

// Analysis validates and routes documentation analysis tasks. No
// analysis happens locally; the report is a structured hand-off for a
// specialised agent.
type Analysis struct {
	library *Library
}

// NewAnalysis creates an analysis service over library.
func NewAnalysis(library *Library) *Analysis {
	return &Analysis{library: library}
}

// Analyze validates task and builds a hand-off report. When docs is
// empty, every document under the root is in scope.
func (a *Analysis) Analyze(ctx context.Context, task string, docs []string, outputFormat string) (*domain.AnalysisReport, error) {
	if !domain.ValidAnalysisTask(task) {
		return nil, &domain.UnknownTaskError{
			Task:      task,
			Available: domain.AnalysisTasks(),
		}
	}

	if outputFormat == "" {
		outputFormat = domain.OutputFormatSummary
	}

	if len(docs) == 0 {
		infos, err := a.library.List(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("list documents: %w", err)
		}
		docs = make([]string, len(infos))
		for i, info := range infos {
			docs[i] = info.Path
		}
	}

	return &domain.AnalysisReport{
		Task:              task,
		DocumentsAnalyzed: len(docs),
		OutputFormat:      outputFormat,
		Summary:           fmt.Sprintf("Analysis task %q ready for processing", task),
		Documents:         docs,
		NextSteps: []string{
			"Connect specialized agent for this task",
			"Process documents according to task requirements",
			"Return structured results",
		},
		HandoffReady:   true,
		SuggestedModel: domain.SuggestedModel(task),
	}, nil
}
