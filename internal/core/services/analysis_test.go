package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docserve/internal/core/domain"
)

func TestAnalysis_Analyze(t *testing.T) {
	ctx := context.Background()

	t.Run("valid task produces a hand-off report", func(t *testing.T) {
		lib, _ := newTestLibrary(t)
		svc := NewAnalysis(lib)

		report, err := svc.Analyze(ctx, domain.TaskGenerateOutline, []string{"a.md", "b.md"}, "")

		require.NoError(t, err)
		assert.Equal(t, domain.TaskGenerateOutline, report.Task)
		assert.Equal(t, 2, report.DocumentsAnalyzed)
		assert.Equal(t, domain.OutputFormatSummary, report.OutputFormat)
		assert.Equal(t, []string{"a.md", "b.md"}, report.Documents)
		assert.True(t, report.HandoffReady)
		assert.NotEmpty(t, report.NextSteps)
	})

	t.Run("unknown task enumerates valid tasks", func(t *testing.T) {
		lib, _ := newTestLibrary(t)
		svc := NewAnalysis(lib)

		_, err := svc.Analyze(ctx, "summarise", nil, "")

		require.Error(t, err)
		var ute *domain.UnknownTaskError
		require.ErrorAs(t, err, &ute)
		assert.Equal(t, "summarise", ute.Task)
		assert.Equal(t, domain.AnalysisTasks(), ute.Available)
	})

	t.Run("empty docs defaults to the whole library", func(t *testing.T) {
		lib, dir := newTestLibrary(t)
		writeDoc(t, dir, "a.md", "# A\n")
		writeDoc(t, dir, "b.md", "# B\n")
		svc := NewAnalysis(lib)

		report, err := svc.Analyze(ctx, domain.TaskExtractExamples, nil, "")

		require.NoError(t, err)
		assert.Equal(t, 2, report.DocumentsAnalyzed)
		assert.Equal(t, []string{"a.md", "b.md"}, report.Documents)
	})

	t.Run("suggested model depends on the task", func(t *testing.T) {
		lib, _ := newTestLibrary(t)
		svc := NewAnalysis(lib)

		gaps, err := svc.Analyze(ctx, domain.TaskFindGaps, []string{"a.md"}, "")
		require.NoError(t, err)
		assert.Equal(t, "gpt-4", gaps.SuggestedModel)

		outline, err := svc.Analyze(ctx, domain.TaskGenerateOutline, []string{"a.md"}, "")
		require.NoError(t, err)
		assert.Equal(t, "claude-3-5-sonnet", outline.SuggestedModel)
	})
}
