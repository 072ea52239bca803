package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docserve/internal/core/domain"
	"github.com/custodia-labs/docserve/internal/core/ports/driving"
)

// mockGenerator is a mock implementation of driven.AnswerGenerator.
type mockGenerator struct {
	answer      string
	err         error
	lastContext string
}

func (m *mockGenerator) GenerateAnswer(_ context.Context, _, docContext string) (string, error) {
	m.lastContext = docContext
	return m.answer, m.err
}

func (m *mockGenerator) ModelName() string {
	return "mock-model"
}

func newTestAsker(t *testing.T, gen *mockGenerator) (*Asker, string) {
	t.Helper()
	lib, dir := newTestLibrary(t)
	asm := NewAssembler(lib, NewSearch(lib))
	if gen == nil {
		return NewAsker(asm, nil, 0), dir
	}
	return NewAsker(asm, gen, 0), dir
}

func TestAsker_Ask(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates assembled context to the generator", func(t *testing.T) {
		gen := &mockGenerator{answer: "Use the installer."}
		asker, dir := newTestAsker(t, gen)
		writeDoc(t, dir, "install.md", "# Install\n\nRun the installer binary.\n")

		answer, err := asker.Ask(ctx, driving.AskRequest{
			Question:    "how do I install?",
			ContextDocs: []string{"install.md"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Use the installer.", answer.Answer)
		assert.Equal(t, []string{"install.md"}, answer.Sources)
		assert.Equal(t, "mock-model", answer.Model)
		assert.Equal(t, domain.ConfidenceHigh, answer.Confidence)
		assert.Contains(t, gen.lastContext, "--- install.md ---")
	})

	t.Run("generation failure falls back to context", func(t *testing.T) {
		gen := &mockGenerator{err: errors.New("upstream quota exhausted")}
		asker, dir := newTestAsker(t, gen)
		writeDoc(t, dir, "install.md", "# Install\n\nRun the installer binary.\n")

		answer, err := asker.Ask(ctx, driving.AskRequest{
			Question:    "how do I install?",
			ContextDocs: []string{"install.md"},
		})

		require.NoError(t, err)
		assert.Empty(t, answer.Answer)
		assert.Contains(t, answer.Err, "upstream quota exhausted")
		assert.Contains(t, answer.Context, "install.md")
		assert.Equal(t, []string{"install.md"}, answer.Sources)
	})

	t.Run("no generator returns context with note", func(t *testing.T) {
		asker, dir := newTestAsker(t, nil)
		writeDoc(t, dir, "install.md", "# Install\n\nRun the installer binary.\n")

		answer, err := asker.Ask(ctx, driving.AskRequest{
			Question:    "how do I install?",
			ContextDocs: []string{"install.md"},
		})

		require.NoError(t, err)
		assert.Empty(t, answer.Answer)
		assert.NotEmpty(t, answer.Context)
		assert.NotEmpty(t, answer.Note)
		assert.Positive(t, answer.ContextLength)
	})

	t.Run("fallback context display is capped", func(t *testing.T) {
		asker, dir := newTestAsker(t, nil)
		writeDoc(t, dir, "big.md", strings.Repeat("z", 2000))

		answer, err := asker.Ask(ctx, driving.AskRequest{
			Question:    "anything",
			ContextDocs: []string{"big.md"},
		})

		require.NoError(t, err)
		assert.Len(t, answer.Context, domain.DisplayContextLimit+len(domain.TruncationMarker))
		assert.Equal(t, 2000, answer.ContextLength)
	})

	t.Run("capped context display stays valid UTF-8", func(t *testing.T) {
		asker, dir := newTestAsker(t, nil)
		writeDoc(t, dir, "cjk.md", strings.Repeat("文", 600))

		answer, err := asker.Ask(ctx, driving.AskRequest{
			Question:    "anything",
			ContextDocs: []string{"cjk.md"},
		})

		require.NoError(t, err)
		assert.True(t, utf8.ValidString(answer.Context))
		assert.LessOrEqual(t, len(answer.Context), domain.DisplayContextLimit+len(domain.TruncationMarker))
		assert.True(t, strings.HasSuffix(answer.Context, domain.TruncationMarker))
	})

	t.Run("no relevant documentation yields low confidence", func(t *testing.T) {
		gen := &mockGenerator{answer: "should not be called"}
		asker, dir := newTestAsker(t, gen)
		writeDoc(t, dir, "other.md", "# Other\n\nnothing here\n")

		answer, err := asker.Ask(ctx, driving.AskRequest{
			Question: "quantum chromodynamics",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.NoRelevantDocsAnswer, answer.Answer)
		assert.Equal(t, domain.ConfidenceLow, answer.Confidence)
		assert.Empty(t, answer.Sources)
		assert.Empty(t, gen.lastContext)
	})

	t.Run("per-caller rate limit trips after the budget", func(t *testing.T) {
		lib, dir := newTestLibrary(t)
		writeDoc(t, dir, "a.md", "content")
		asm := NewAssembler(lib, NewSearch(lib))
		asker := NewAsker(asm, nil, 2)

		req := driving.AskRequest{Question: "q", ContextDocs: []string{"a.md"}, UserID: "alice"}
		for i := 0; i < 2; i++ {
			_, err := asker.Ask(ctx, req)
			require.NoError(t, err)
		}

		_, err := asker.Ask(ctx, req)
		require.Error(t, err)

		var rle *domain.RateLimitError
		require.ErrorAs(t, err, &rle)
		assert.GreaterOrEqual(t, rle.ResetSeconds(), 1)

		// Other callers are unaffected.
		other := req
		other.UserID = "bob"
		_, err = asker.Ask(ctx, other)
		assert.NoError(t, err)
	})
}
