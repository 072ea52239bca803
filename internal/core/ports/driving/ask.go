package driving

import (
	"context"

	"github.com/custodia-labs/docserve/internal/core/domain"
)

// AskRequest is the input for an ask operation.
type AskRequest struct {
	// Question is the question to answer.
	Question string

	// ContextDocs optionally names the documents to use as context.
	// When empty, a search for the question selects them.
	ContextDocs []string

	// MaxContextLength is the context character budget (default 4000).
	MaxContextLength int

	// UserID identifies the caller for rate limiting. Empty means the
	// shared default caller.
	UserID string
}

// AskService answers questions about the documentation.
type AskService interface {
	// Ask assembles bounded context for the question and, when an
	// external model is configured, delegates generation to it. A
	// failed or unconfigured delegation yields a context-only result,
	// never an error. A *domain.RateLimitError is returned when the
	// caller exceeded the request budget.
	Ask(ctx context.Context, req AskRequest) (*domain.Answer, error)
}
