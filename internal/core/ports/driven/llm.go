// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import "context"

// AnswerGenerator delegates question answering to an external language
// model. This is an optional service - when nil, ask degrades
// gracefully to returning the assembled context instead of an answer.
//
// Implementations may include:
//   - OpenAI (gpt-4o-mini and compatible chat-completions APIs)
//   - A test double for unit tests
type AnswerGenerator interface {
	// GenerateAnswer produces an answer to question using only the
	// provided documentation context. Exactly one attempt is made per
	// call; retry policy is the caller's concern (there is none).
	GenerateAnswer(ctx context.Context, question, docContext string) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string
}
