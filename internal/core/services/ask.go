package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/docserve/internal/core/domain"
	"github.com/custodia-labs/docserve/internal/core/ports/driven"
	"github.com/custodia-labs/docserve/internal/core/ports/driving"
	"github.com/custodia-labs/docserve/internal/logger"
)

// Ensure Asker implements the interface.
var _ driving.AskService = (*Asker)(nil)

// DefaultAskRatePerMinute is the per-caller request budget for ask.
const DefaultAskRatePerMinute = 10

// defaultCaller is the rate-limit bucket for requests without a user id.
const defaultCaller = "default"

// systemNote explains context-only responses when no credential is
// configured.
const systemNote = "no API key configured; the hosting platform's LLM integration is responsible for generation"

// callerLimits tracks one rate limiter per caller id. Limiters are
// created on first use and live for the process lifetime.
type callerLimits struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newCallerLimits(perMinute int) *callerLimits {
	return &callerLimits{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
}

// allow reports whether caller may proceed now; when denied it returns
// the wait until the next request would be admitted.
func (c *callerLimits) allow(caller string) (bool, time.Duration) {
	c.mu.Lock()
	limiter, ok := c.limiters[caller]
	if !ok {
		limiter = rate.NewLimiter(c.limit, c.burst)
		c.limiters[caller] = limiter
	}
	c.mu.Unlock()

	res := limiter.Reserve()
	if !res.OK() {
		return false, time.Minute
	}
	if delay := res.Delay(); delay > 0 {
		res.Cancel()
		return false, delay
	}
	return true, 0
}

// Asker produces answers by delegating assembled context to an external
// model, falling back to the raw context when delegation is unavailable
// or fails. Exactly one delegation attempt is made per request.
type Asker struct {
	assembler *Assembler
	generator driven.AnswerGenerator // nil when no credential is configured
	limits    *callerLimits
}

// NewAsker creates an ask service. generator may be nil; ratePerMinute
// defaults to DefaultAskRatePerMinute when non-positive.
func NewAsker(assembler *Assembler, generator driven.AnswerGenerator, ratePerMinute int) *Asker {
	if ratePerMinute <= 0 {
		ratePerMinute = DefaultAskRatePerMinute
	}
	return &Asker{
		assembler: assembler,
		generator: generator,
		limits:    newCallerLimits(ratePerMinute),
	}
}

// Ask assembles context for the question and answers it.
func (a *Asker) Ask(ctx context.Context, req driving.AskRequest) (*domain.Answer, error) {
	logger.Section("Ask")
	logger.Debug("question: %q", req.Question)

	caller := req.UserID
	if caller == "" {
		caller = defaultCaller
	}
	if ok, wait := a.limits.allow(caller); !ok {
		logger.Warn("ask: caller %s rate limited for %s", caller, wait)
		return nil, &domain.RateLimitError{RetryAfter: wait}
	}

	bundle, err := a.assembler.Assemble(ctx, req.Question, req.ContextDocs, req.MaxContextLength)
	if err != nil {
		return nil, fmt.Errorf("assemble context: %w", err)
	}

	if bundle.Empty() {
		logger.Debug("ask: no documents contributed context")
		return &domain.Answer{
			Question:   req.Question,
			Answer:     domain.NoRelevantDocsAnswer,
			Sources:    []string{},
			Confidence: domain.ConfidenceLow,
		}, nil
	}

	full := bundle.Render()

	if a.generator == nil {
		return &domain.Answer{
			Question:      req.Question,
			Context:       displayContext(full),
			Sources:       bundle.Sources,
			ContextLength: bundle.TotalLength,
			Note:          systemNote,
		}, nil
	}

	text, err := a.generator.GenerateAnswer(ctx, req.Question, full)
	if err != nil {
		// Deliberate fallback, not a retry: the caller still gets the
		// context it would have needed, plus the error detail.
		logger.Warn("ask: delegation failed: %v", err)
		return &domain.Answer{
			Question:      req.Question,
			Context:       displayContext(full),
			Sources:       bundle.Sources,
			ContextLength: bundle.TotalLength,
			Err:           err.Error(),
		}, nil
	}

	logger.Info("ask: answered by %s from %d sources", a.generator.ModelName(), len(bundle.Sources))
	return &domain.Answer{
		Question:      req.Question,
		Answer:        text,
		Sources:       bundle.Sources,
		ContextLength: bundle.TotalLength,
		Model:         a.generator.ModelName(),
		Confidence:    domain.ConfidenceHigh,
	}, nil
}

// displayContext caps the context echoed in fallback responses.
func displayContext(s string) string {
	if len(s) > domain.DisplayContextLimit {
		return truncateToMarker(s, domain.DisplayContextLimit)
	}
	return s
}
