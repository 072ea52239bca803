package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotFile indicates the requested path is not a regular file.
	ErrNotFile = errors.New("not a file")

	// ErrUnsupportedType indicates a file extension outside the set of
	// servable documentation types.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// UnknownTaskError reports an unrecognised analysis task together with
// the closed set of valid identifiers, so callers can surface the full
// list rather than a bare failure.
type UnknownTaskError struct {
	Task      string
	Available []string
}

func (e *UnknownTaskError) Error() string {
	return fmt.Sprintf("unknown task %q, available tasks: %s", e.Task, strings.Join(e.Available, ", "))
}

// RateLimitError reports that a caller exceeded the ask request budget.
// It carries the wait until the next request would be admitted.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry in %d seconds", e.ResetSeconds())
}

// ResetSeconds is RetryAfter rounded up to whole seconds, never below 1.
func (e *RateLimitError) ResetSeconds() int {
	secs := int((e.RetryAfter + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
