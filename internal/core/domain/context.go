package domain

import (
	"fmt"
	"strings"
)

// TruncationMarker is appended wherever document content is cut short.
const TruncationMarker = "..."

// DefaultMaxContextLength is the character budget for assembled context
// when the caller does not specify one.
const DefaultMaxContextLength = 4000

// ContextSection is a single document's contribution to an assembled
// context bundle.
type ContextSection struct {
	// Path is the contributing document's path relative to the root.
	Path string

	// Content is the (possibly truncated) document content.
	Content string

	// Truncated reports whether Content was cut to fit the budget.
	Truncated bool
}

// ContextBundle is an ordered collection of document excerpts assembled
// under a cumulative character budget for an ask request.
// TotalLength never exceeds the budget it was assembled under.
type ContextBundle struct {
	Sections []ContextSection

	// Sources lists the paths of all contributing documents, in order.
	Sources []string

	// TotalLength is the combined length of all section contents.
	TotalLength int
}

// Empty reports whether no document contributed any content.
func (b *ContextBundle) Empty() bool {
	return len(b.Sections) == 0
}

// Render joins all sections into a single prompt-ready string, each
// section delimited by a header naming its source document.
func (b *ContextBundle) Render() string {
	parts := make([]string, len(b.Sections))
	for i, sec := range b.Sections {
		parts[i] = fmt.Sprintf("--- %s ---\n%s", sec.Path, sec.Content)
	}
	return strings.Join(parts, "\n\n")
}
