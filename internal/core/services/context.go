package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/custodia-labs/docserve/internal/core/domain"
	"github.com/custodia-labs/docserve/internal/logger"
)

// searchDerivedDocs is how many search results seed the context when
// the caller names no documents.
const searchDerivedDocs = 3

// Assembler builds bounded context bundles for ask requests.
type Assembler struct {
	library       *Library
	search        *Search
	defaultMaxLen int
}

// NewAssembler creates an assembler over library, using search to
// select documents when the caller names none.
func NewAssembler(library *Library, search *Search) *Assembler {
	return &Assembler{
		library:       library,
		search:        search,
		defaultMaxLen: domain.DefaultMaxContextLength,
	}
}

// SetDefaultMaxLength overrides the budget used when a request does
// not specify one. Non-positive values are ignored.
func (a *Assembler) SetDefaultMaxLength(maxLen int) {
	if maxLen > 0 {
		a.defaultMaxLen = maxLen
	}
}

// Assemble concatenates truncated document bodies into a bundle whose
// total content length never exceeds maxLen. Candidate paths are taken
// from docPaths, or from a search for the question when docPaths is
// empty. A document whose read fails is skipped and consumes no budget.
func (a *Assembler) Assemble(ctx context.Context, question string, docPaths []string, maxLen int) (*domain.ContextBundle, error) {
	if maxLen <= 0 {
		maxLen = a.defaultMaxLen
	}

	if len(docPaths) == 0 {
		results, err := a.search.Search(ctx, question, domain.SearchOptions{
			MaxResults:    searchDerivedDocs,
			SearchContent: true,
			SearchTitles:  true,
		})
		if err != nil {
			return nil, fmt.Errorf("search for context: %w", err)
		}
		for _, r := range results {
			docPaths = append(docPaths, r.Document.Path)
		}
	}

	bundle := &domain.ContextBundle{}
	marker := len(domain.TruncationMarker)

	for _, path := range docPaths {
		remaining := maxLen - bundle.TotalLength
		if remaining <= marker {
			break
		}

		content, err := a.library.Read(ctx, path)
		if err != nil {
			logger.Debug("context: skipping %s: %v", path, err)
			continue
		}

		truncated := false
		if len(content) > remaining {
			content = truncateToMarker(content, remaining-marker)
			truncated = true
		}

		bundle.Sections = append(bundle.Sections, domain.ContextSection{
			Path:      path,
			Content:   content,
			Truncated: truncated,
		})
		bundle.Sources = append(bundle.Sources, path)
		bundle.TotalLength += len(content)
	}

	logger.Debug("context: %d documents, %d characters", len(bundle.Sections), bundle.TotalLength)
	return bundle, nil
}

// truncateToMarker cuts s to at most n bytes plus the truncation
// marker, trimming back to a rune boundary so the result stays valid
// UTF-8.
func truncateToMarker(s string, n int) string {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + domain.TruncationMarker
}
