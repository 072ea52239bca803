package services

import (
	"context"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/docserve/internal/core/domain"
	"github.com/custodia-labs/docserve/internal/core/ports/driving"
	"github.com/custodia-labs/docserve/internal/logger"
)

// Ensure Search implements the interface.
var _ driving.SearchService = (*Search)(nil)

// Search scans the documentation root linearly on every call. There is
// no incremental index; the metadata cache only saves per-file stat and
// title work between calls.
type Search struct {
	library *Library
}

// NewSearch creates a search service over library.
func NewSearch(library *Library) *Search {
	return &Search{library: library}
}

// Search scores every markdown file under the root against query and
// returns the top results, ordered by descending score with ascending
// path order breaking ties. An empty or whitespace query returns no
// results. Files that cannot be read lose only their content bonus.
func (s *Search) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	logger.Section("Search")
	logger.Debug("query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("empty query, returning no results")
		return []domain.SearchResult{}, nil
	}
	queryLower := strings.ToLower(query)

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = domain.DefaultMaxResults
	}

	outcomes := s.library.ScanMarkdown(s.library.Root())
	results := make([]domain.SearchResult, 0, len(outcomes))

	for _, o := range outcomes {
		if o.Err != nil {
			logger.Debug("search: skipping %s: %v", o.RelPath, o.Err)
			continue
		}

		info, err := s.library.Cache().Metadata(o.AbsPath, o.RelPath)
		if err != nil {
			logger.Debug("search: skipping %s: %v", o.RelPath, err)
			continue
		}

		score := 0
		if opts.SearchTitles && strings.Contains(strings.ToLower(info.Title), queryLower) {
			score += domain.TitleMatchScore
		}

		snippet := ""
		if opts.SearchContent {
			occurrences, snip := scoreContent(o.AbsPath, queryLower)
			if occurrences > domain.ContentScoreCap {
				occurrences = domain.ContentScoreCap
			}
			score += occurrences
			snippet = snip
		}

		if score > 0 {
			results = append(results, domain.SearchResult{
				Document: info,
				Score:    score,
				Snippet:  snippet,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Document.Path < results[j].Document.Path
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}

	logger.Debug("search: %d results", len(results))
	return results, nil
}

// scoreContent counts query occurrences in the file at absPath and
// extracts a snippet around the first one. A read failure yields zero
// occurrences; the document can still rank on its title.
func scoreContent(absPath, queryLower string) (int, string) {
	raw, err := os.ReadFile(absPath)
	if err != nil {
		logger.Debug("search: content unreadable for %s: %v", absPath, err)
		return 0, ""
	}

	content := string(raw)
	lower := strings.ToLower(content)

	occurrences := strings.Count(lower, queryLower)
	if occurrences == 0 {
		return 0, ""
	}

	// The match offset is found in the lowered copy, whose byte layout
	// can differ from the original (some runes grow when lowered), so
	// it must be mapped back before slicing the original content.
	idx := alignIndex(content, strings.Index(lower, queryLower))
	return occurrences, extractSnippet(content, idx)
}

// alignIndex maps a byte offset in strings.ToLower(content) back to the
// offset of the corresponding rune in content.
func alignIndex(content string, lowerIdx int) int {
	lowered := 0
	for i, r := range content {
		if lowered >= lowerIdx {
			return i
		}
		lowered += utf8.RuneLen(unicode.ToLower(r))
	}
	return len(content)
}

// extractSnippet returns a window of SnippetRadius characters on either
// side of idx, with ellipsis markers on edges that were cut. The window
// is clamped to the content and widened to rune boundaries so the
// snippet is always valid UTF-8.
func extractSnippet(content string, idx int) string {
	start := idx - domain.SnippetRadius
	if start < 0 {
		start = 0
	}
	end := idx + domain.SnippetRadius
	if end > len(content) {
		end = len(content)
	}
	for start > 0 && !utf8.RuneStart(content[start]) {
		start--
	}
	for end < len(content) && !utf8.RuneStart(content[end]) {
		end++
	}

	snippet := content[start:end]
	if start > 0 {
		snippet = domain.TruncationMarker + snippet
	}
	if end < len(content) {
		snippet += domain.TruncationMarker
	}
	return snippet
}
