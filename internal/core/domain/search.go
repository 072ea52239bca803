package domain

// Scoring weights for keyword search.
const (
	// TitleMatchScore is awarded when the query appears in the title.
	// It is deliberately larger than ContentScoreCap so a title match
	// always outranks a content-only match.
	TitleMatchScore = 10

	// ContentScoreCap limits the points a document can earn from
	// content occurrences (one point per occurrence).
	ContentScoreCap = 5

	// SnippetRadius is the number of characters kept on either side of
	// the first content occurrence when extracting a snippet.
	SnippetRadius = 100

	// DefaultMaxResults is the result limit when none is requested.
	DefaultMaxResults = 5
)

// SearchOptions configures a keyword search.
type SearchOptions struct {
	// MaxResults is the maximum number of results (default 5).
	MaxResults int

	// SearchContent enables content occurrence scoring and snippets.
	SearchContent bool

	// SearchTitles enables the title match bonus.
	SearchTitles bool
}

// DefaultSearchOptions returns the options used when the caller
// specifies nothing: top 5 results, titles and content both searched.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		MaxResults:    DefaultMaxResults,
		SearchContent: true,
		SearchTitles:  true,
	}
}

// SearchResult is a document metadata record augmented with a relevance
// score and an optional snippet around the first content match.
type SearchResult struct {
	// Document is the matched document's metadata.
	Document DocumentInfo

	// Score is the combined title and content relevance score.
	// A result with score 0 is never returned.
	Score int

	// Snippet is a text window around the first content occurrence,
	// empty when content search was disabled or nothing matched.
	Snippet string
}
