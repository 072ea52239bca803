package domain

import "time"

// DocumentInfo holds derived, cacheable facts about a documentation file.
// It is the canonical metadata record for listing, search, and indexing.
type DocumentInfo struct {
	// Title is the human-readable title, taken from the first H1 heading
	// or derived from the filename when no heading exists.
	Title string

	// Path is the location relative to the docs root, slash-separated.
	Path string

	// Modified is the last modification time of the underlying file.
	Modified time.Time

	// Size is the file size in bytes.
	Size int64

	// Hash is the hex-encoded MD5 of the raw file bytes, used for
	// change detection between index runs.
	Hash string
}
