package domain

import "time"

// IndexError records one file that could not be indexed.
type IndexError struct {
	// File is the path of the failing file, relative to the root.
	File string

	// Error is the human-readable failure reason.
	Error string
}

// IndexStats summarises one index run. A per-file failure never aborts
// the run; it is recorded in Errors and scanning continues.
type IndexStats struct {
	// RunID uniquely identifies this index run.
	RunID string

	// FilesIndexed is the number of files successfully indexed.
	FilesIndexed int

	// TotalSize is the combined byte size of all indexed files.
	TotalSize int64

	// Errors lists the files that failed, with reasons.
	Errors []IndexError

	// Timestamp is when the run started.
	Timestamp time.Time
}
