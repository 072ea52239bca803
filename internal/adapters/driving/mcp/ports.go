package mcp

import (
	"github.com/custodia-labs/docserve/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Library lists and reads documents.
	Library driving.LibraryService

	// Search provides keyword search across documents.
	Search driving.SearchService

	// Ask answers questions from assembled documentation context.
	Ask driving.AskService

	// Index rebuilds the metadata index.
	Index driving.IndexService

	// Analysis prepares documentation analysis hand-offs.
	Analysis driving.AnalysisService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Library == nil {
		return ErrMissingLibraryService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Ask == nil {
		return ErrMissingAskService
	}
	if p.Index == nil {
		return ErrMissingIndexService
	}
	if p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	return nil
}
