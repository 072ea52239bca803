package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docserve/internal/core/domain"
	"github.com/custodia-labs/docserve/internal/core/ports/driving"
)

// ListInput is the input schema for the list_docs tool.
type ListInput struct {
	Directory string `json:"directory,omitempty" jsonschema:"subdirectory to list, relative to the documentation root (default: entire root)"`
}

// ListOutput is the output schema for the list_docs tool.
type ListOutput struct {
	Documents []DocumentOutput `json:"documents"`
	Count     int              `json:"count"`
}

// DocumentOutput represents a single document's metadata.
type DocumentOutput struct {
	Title    string `json:"title"`
	Path     string `json:"path"`
	Modified string `json:"modified"`
	Size     int64  `json:"size"`
	Hash     string `json:"hash"`
}

// SearchInput is the input schema for the search_docs tool.
type SearchInput struct {
	Query         string `json:"query" jsonschema:"the keyword or phrase to search for"`
	MaxResults    int    `json:"max_results,omitempty" jsonschema:"maximum number of results to return (default 5)"`
	SearchContent *bool  `json:"search_content,omitempty" jsonschema:"whether to match document bodies (default true)"`
	SearchTitles  *bool  `json:"search_titles,omitempty" jsonschema:"whether to match document titles (default true)"`
}

// SearchOutput is the output schema for the search_docs tool.
type SearchOutput struct {
	Query   string               `json:"query"`
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Title   string `json:"title"`
	Path    string `json:"path"`
	Score   int    `json:"score"`
	Snippet string `json:"snippet,omitempty"`
}

// AskInput is the input schema for the ask_docs tool.
type AskInput struct {
	Question         string   `json:"question" jsonschema:"the question to answer from the documentation"`
	ContextDocs      []string `json:"context_docs,omitempty" jsonschema:"document paths to use as context (default: top search results for the question)"`
	MaxContextLength int      `json:"max_context_length,omitempty" jsonschema:"maximum total characters of document content to assemble (default 4000)"`
	UserID           string   `json:"user_id,omitempty" jsonschema:"caller identity for rate limiting"`
}

// AskOutput is the output schema for the ask_docs tool.
type AskOutput struct {
	Question      string   `json:"question,omitempty"`
	Answer        string   `json:"answer,omitempty"`
	Context       string   `json:"context,omitempty"`
	Sources       []string `json:"sources,omitempty"`
	ContextLength int      `json:"context_length,omitempty"`
	Model         string   `json:"model,omitempty"`
	Confidence    string   `json:"confidence,omitempty"`
	Note          string   `json:"note,omitempty"`
	Err           string   `json:"error,omitempty"`

	// Rate limit fields.
	ResetInSeconds int    `json:"reset_in_seconds,omitempty"`
	Message        string `json:"message,omitempty"`
}

// IndexInput is the input schema for the index_docs tool.
type IndexInput struct {
	Rebuild bool `json:"rebuild,omitempty" jsonschema:"discard cached metadata before scanning"`
}

// IndexOutput is the output schema for the index_docs tool.
type IndexOutput struct {
	RunID        string             `json:"run_id"`
	FilesIndexed int                `json:"files_indexed"`
	TotalSize    int64              `json:"total_size"`
	Errors       []IndexErrorOutput `json:"errors"`
	Timestamp    string             `json:"timestamp"`
}

// IndexErrorOutput records a per-file indexing failure.
type IndexErrorOutput struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// AnalyzeInput is the input schema for the analyze_docs tool.
type AnalyzeInput struct {
	Task         string   `json:"task" jsonschema:"analysis task: find_gaps, generate_outline, check_consistency, extract_examples, identify_prerequisites, or suggest_improvements"`
	Docs         []string `json:"docs,omitempty" jsonschema:"document paths to analyze (default: all documents)"`
	OutputFormat string   `json:"output_format,omitempty" jsonschema:"desired output format (default summary)"`
}

// AnalyzeOutput is the output schema for the analyze_docs tool.
type AnalyzeOutput struct {
	Task              string   `json:"task,omitempty"`
	DocumentsAnalyzed int      `json:"documents_analyzed,omitempty"`
	OutputFormat      string   `json:"output_format,omitempty"`
	Summary           string   `json:"summary,omitempty"`
	Documents         []string `json:"documents,omitempty"`
	NextSteps         []string `json:"next_steps,omitempty"`
	HandoffReady      bool     `json:"handoff_ready,omitempty"`
	SuggestedModel    string   `json:"suggested_model,omitempty"`

	// Unknown task fields.
	Err            string   `json:"error,omitempty"`
	AvailableTasks []string `json:"available_tasks,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_docs",
		Description: "List all markdown documents in the documentation library",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_docs",
		Description: "Search documentation by keyword across titles and content",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_docs",
		Description: "Answer a question using the documentation as context",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "index_docs",
		Description: "Scan the documentation library and refresh its metadata index",
	}, s.handleIndex)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_docs",
		Description: "Prepare a documentation analysis task for a specialized agent",
	}, s.handleAnalyze)
}

// handleList handles the list_docs tool invocation.
func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	docs, err := s.ports.Library.List(ctx, input.Directory)
	if err != nil {
		return nil, ListOutput{}, err
	}

	output := ListOutput{
		Documents: make([]DocumentOutput, len(docs)),
		Count:     len(docs),
	}
	for i := range docs {
		output.Documents[i] = DocumentOutput{
			Title:    docs[i].Title,
			Path:     docs[i].Path,
			Modified: docs[i].Modified.Format(time.RFC3339),
			Size:     docs[i].Size,
			Hash:     docs[i].Hash,
		}
	}

	return nil, output, nil
}

// handleSearch handles the search_docs tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.DefaultSearchOptions()
	if input.MaxResults > 0 {
		opts.MaxResults = input.MaxResults
	}
	if input.SearchContent != nil {
		opts.SearchContent = *input.SearchContent
	}
	if input.SearchTitles != nil {
		opts.SearchTitles = *input.SearchTitles
	}

	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Query:   input.Query,
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			Title:   results[i].Document.Title,
			Path:    results[i].Document.Path,
			Score:   results[i].Score,
			Snippet: results[i].Snippet,
		}
	}

	return nil, output, nil
}

// handleAsk handles the ask_docs tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Ask.Ask(ctx, driving.AskRequest{
		Question:         input.Question,
		ContextDocs:      input.ContextDocs,
		MaxContextLength: input.MaxContextLength,
		UserID:           input.UserID,
	})
	if err != nil {
		// Rate limiting is a payload, not a protocol error, so clients
		// can surface the retry hint.
		var rle *domain.RateLimitError
		if errors.As(err, &rle) {
			return nil, AskOutput{
				Err:            "Rate limit exceeded",
				ResetInSeconds: rle.ResetSeconds(),
				Message:        "Please wait before making more requests",
			}, nil
		}
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{
		Question:      answer.Question,
		Answer:        answer.Answer,
		Context:       answer.Context,
		Sources:       answer.Sources,
		ContextLength: answer.ContextLength,
		Model:         answer.Model,
		Confidence:    answer.Confidence,
		Note:          answer.Note,
		Err:           answer.Err,
	}, nil
}

// handleIndex handles the index_docs tool invocation.
func (s *Server) handleIndex(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IndexInput,
) (*mcp.CallToolResult, IndexOutput, error) {
	stats, err := s.ports.Index.Reindex(ctx, input.Rebuild)
	if err != nil {
		return nil, IndexOutput{}, err
	}

	output := IndexOutput{
		RunID:        stats.RunID,
		FilesIndexed: stats.FilesIndexed,
		TotalSize:    stats.TotalSize,
		Errors:       make([]IndexErrorOutput, len(stats.Errors)),
		Timestamp:    stats.Timestamp.Format(time.RFC3339),
	}
	for i, e := range stats.Errors {
		output.Errors[i] = IndexErrorOutput{File: e.File, Error: e.Error}
	}

	return nil, output, nil
}

// handleAnalyze handles the analyze_docs tool invocation.
func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	report, err := s.ports.Analysis.Analyze(ctx, input.Task, input.Docs, input.OutputFormat)
	if err != nil {
		// An unknown task names the valid ones in the payload.
		var ute *domain.UnknownTaskError
		if errors.As(err, &ute) {
			return nil, AnalyzeOutput{
				Err:            ute.Error(),
				AvailableTasks: ute.Available,
			}, nil
		}
		return nil, AnalyzeOutput{}, err
	}

	return nil, AnalyzeOutput{
		Task:              report.Task,
		DocumentsAnalyzed: report.DocumentsAnalyzed,
		OutputFormat:      report.OutputFormat,
		Summary:           report.Summary,
		Documents:         report.Documents,
		NextSteps:         report.NextSteps,
		HandoffReady:      report.HandoffReady,
		SuggestedModel:    report.SuggestedModel,
	}, nil
}
