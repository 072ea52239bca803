package mcp

import (
	"context"

	"github.com/custodia-labs/docserve/internal/core/domain"
	"github.com/custodia-labs/docserve/internal/core/ports/driving"
)

// mockLibraryService is a mock implementation of driving.LibraryService.
type mockLibraryService struct {
	docs    []domain.DocumentInfo
	content string
	err     error
}

func (m *mockLibraryService) List(_ context.Context, _ string) ([]domain.DocumentInfo, error) {
	return m.docs, m.err
}

func (m *mockLibraryService) Read(_ context.Context, _ string) (string, error) {
	return m.content, m.err
}

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results  []domain.SearchResult
	err      error
	lastOpts domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.lastOpts = opts
	return m.results, m.err
}

// mockAskService is a mock implementation of driving.AskService.
type mockAskService struct {
	answer  *domain.Answer
	err     error
	lastReq driving.AskRequest
}

func (m *mockAskService) Ask(_ context.Context, req driving.AskRequest) (*domain.Answer, error) {
	m.lastReq = req
	return m.answer, m.err
}

// mockIndexService is a mock implementation of driving.IndexService.
type mockIndexService struct {
	stats *domain.IndexStats
	err   error
}

func (m *mockIndexService) Reindex(_ context.Context, _ bool) (*domain.IndexStats, error) {
	return m.stats, m.err
}

// mockAnalysisService is a mock implementation of driving.AnalysisService.
type mockAnalysisService struct {
	report *domain.AnalysisReport
	err    error
}

func (m *mockAnalysisService) Analyze(
	_ context.Context,
	_ string,
	_ []string,
	_ string,
) (*domain.AnalysisReport, error) {
	return m.report, m.err
}

// testPorts returns a Ports with every service mocked, so Validate passes.
func testPorts() *Ports {
	return &Ports{
		Library:  &mockLibraryService{},
		Search:   &mockSearchService{},
		Ask:      &mockAskService{},
		Index:    &mockIndexService{},
		Analysis: &mockAnalysisService{},
	}
}
