package mcp

import (
	"context"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

// mockImportService is a mock implementation of driving.ImportService.
type mockImportService struct {
	result   *domain.ImportResult
	err      error
	handlers []string
	got      *domain.RawDocument
}

func (m *mockImportService) Import(_ context.Context, doc *domain.RawDocument) (*domain.ImportResult, error) {
	m.got = doc
	return m.result, m.err
}

func (m *mockImportService) ImportAll(
	ctx context.Context,
	docs []*domain.RawDocument,
) ([]*domain.ImportResult, error) {
	results := make([]*domain.ImportResult, len(docs))
	for i, d := range docs {
		res, err := m.Import(ctx, d)
		if err != nil {
			return nil, err
		}
		results[i] = res
	}
	return results, nil
}

func (m *mockImportService) Handlers() []string {
	return m.handlers
}

// mockResultService is a mock implementation of driving.ResultService.
type mockResultService struct {
	results []*domain.ImportResult
	query   domain.ResultQuery
}

func (m *mockResultService) Get(_ context.Context, id string) (*domain.ImportResult, error) {
	for _, r := range m.results {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockResultService) List(_ context.Context, q domain.ResultQuery) ([]*domain.ImportResult, error) {
	m.query = q
	return m.results, nil
}
