package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driving"
)

// Verify interface compliance.
var _ driving.ResultService = (*ResultService)(nil)

// ResultService reads import results from a result store.
type ResultService struct {
	store driven.ResultStore
}

// NewResultService creates a result service.
func NewResultService(store driven.ResultStore) *ResultService {
	return &ResultService{store: store}
}

// Get returns one result by ID.
func (s *ResultService) Get(ctx context.Context, id string) (*domain.ImportResult, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty result id", domain.ErrInvalidInput)
	}
	return s.store.Get(ctx, id)
}

// List returns results matching q. A negative limit is rejected.
func (s *ResultService) List(ctx context.Context, q domain.ResultQuery) ([]*domain.ImportResult, error) {
	if q.Limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", domain.ErrInvalidInput, q.Limit)
	}
	return s.store.List(ctx, q)
}
