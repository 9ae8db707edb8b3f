package driven

import (
	"context"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

// ResultStore persists import results.
type ResultStore interface {
	// Save stores a result, replacing any result with the same ID.
	Save(ctx context.Context, result *domain.ImportResult) error

	// Get retrieves a result by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.ImportResult, error)

	// List returns results matching q, newest first.
	List(ctx context.Context, q domain.ResultQuery) ([]*domain.ImportResult, error)

	// Close releases the underlying storage.
	Close() error
}
