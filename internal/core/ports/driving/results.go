package driving

import (
	"context"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

// ResultService reads recorded import results.
type ResultService interface {
	// Get returns one result by ID.
	Get(ctx context.Context, id string) (*domain.ImportResult, error)

	// List returns results matching q, newest first.
	List(ctx context.Context, q domain.ResultQuery) ([]*domain.ImportResult, error)
}
