package driving

import (
	"context"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

// ImportService runs documents through the configured handler chain.
type ImportService interface {
	// Import processes a single document.
	// Handler failures are returned as *domain.HandlerError.
	Import(ctx context.Context, doc *domain.RawDocument) (*domain.ImportResult, error)

	// ImportAll processes documents concurrently. Results keep the order of
	// docs. A failed document leaves a nil entry and its error is joined
	// into the returned error; other documents are still processed.
	ImportAll(ctx context.Context, docs []*domain.RawDocument) ([]*domain.ImportResult, error)

	// Handlers returns the names of the configured handlers in chain order.
	Handlers() []string
}
