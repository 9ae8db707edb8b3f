package driven

import (
	"context"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

// DocumentSource loads raw documents for import.
type DocumentSource interface {
	// Read loads a single document by reference.
	Read(ctx context.Context, reference string) (*domain.RawDocument, error)

	// List loads every document under the source root.
	List(ctx context.Context) ([]*domain.RawDocument, error)

	// Watch reports document changes until ctx is cancelled.
	Watch(ctx context.Context) (<-chan domain.Change, error)

	// Close releases watch resources.
	Close() error
}
