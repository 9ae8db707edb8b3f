package handler

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/restrict"
)

// TagFunc adds metadata to doc.
type TagFunc func(ctx context.Context, doc *domain.HandlerDoc, state domain.ParseState) error

// Tagger enriches document metadata.
type Tagger struct {
	Gate
	tag TagFunc
}

// NewTagger creates a tagger around tag.
func NewTagger(name string, rules *restrict.RuleSet, tag TagFunc) *Tagger {
	return &Tagger{Gate: NewGate(name, rules), tag: tag}
}

// TagDocument runs the tagger. It does nothing for inapplicable documents.
// Metadata written before a failure is kept. A document without a
// metadata store is rejected with ErrInvalidInput.
func (t *Tagger) TagDocument(ctx context.Context, doc *domain.HandlerDoc, state domain.ParseState) error {
	if doc == nil || doc.Metadata == nil {
		return domain.NewHandlerError(t.Name(), reference(doc),
			fmt.Errorf("%w: document has no metadata", domain.ErrInvalidInput))
	}
	if !t.IsApplicable(doc, state) {
		return nil
	}
	if err := t.tag(ctx, doc, state); err != nil {
		return domain.NewHandlerError(t.Name(), reference(doc), err)
	}
	return nil
}
