package handler

import (
	"context"
	"io"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/restrict"
)

// TransformFunc writes transformed content of doc to out.
type TransformFunc func(ctx context.Context, doc *domain.HandlerDoc, out io.Writer, state domain.ParseState) error

// Transformer rewrites document content.
type Transformer struct {
	Gate
	transform TransformFunc
}

// NewTransformer creates a transformer around transform.
func NewTransformer(name string, rules *restrict.RuleSet, transform TransformFunc) *Transformer {
	return &Transformer{Gate: NewGate(name, rules), transform: transform}
}

// TransformDocument runs the transformer and reports whether it engaged.
// Nothing is written to out for inapplicable documents.
func (t *Transformer) TransformDocument(ctx context.Context, doc *domain.HandlerDoc, out io.Writer, state domain.ParseState) (bool, error) {
	if !t.IsApplicable(doc, state) {
		return false, nil
	}
	if err := t.transform(ctx, doc, out, state); err != nil {
		return true, domain.NewHandlerError(t.Name(), reference(doc), err)
	}
	return true, nil
}
