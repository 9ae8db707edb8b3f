package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-importer/internal/logger"
)

// Ensure Importer implements the interface.
var _ driving.ImportService = (*Importer)(nil)

// DefaultWorkers bounds ImportAll when no worker count is configured.
const DefaultWorkers = 4

// Importer runs documents through a fixed chain of handlers.
//
// The chain is immutable once built, so one Importer may process many
// documents concurrently. Each document gets its own metadata and content
// buffer.
type Importer struct {
	handlers []driven.Handler
	workers  int
	store    driven.ResultStore
}

// NewImporter creates an importer. Every handler must be a filter, tagger
// or transformer. workers <= 0 uses DefaultWorkers.
func NewImporter(handlers []driven.Handler, workers int) (*Importer, error) {
	for i, h := range handlers {
		switch h.(type) {
		case driven.DocumentFilter, driven.DocumentTagger, driven.DocumentTransformer:
		default:
			return nil, fmt.Errorf("%w: handler %d (%T) is not a filter, tagger or transformer",
				domain.ErrUnsupportedType, i, h)
		}
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Importer{
		handlers: append([]driven.Handler(nil), handlers...),
		workers:  workers,
	}, nil
}

// Handlers returns the handler names in chain order.
func (i *Importer) Handlers() []string {
	names := make([]string, len(i.handlers))
	for n, h := range i.handlers {
		names[n] = h.Name()
	}
	return names
}

// WithStore records every import result in store.
func (i *Importer) WithStore(store driven.ResultStore) *Importer {
	i.store = store
	return i
}

// Import runs one document through the chain.
//
// Filters are combined with AND: the first rejection stops the chain and is
// reported in the result. Transformer output replaces the content seen by
// later handlers. A handler error stops the document; metadata written
// before it is kept.
func (i *Importer) Import(ctx context.Context, raw *domain.RawDocument) (*domain.ImportResult, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: nil document", domain.ErrInvalidInput)
	}

	meta := raw.Metadata
	if meta == nil {
		meta = domain.NewMetadata()
	}
	meta.Set(domain.FieldReference, raw.Reference)
	if raw.ContentType != "" && !meta.Has(domain.FieldContentType) {
		meta.Set(domain.FieldContentType, raw.ContentType)
	}
	if raw.ContentEncoding != "" && !meta.Has(domain.FieldContentEncoding) {
		meta.Set(domain.FieldContentEncoding, raw.ContentEncoding)
	}

	result := &domain.ImportResult{
		ID:        uuid.New().String(),
		Reference: raw.Reference,
		Accepted:  true,
		Metadata:  meta,
	}
	content := raw.Content

	logger.Debug("importing %s (%d bytes, parse state %s)", raw.Reference, len(content), raw.ParseState)

	for _, h := range i.handlers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		contentType, _ := meta.Get(domain.FieldContentType)
		contentEncoding, _ := meta.Get(domain.FieldContentEncoding)
		doc := &domain.HandlerDoc{
			Reference:       raw.Reference,
			Content:         bytes.NewReader(content),
			Metadata:        meta,
			ContentType:     contentType,
			ContentEncoding: contentEncoding,
		}

		switch h := h.(type) {
		case driven.DocumentFilter:
			ok, err := h.AcceptDocument(ctx, doc, raw.ParseState)
			if err != nil {
				return nil, err
			}
			if !ok {
				logger.Debug("%s: rejected by %s", raw.Reference, h.Name())
				result.Accepted = false
				result.RejectedBy = h.Name()
				result.Content = content
				return i.finish(ctx, result)
			}

		case driven.DocumentTagger:
			if err := h.TagDocument(ctx, doc, raw.ParseState); err != nil {
				return nil, err
			}

		case driven.DocumentTransformer:
			var out bytes.Buffer
			engaged, err := h.TransformDocument(ctx, doc, &out, raw.ParseState)
			if err != nil {
				return nil, err
			}
			if engaged {
				content = out.Bytes()
			}
		}
	}

	result.Content = content
	return i.finish(ctx, result)
}

func (i *Importer) finish(ctx context.Context, result *domain.ImportResult) (*domain.ImportResult, error) {
	result.ImportedAt = time.Now().UTC()
	if i.store == nil {
		return result, nil
	}
	if err := i.store.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("recording %s: %w", result.Reference, err)
	}
	return result, nil
}

// ImportAll imports documents concurrently, bounded by the worker count.
// Results keep the order of docs. A failing document leaves a nil result
// and its error is joined into the returned error.
func (i *Importer) ImportAll(ctx context.Context, docs []*domain.RawDocument) ([]*domain.ImportResult, error) {
	results := make([]*domain.ImportResult, len(docs))
	errs := make([]error, len(docs))

	var g errgroup.Group
	g.SetLimit(i.workers)
	for n, doc := range docs {
		g.Go(func() error {
			res, err := i.Import(ctx, doc)
			if err != nil {
				ref := ""
				if doc != nil {
					ref = doc.Reference
				}
				logger.Warn("import %s failed: %v", ref, err)
				errs[n] = err
				return nil
			}
			results[n] = res
			return nil
		})
	}
	_ = g.Wait()

	return results, errors.Join(errs...)
}
