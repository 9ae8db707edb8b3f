package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

// DocumentFilter accepts or rejects documents.
// A filter that does not apply to a document, or whose criterion does not
// fire, accepts it.
type DocumentFilter interface {
	// Name identifies the filter in logs and errors.
	Name() string

	// AcceptDocument reports whether the document continues down the chain.
	AcceptDocument(ctx context.Context, doc *domain.HandlerDoc, state domain.ParseState) (bool, error)
}

// DocumentTagger adds metadata to documents.
type DocumentTagger interface {
	// Name identifies the tagger in logs and errors.
	Name() string

	// TagDocument writes into doc.Metadata. Content is read at most once.
	TagDocument(ctx context.Context, doc *domain.HandlerDoc, state domain.ParseState) error
}

// DocumentTransformer rewrites document content.
type DocumentTransformer interface {
	// Name identifies the transformer in logs and errors.
	Name() string

	// TransformDocument writes the new content to out and reports whether
	// it engaged. When it did not, out is left untouched and the original
	// content stands.
	TransformDocument(ctx context.Context, doc *domain.HandlerDoc, out io.Writer, state domain.ParseState) (bool, error)
}

// Handler is any element of the import chain. Concrete handlers also
// implement exactly one of DocumentFilter, DocumentTagger or
// DocumentTransformer.
type Handler interface {
	Name() string
}
