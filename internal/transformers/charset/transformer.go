// Package charset provides CharsetTransformer, which re-encodes document
// content to UTF-8.
//
// The source charset is the configured one if set, otherwise it is detected
// from the declared content type, encoding and the first bytes of content.
package charset

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-importer/internal/handler"
	"github.com/custodia-labs/sercha-importer/internal/restrict"
)

// Type is the configuration type name.
const Type = "CharsetTransformer"

// Ensure Transformer implements the interface.
var _ driven.DocumentTransformer = (*Transformer)(nil)

// Transformer converts content to UTF-8.
type Transformer struct {
	*handler.Transformer
	source string
}

// New creates a transformer. An empty source detects the charset.
func New(name string, restrictTo *restrict.RuleSet, source string) *Transformer {
	if name == "" {
		name = Type
	}
	t := &Transformer{source: source}
	t.Transformer = handler.NewTransformer(name, restrictTo, t.transform)
	return t
}

// FromConfig builds a transformer from a handler configuration.
func FromConfig(cfg domain.HandlerConfig) (*Transformer, error) {
	rules, err := restrict.FromConfig(cfg.RestrictTo)
	if err != nil {
		return nil, err
	}
	return New(cfg.DisplayName(), rules, cfg.Charset), nil
}

func (t *Transformer) transform(_ context.Context, doc *domain.HandlerDoc, out io.Writer, state domain.ParseState) error {
	r, err := handler.OpenText(doc, t.source, state)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		return fmt.Errorf("convert to %s: %w", handler.UTF8, err)
	}
	if doc.Metadata != nil {
		doc.Metadata.Set(domain.FieldContentEncoding, handler.UTF8)
	}
	return nil
}
