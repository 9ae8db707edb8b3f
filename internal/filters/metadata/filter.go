// Package metadata provides MetadataFilter, which accepts or rejects
// documents based on their metadata values.
package metadata

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-importer/internal/handler"
	"github.com/custodia-labs/sercha-importer/internal/restrict"
)

// Type is the configuration type name.
const Type = "MetadataFilter"

// Ensure Filter implements the interface.
var _ driven.DocumentFilter = (*Filter)(nil)

// Filter fires when its criteria match the document metadata.
// Criteria are separate from the restrictions deciding applicability.
type Filter struct {
	*handler.Filter
	criteria *restrict.RuleSet
}

// New builds a filter. Criteria must not be empty.
func New(name string, restrictTo, criteria *restrict.RuleSet, onMatch domain.OnMatch) (*Filter, error) {
	if criteria.IsEmpty() {
		return nil, fmt.Errorf("%w: %s needs at least one criterion", domain.ErrInvalidConfig, Type)
	}
	if name == "" {
		name = Type
	}
	f := &Filter{criteria: criteria}
	f.Filter = handler.NewFilter(name, restrictTo, onMatch, f.match)
	return f, nil
}

// FromConfig builds a filter from a handler configuration.
func FromConfig(cfg domain.HandlerConfig) (*Filter, error) {
	restrictTo, err := restrict.FromConfig(cfg.RestrictTo)
	if err != nil {
		return nil, err
	}
	criteria, err := restrict.FromConfig(cfg.Criteria)
	if err != nil {
		return nil, fmt.Errorf("criteria: %w", err)
	}
	onMatch, err := domain.ParseOnMatch(cfg.OnMatch)
	if err != nil {
		return nil, err
	}
	return New(cfg.DisplayName(), restrictTo, criteria, onMatch)
}

// Criteria returns the filter criteria.
func (f *Filter) Criteria() *restrict.RuleSet {
	return f.criteria
}

func (f *Filter) match(_ context.Context, doc *domain.HandlerDoc, _ domain.ParseState) (bool, error) {
	return f.criteria.Matches(doc.Metadata), nil
}
