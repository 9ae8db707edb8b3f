// Package content provides RegexContentFilter, which accepts or rejects
// documents whose content matches regular expressions.
package content

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-importer/internal/extract"
	"github.com/custodia-labs/sercha-importer/internal/handler"
	"github.com/custodia-labs/sercha-importer/internal/restrict"
)

// Type is the configuration type name.
const Type = "RegexContentFilter"

// Ensure Filter implements the interface.
var _ driven.DocumentFilter = (*Filter)(nil)

// Config holds the filter settings.
type Config struct {
	Name          string
	RestrictTo    *restrict.RuleSet
	OnMatch       domain.OnMatch
	Patterns      []string
	CaseSensitive bool
	MaxReadSize   int
	Charset       string
	Options       []extract.Option
}

// Filter fires when any pattern occurs in the content.
type Filter struct {
	*handler.Filter
	extractor   *extract.PatternExtractor
	maxReadSize int
	charset     string
}

// New builds a filter.
func New(cfg Config) (*Filter, error) {
	if len(cfg.Patterns) == 0 {
		return nil, fmt.Errorf("%w: %s needs at least one pattern", domain.ErrInvalidConfig, Type)
	}
	name := cfg.Name
	if name == "" {
		name = Type
	}

	ex := extract.NewPatternExtractor(cfg.Options...)
	for _, p := range cfg.Patterns {
		// The field is never written; Matches only tests for a hit.
		if err := ex.AddRule(extract.PatternRule{Field: name, Pattern: p, CaseSensitive: cfg.CaseSensitive}); err != nil {
			return nil, err
		}
	}

	f := &Filter{
		extractor:   ex,
		maxReadSize: cfg.MaxReadSize,
		charset:     cfg.Charset,
	}
	f.Filter = handler.NewFilter(name, cfg.RestrictTo, cfg.OnMatch, f.match)
	return f, nil
}

// FromConfig builds a filter from a handler configuration.
// Each pattern entry contributes its match expression.
func FromConfig(cfg domain.HandlerConfig) (*Filter, error) {
	rules, err := restrict.FromConfig(cfg.RestrictTo)
	if err != nil {
		return nil, err
	}
	onMatch, err := domain.ParseOnMatch(cfg.OnMatch)
	if err != nil {
		return nil, err
	}
	patterns := make([]string, 0, len(cfg.Patterns))
	for _, p := range cfg.Patterns {
		patterns = append(patterns, p.Match)
	}
	return New(Config{
		Name:          cfg.DisplayName(),
		RestrictTo:    rules,
		OnMatch:       onMatch,
		Patterns:      patterns,
		CaseSensitive: cfg.CaseSensitive,
		MaxReadSize:   cfg.MaxReadSize,
		Charset:       cfg.Charset,
	})
}

func (f *Filter) match(_ context.Context, doc *domain.HandlerDoc, state domain.ParseState) (bool, error) {
	r, err := handler.OpenText(doc, f.charset, state)
	if err != nil {
		return false, err
	}
	text, err := extract.ReadBounded(r, f.maxReadSize)
	if err != nil {
		return false, fmt.Errorf("read content: %w", err)
	}
	return f.extractor.Matches(text)
}
