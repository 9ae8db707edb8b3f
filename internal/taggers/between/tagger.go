// Package between provides TextBetweenTagger, which copies the text found
// between start and end expressions into metadata fields.
package between

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
const Type = "TextBetweenTagger"

// Ensure Tagger implements the interface.
var _ driven.DocumentTagger = (*Tagger)(nil)

// Config holds the tagger settings.
type Config struct {
	Name          string
	RestrictTo    *restrict.RuleSet
	Endpoints     []extract.EndpointRule
	Inclusive     bool
	CaseSensitive bool
	MaxReadSize   int
	Charset       string
	Options       []extract.Option
}

// Tagger extracts delimited text from document content.
type Tagger struct {
	*handler.Tagger
	extractor   *extract.BetweenExtractor
	maxReadSize int
	charset     string
}

// New builds a tagger. Every endpoint expression is compiled here.
func New(cfg Config) (*Tagger, error) {
	if len(cfg.Endpoints) == 0 {
		return nil, fmt.Errorf("%w: %s needs at least one endpoint pair", domain.ErrInvalidConfig, Type)
	}
	ex := extract.NewBetweenExtractor(cfg.Options...)
	ex.Inclusive = cfg.Inclusive
	ex.CaseSensitive = cfg.CaseSensitive
	for _, ep := range cfg.Endpoints {
		if err := ex.AddTextEndpoints(ep.Field, ep.Start, ep.End); err != nil {
			return nil, err
		}
	}

	name := cfg.Name
	if name == "" {
		name = Type
	}
	t := &Tagger{
		extractor:   ex,
		maxReadSize: cfg.MaxReadSize,
		charset:     cfg.Charset,
	}
	t.Tagger = handler.NewTagger(name, cfg.RestrictTo, t.tag)
	return t, nil
}

// FromConfig builds a tagger from a handler configuration.
func FromConfig(cfg domain.HandlerConfig) (*Tagger, error) {
	rules, err := restrict.FromConfig(cfg.RestrictTo)
	if err != nil {
		return nil, err
	}
	endpoints := make([]extract.EndpointRule, 0, len(cfg.Endpoints))
	for _, ep := range cfg.Endpoints {
		endpoints = append(endpoints, extract.EndpointRule{Field: ep.Field, Start: ep.Start, End: ep.End})
	}
	return New(Config{
		Name:          cfg.DisplayName(),
		RestrictTo:    rules,
		Endpoints:     endpoints,
		Inclusive:     cfg.Inclusive,
		CaseSensitive: cfg.CaseSensitive,
		MaxReadSize:   cfg.MaxReadSize,
		Charset:       cfg.Charset,
	})
}

// Endpoints returns the configured rules.
func (t *Tagger) Endpoints() []extract.EndpointRule {
	return t.extractor.Rules()
}

func (t *Tagger) tag(_ context.Context, doc *domain.HandlerDoc, state domain.ParseState) error {
	r, err := handler.OpenText(doc, t.charset, state)
	if err != nil {
		return err
	}
	content, err := extract.ReadBounded(r, t.maxReadSize)
	if err != nil {
		return fmt.Errorf("read content: %w", err)
	}
	return t.extractor.Extract(content, doc.Metadata)
}
