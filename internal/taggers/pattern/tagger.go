// Package pattern provides TextPatternTagger, which copies text matching
// regular expressions into metadata fields.
package pattern

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
const Type = "TextPatternTagger"

// Ensure Tagger implements the interface.
var _ driven.DocumentTagger = (*Tagger)(nil)

// Config holds the tagger settings.
type Config struct {
	Name        string
	RestrictTo  *restrict.RuleSet
	Patterns    []extract.PatternRule
	MaxReadSize int
	Charset     string
	Options     []extract.Option
}

// Tagger extracts pattern matches from document content.
type Tagger struct {
	*handler.Tagger
	extractor   *extract.PatternExtractor
	maxReadSize int
	charset     string
}

// New builds a tagger. Every pattern is compiled here.
func New(cfg Config) (*Tagger, error) {
	if len(cfg.Patterns) == 0 {
		return nil, fmt.Errorf("%w: %s needs at least one pattern", domain.ErrInvalidConfig, Type)
	}
	ex := extract.NewPatternExtractor(cfg.Options...)
	for _, p := range cfg.Patterns {
		if err := ex.AddRule(p); err != nil {
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
	patterns := make([]extract.PatternRule, 0, len(cfg.Patterns))
	for _, p := range cfg.Patterns {
		patterns = append(patterns, extract.PatternRuleFromConfig(p))
	}
	return New(Config{
		Name:        cfg.DisplayName(),
		RestrictTo:  rules,
		Patterns:    patterns,
		MaxReadSize: cfg.MaxReadSize,
		Charset:     cfg.Charset,
	})
}

// Patterns returns the configured rules.
func (t *Tagger) Patterns() []extract.PatternRule {
	return t.extractor.Rules()
}

// MaxReadSize returns the scan bound in characters.
func (t *Tagger) MaxReadSize() int {
	return t.maxReadSize
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
