// Package keyword provides KeywordFilter, which accepts or rejects
// documents containing any of a list of literal keywords.
//
// All keywords are searched in a single pass over the content using an
// Aho-Corasick automaton.
package keyword

import (
	"context"
	"fmt"
	"strings"

	ac "github.com/petar-dambovaliev/aho-corasick"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-importer/internal/extract"
	"github.com/custodia-labs/sercha-importer/internal/handler"
	"github.com/custodia-labs/sercha-importer/internal/restrict"
)

// Type is the configuration type name.
const Type = "KeywordFilter"

// Ensure Filter implements the interface.
var _ driven.DocumentFilter = (*Filter)(nil)

// Config holds the filter settings.
type Config struct {
	Name          string
	RestrictTo    *restrict.RuleSet
	OnMatch       domain.OnMatch
	Keywords      []string
	CaseSensitive bool
	MaxReadSize   int
	Charset       string
}

// Filter fires when any keyword occurs in the content.
type Filter struct {
	*handler.Filter
	keywords      []string
	caseSensitive bool
	matcher       ac.AhoCorasick
	maxReadSize   int
	charset       string
}

// New builds a filter. Blank keywords are ignored.
func New(cfg Config) (*Filter, error) {
	keywords := make([]string, 0, len(cfg.Keywords))
	for _, k := range cfg.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			if !cfg.CaseSensitive {
				k = strings.ToLower(k)
			}
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		return nil, fmt.Errorf("%w: %s needs at least one keyword", domain.ErrInvalidConfig, Type)
	}
	name := cfg.Name
	if name == "" {
		name = Type
	}

	builder := ac.NewAhoCorasickBuilder(ac.Opts{
		MatchKind: ac.LeftMostLongestMatch,
	})
	f := &Filter{
		keywords:      keywords,
		caseSensitive: cfg.CaseSensitive,
		matcher:       builder.Build(keywords),
		maxReadSize:   cfg.MaxReadSize,
		charset:       cfg.Charset,
	}
	f.Filter = handler.NewFilter(name, cfg.RestrictTo, cfg.OnMatch, f.match)
	return f, nil
}

// FromConfig builds a filter from a handler configuration.
func FromConfig(cfg domain.HandlerConfig) (*Filter, error) {
	rules, err := restrict.FromConfig(cfg.RestrictTo)
	if err != nil {
		return nil, err
	}
	onMatch, err := domain.ParseOnMatch(cfg.OnMatch)
	if err != nil {
		return nil, err
	}
	return New(Config{
		Name:          cfg.DisplayName(),
		RestrictTo:    rules,
		OnMatch:       onMatch,
		Keywords:      cfg.Keywords,
		CaseSensitive: cfg.CaseSensitive,
		MaxReadSize:   cfg.MaxReadSize,
		Charset:       cfg.Charset,
	})
}

// Keywords returns the normalised keywords.
func (f *Filter) Keywords() []string {
	return append([]string(nil), f.keywords...)
}

// Find returns the keywords found in text, in order of occurrence.
func (f *Filter) Find(text string) []string {
	if !f.caseSensitive {
		text = strings.ToLower(text)
	}
	matches := f.matcher.FindAll(text)
	found := make([]string, 0, len(matches))
	for _, m := range matches {
		found = append(found, f.keywords[m.Pattern()])
	}
	return found
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
	return len(f.Find(string(text))) > 0, nil
}
