package handler

import (
	"context"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/restrict"
)

// MatchFunc reports whether a filter's own criterion fires for doc.
type MatchFunc func(ctx context.Context, doc *domain.HandlerDoc, state domain.ParseState) (bool, error)

// Filter accepts or rejects documents.
type Filter struct {
	Gate
	onMatch domain.OnMatch
	match   MatchFunc
}

// NewFilter creates a filter around match.
func NewFilter(name string, rules *restrict.RuleSet, onMatch domain.OnMatch, match MatchFunc) *Filter {
	return &Filter{
		Gate:    NewGate(name, rules),
		onMatch: onMatch,
		match:   match,
	}
}

// OnMatch returns the filter policy.
func (f *Filter) OnMatch() domain.OnMatch { return f.onMatch }

// AcceptDocument reports whether doc passes the filter.
// Inapplicable documents are accepted without evaluating the criterion.
func (f *Filter) AcceptDocument(ctx context.Context, doc *domain.HandlerDoc, state domain.ParseState) (bool, error) {
	outcome, err := f.Evaluate(ctx, doc, state)
	if err != nil {
		return false, err
	}
	return outcome.Accept(f.onMatch), nil
}

// Evaluate returns the outcome reached for doc.
func (f *Filter) Evaluate(ctx context.Context, doc *domain.HandlerDoc, state domain.ParseState) (Outcome, error) {
	if !f.IsApplicable(doc, state) {
		return NotApplicable, nil
	}
	matched, err := f.match(ctx, doc, state)
	if err != nil {
		return NotApplicable, domain.NewHandlerError(f.Name(), reference(doc), err)
	}
	return OutcomeOf(true, matched), nil
}
