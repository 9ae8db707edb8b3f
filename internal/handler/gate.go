// Package handler holds the behaviour shared by every document handler:
// the applicability gate, the filter accept/reject decision, and the
// tagger and transformer wrappers built around them.
//
// Variants compose a Gate rather than inherit from a base type. Each
// variant wraps a single function holding its specific logic, which only
// runs when the gate lets the document through.
package handler

import (
	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/logger"
	"github.com/custodia-labs/sercha-importer/internal/restrict"
)

// Gate decides whether a handler engages with a document.
type Gate struct {
	name  string
	rules *restrict.RuleSet
}

// NewGate creates a gate. A nil rule set applies to every document.
func NewGate(name string, rules *restrict.RuleSet) Gate {
	return Gate{name: name, rules: rules}
}

// Name returns the handler name.
func (g Gate) Name() string { return g.name }

// Rules returns the restriction rules.
func (g Gate) Rules() *restrict.RuleSet { return g.rules }

// IsApplicable reports whether the handler applies to doc.
func (g Gate) IsApplicable(doc *domain.HandlerDoc, state domain.ParseState) bool {
	if g.rules.IsEmpty() {
		return true
	}
	var meta *domain.Metadata
	if doc != nil {
		meta = doc.Metadata
	}
	if g.rules.Matches(meta) {
		return true
	}
	logger.Debug("%s: not applicable to %s (parse state %s), restrictions not met",
		g.name, reference(doc), state)
	return false
}

func reference(doc *domain.HandlerDoc) string {
	if doc == nil {
		return ""
	}
	return doc.Reference
}
