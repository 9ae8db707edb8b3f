package handler

import "github.com/custodia-labs/sercha-importer/internal/core/domain"

// Outcome is the state a filter reaches for one document.
type Outcome int

const (
	// NotApplicable means the restrictions excluded the document.
	NotApplicable Outcome = iota

	// ApplicableNoMatch means the filter engaged but its criterion did not fire.
	ApplicableNoMatch

	// ApplicableMatch means the filter engaged and its criterion fired.
	ApplicableMatch
)

// OutcomeOf maps gate and match results to an outcome.
// matched is ignored when the filter is not applicable.
func OutcomeOf(applicable, matched bool) Outcome {
	switch {
	case !applicable:
		return NotApplicable
	case !matched:
		return ApplicableNoMatch
	default:
		return ApplicableMatch
	}
}

// Accept returns whether the document is accepted under policy.
// Only a fired criterion can reject; a filter otherwise abstains.
func (o Outcome) Accept(policy domain.OnMatch) bool {
	if o != ApplicableMatch {
		return true
	}
	return policy == domain.OnMatchInclude
}

func (o Outcome) String() string {
	switch o {
	case NotApplicable:
		return "not-applicable"
	case ApplicableNoMatch:
		return "applicable-no-match"
	case ApplicableMatch:
		return "applicable-match"
	default:
		return "unknown"
	}
}

// Decide turns a filter's gate and match results into accept or reject.
func Decide(applicable, matched bool, policy domain.OnMatch) bool {
	return OutcomeOf(applicable, matched).Accept(policy)
}
