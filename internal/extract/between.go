package extract

import (
	"fmt"

	"github.com/dlclark/regexp2"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

// EndpointRule stores the text between Start and End under Field.
// Start and End are regular expressions.
type EndpointRule struct {
	Field string
	Start string
	End   string
}

// Equal compares rules by value.
func (r EndpointRule) Equal(other EndpointRule) bool {
	return r == other
}

// Config returns the configuration form of the rule.
func (r EndpointRule) Config() domain.EndpointConfig {
	return domain.EndpointConfig{Field: r.Field, Start: r.Start, End: r.End}
}

type compiledEndpoints struct {
	rule EndpointRule

	// Indexed by case sensitivity: [0] ignores case, [1] is case sensitive.
	start [2]*regexp2.Regexp
	end   [2]*regexp2.Regexp
}

// BetweenExtractor extracts text delimited by start and end expressions.
//
// Inclusive keeps the delimiters in extracted values. CaseSensitive applies
// to both expressions of every rule. Both flags may be changed during
// configuration, before documents are processed.
type BetweenExtractor struct {
	Inclusive     bool
	CaseSensitive bool

	opts  options
	rules []compiledEndpoints
}

// NewBetweenExtractor creates an empty extractor.
func NewBetweenExtractor(opts ...Option) *BetweenExtractor {
	return &BetweenExtractor{opts: newOptions(opts)}
}

// AddTextEndpoints adds a rule. Both expressions are compiled for either
// case mode so CaseSensitive can be toggled afterwards.
func (e *BetweenExtractor) AddTextEndpoints(field, start, end string) error {
	rule := EndpointRule{Field: field, Start: start, End: end}
	if field == "" {
		return fmt.Errorf("%w: text endpoints need a field", domain.ErrInvalidConfig)
	}
	if start == "" || end == "" {
		return fmt.Errorf("%w: field %q needs both start and end", domain.ErrInvalidConfig, field)
	}

	c := compiledEndpoints{rule: rule}
	for i, caseSensitive := range []bool{false, true} {
		var err error
		if c.start[i], err = e.opts.compile(start, caseSensitive); err != nil {
			return fmt.Errorf("start of %q: %w", field, err)
		}
		if c.end[i], err = e.opts.compile(end, caseSensitive); err != nil {
			return fmt.Errorf("end of %q: %w", field, err)
		}
	}
	e.rules = append(e.rules, c)
	return nil
}

// Rules returns the registered rules in order.
func (e *BetweenExtractor) Rules() []EndpointRule {
	out := make([]EndpointRule, len(e.rules))
	for i, c := range e.rules {
		out[i] = c.rule
	}
	return out
}

// Len returns the number of rules.
func (e *BetweenExtractor) Len() int {
	return len(e.rules)
}

// Extract evaluates every rule against content in registration order.
//
// For each start match the nearest end match at or after the start's end is
// used. A start with no end stops the rule; nothing is stored for it.
func (e *BetweenExtractor) Extract(content []rune, meta *domain.Metadata) error {
	mode := 0
	if e.CaseSensitive {
		mode = 1
	}
	for _, c := range e.rules {
		if err := e.extractRule(c.rule.Field, c.start[mode], c.end[mode], content, meta); err != nil {
			return fmt.Errorf("text endpoints for %q: %w", c.rule.Field, err)
		}
	}
	return nil
}

func (e *BetweenExtractor) extractRule(field string, start, end *regexp2.Regexp, content []rune, meta *domain.Metadata) error {
	left, err := start.FindRunesMatch(content)
	for ; left != nil && err == nil; left, err = start.FindNextMatch(left) {
		leftEnd := left.Index + left.Length

		right, rerr := end.FindRunesMatchStartingAt(content, leftEnd)
		if rerr != nil {
			return rerr
		}
		if right == nil {
			return nil
		}

		if e.Inclusive {
			meta.Add(field, string(content[left.Index:right.Index+right.Length]))
		} else {
			meta.Add(field, string(content[leftEnd:right.Index]))
		}
	}
	return err
}
