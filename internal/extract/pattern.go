package extract

import (
	"fmt"

	"github.com/dlclark/regexp2"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

// PatternRule describes one regex extraction.
type PatternRule struct {
	// Field receives values. With KeyGroup set it is the fallback name used
	// when the key group captured nothing.
	Field string

	// Pattern is the regular expression.
	Pattern string

	// ValueGroup is the capture group holding the value. 0 is the whole match.
	ValueGroup int

	// KeyGroup is the capture group holding the field name. 0 uses Field.
	KeyGroup int

	CaseSensitive bool
}

// Equal compares rules by value.
func (r PatternRule) Equal(other PatternRule) bool {
	return r == other
}

// Config returns the configuration form of the rule.
func (r PatternRule) Config() domain.PatternConfig {
	return domain.PatternConfig{
		Field:         r.Field,
		Match:         r.Pattern,
		ValueGroup:    r.ValueGroup,
		KeyGroup:      r.KeyGroup,
		CaseSensitive: r.CaseSensitive,
	}
}

// PatternRuleFromConfig converts a pattern configuration.
func PatternRuleFromConfig(cfg domain.PatternConfig) PatternRule {
	return PatternRule{
		Field:         cfg.Field,
		Pattern:       cfg.Match,
		ValueGroup:    cfg.ValueGroup,
		KeyGroup:      cfg.KeyGroup,
		CaseSensitive: cfg.CaseSensitive,
	}
}

type compiledPattern struct {
	rule PatternRule
	re   *regexp2.Regexp
}

// PatternExtractor extracts values matching regular expressions.
// Rules are added during configuration; Extract and Matches are safe for
// concurrent use once configuration is done.
type PatternExtractor struct {
	opts  options
	rules []compiledPattern
}

// NewPatternExtractor creates an empty extractor.
func NewPatternExtractor(opts ...Option) *PatternExtractor {
	return &PatternExtractor{opts: newOptions(opts)}
}

// AddPattern stores matches of pattern under field. An optional group
// selects a capture group instead of the whole match. Matching ignores case.
func (e *PatternExtractor) AddPattern(field, pattern string, group ...int) error {
	rule := PatternRule{Field: field, Pattern: pattern}
	if len(group) > 0 {
		rule.ValueGroup = group[0]
	}
	return e.AddRule(rule)
}

// AddKeyValuePattern stores each match under the field named by keyGroup.
func (e *PatternExtractor) AddKeyValuePattern(pattern string, keyGroup, valueGroup int) error {
	return e.AddRule(PatternRule{Pattern: pattern, KeyGroup: keyGroup, ValueGroup: valueGroup})
}

// AddRule compiles and adds rule.
func (e *PatternExtractor) AddRule(rule PatternRule) error {
	if rule.Pattern == "" {
		return fmt.Errorf("%w: pattern is required", domain.ErrInvalidConfig)
	}
	if rule.Field == "" && rule.KeyGroup <= 0 {
		return fmt.Errorf("%w: pattern %q needs a field or a key group", domain.ErrInvalidConfig, rule.Pattern)
	}
	if rule.ValueGroup < 0 || rule.KeyGroup < 0 {
		return fmt.Errorf("%w: pattern %q has a negative group", domain.ErrInvalidConfig, rule.Pattern)
	}
	re, err := e.opts.compile(rule.Pattern, rule.CaseSensitive)
	if err != nil {
		return err
	}
	if highest := maxGroup(re); rule.ValueGroup > highest || rule.KeyGroup > highest {
		return fmt.Errorf("%w: pattern %q has %d groups", domain.ErrInvalidConfig, rule.Pattern, highest)
	}
	e.rules = append(e.rules, compiledPattern{rule: rule, re: re})
	return nil
}

// Rules returns the registered rules in order.
func (e *PatternExtractor) Rules() []PatternRule {
	out := make([]PatternRule, len(e.rules))
	for i, c := range e.rules {
		out[i] = c.rule
	}
	return out
}

// Len returns the number of rules.
func (e *PatternExtractor) Len() int {
	return len(e.rules)
}

// Extract appends every match of every rule to meta, rule by rule, in the
// order matches are found. Values written before an error are kept.
func (e *PatternExtractor) Extract(content []rune, meta *domain.Metadata) error {
	for _, c := range e.rules {
		m, err := c.re.FindRunesMatch(content)
		for ; m != nil && err == nil; m, err = c.re.FindNextMatch(m) {
			field, value, ok := c.pick(m)
			if ok {
				meta.Add(field, value)
			}
		}
		if err != nil {
			return fmt.Errorf("pattern %q: %w", c.rule.Pattern, err)
		}
	}
	return nil
}

// Matches reports whether any rule matches content.
func (e *PatternExtractor) Matches(content []rune) (bool, error) {
	for _, c := range e.rules {
		m, err := c.re.FindRunesMatch(content)
		if err != nil {
			return false, fmt.Errorf("pattern %q: %w", c.rule.Pattern, err)
		}
		if m != nil {
			return true, nil
		}
	}
	return false, nil
}

func (c compiledPattern) pick(m *regexp2.Match) (field, value string, ok bool) {
	field = c.rule.Field
	if c.rule.KeyGroup > 0 {
		if key, found := groupText(m, c.rule.KeyGroup); found && key != "" {
			field = key
		}
	}
	if field == "" {
		return "", "", false
	}

	if c.rule.ValueGroup > 0 {
		value, ok = groupText(m, c.rule.ValueGroup)
		return field, value, ok
	}
	return field, m.String(), true
}

// groupText returns the text of group n, or false if it did not participate.
func groupText(m *regexp2.Match, n int) (string, bool) {
	g := m.GroupByNumber(n)
	if g == nil || len(g.Captures) == 0 {
		return "", false
	}
	return g.String(), true
}
