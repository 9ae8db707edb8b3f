// Package restrict evaluates field/value restriction rules against document
// metadata.
//
// Rules are collected with a Builder during configuration and frozen into
// a RuleSet, which is immutable and safe to share across goroutines.
package restrict

import (
	"fmt"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/textmatch"
)

// Rule pairs a field-name matcher with a value matcher.
type Rule struct {
	Field textmatch.Matcher
	Value textmatch.Matcher
}

// NewRule creates a rule.
func NewRule(field, value textmatch.Matcher) Rule {
	return Rule{Field: field, Value: value}
}

// Matches reports whether any value of any field selected by r.Field is
// accepted by r.Value. A field present with no values is tested as "".
func (r Rule) Matches(meta *domain.Metadata) bool {
	if meta == nil {
		return false
	}
	for _, field := range meta.Fields() {
		if !r.Field.Matches(field) {
			continue
		}
		values := meta.GetAll(field)
		if len(values) == 0 {
			if r.Value.Matches("") {
				return true
			}
			continue
		}
		for _, v := range values {
			if r.Value.Matches(v) {
				return true
			}
		}
	}
	return false
}

// Equal compares both matchers by configuration.
func (r Rule) Equal(other Rule) bool {
	return r.Field.Equal(other.Field) && r.Value.Equal(other.Value)
}

func (r Rule) String() string {
	return fmt.Sprintf("%s=%s", r.Field, r.Value)
}

// RuleFromConfig compiles a rule from its configuration form.
func RuleFromConfig(cfg domain.RestrictionConfig) (Rule, error) {
	field, err := textmatch.FromConfig(cfg.Field)
	if err != nil {
		return Rule{}, fmt.Errorf("restriction field: %w", err)
	}
	value, err := textmatch.FromConfig(cfg.Value)
	if err != nil {
		return Rule{}, fmt.Errorf("restriction value for %q: %w", cfg.Field.Pattern, err)
	}
	return NewRule(field, value), nil
}

// Config returns the configuration form of the rule.
func (r Rule) Config() domain.RestrictionConfig {
	return domain.RestrictionConfig{
		Field: r.Field.Config(),
		Value: r.Value.Config(),
	}
}
