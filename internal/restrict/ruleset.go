package restrict

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/textmatch"
)

// RuleSet is an immutable collection of rules combined with logical OR.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet creates a rule set from the given rules.
func NewRuleSet(rules ...Rule) *RuleSet {
	return &RuleSet{rules: append([]Rule(nil), rules...)}
}

// Matches reports whether at least one rule matches.
// An empty or nil rule set always matches.
func (s *RuleSet) Matches(meta *domain.Metadata) bool {
	if s.IsEmpty() {
		return true
	}
	for _, r := range s.rules {
		if r.Matches(meta) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the set holds no rules.
func (s *RuleSet) IsEmpty() bool {
	return s == nil || len(s.rules) == 0
}

// Len returns the number of rules.
func (s *RuleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Rules returns a copy of the rules.
func (s *RuleSet) Rules() []Rule {
	if s == nil {
		return nil
	}
	return append([]Rule(nil), s.rules...)
}

// Equal compares rules in order.
func (s *RuleSet) Equal(other *RuleSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if !s.rules[i].Equal(other.rules[i]) {
			return false
		}
	}
	return true
}

// Config returns the configuration form of every rule.
func (s *RuleSet) Config() []domain.RestrictionConfig {
	out := make([]domain.RestrictionConfig, 0, s.Len())
	for _, r := range s.Rules() {
		out = append(out, r.Config())
	}
	return out
}

// FromConfig compiles a rule set. Any malformed pattern fails the whole set.
func FromConfig(cfgs []domain.RestrictionConfig) (*RuleSet, error) {
	b := NewBuilder()
	for i, cfg := range cfgs {
		r, err := RuleFromConfig(cfg)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		b.Add(r)
	}
	return b.Build(), nil
}

// Builder collects rules during configuration.
// Mutations are serialized so a builder may be filled from several goroutines.
type Builder struct {
	mu    sync.Mutex
	rules []Rule
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends rules.
func (b *Builder) Add(rules ...Rule) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rules = append(b.rules, rules...)
	return b
}

// AddRegex adds a rule matching field exactly and its values with regex.
func (b *Builder) AddRegex(field, regex string, caseSensitive bool) error {
	value, err := textmatch.New(regex, textmatch.MethodRegex, !caseSensitive, false)
	if err != nil {
		return err
	}
	b.Add(NewRule(textmatch.Basic(field), value))
	return nil
}

// Remove deletes every rule whose field pattern equals field and returns
// how many were removed.
func (b *Builder) Remove(field string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	kept := b.rules[:0]
	removed := 0
	for _, r := range b.rules {
		if r.Field.Pattern() == field {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	b.rules = kept
	return removed
}

// RemoveRule deletes the first rule equal to rule.
func (b *Builder) RemoveRule(rule Rule) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, r := range b.rules {
		if r.Equal(rule) {
			b.rules = append(b.rules[:i], b.rules[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all rules.
func (b *Builder) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rules = nil
}

// Len returns the number of rules collected so far.
func (b *Builder) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.rules)
}

// Build freezes the current rules. Later builder mutations do not affect
// the returned set.
func (b *Builder) Build() *RuleSet {
	b.mu.Lock()
	defer b.mu.Unlock()
	return NewRuleSet(b.rules...)
}
