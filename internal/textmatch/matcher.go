// Package textmatch matches text against a configured pattern using one of
// several methods (exact, regular expression, wildcard).
//
// Matchers are compiled once at construction. A malformed pattern fails in
// New, so Matches never returns an error.
package textmatch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

// Method is the matching method.
type Method string

const (
	// MethodBasic compares text exactly.
	MethodBasic Method = "basic"

	// MethodRegex treats the pattern as a regular expression.
	MethodRegex Method = "regex"

	// MethodWildcard supports '*' (any run of characters) and '?' (one character).
	MethodWildcard Method = "wildcard"
)

// ParseMethod parses a method name. Blank defaults to basic.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "basic", "exact":
		return MethodBasic, nil
	case "regex":
		return MethodRegex, nil
	case "wildcard":
		return MethodWildcard, nil
	default:
		return "", fmt.Errorf("%w: unknown match method %q", domain.ErrInvalidConfig, s)
	}
}

// Matcher tests text against a pattern.
type Matcher struct {
	pattern    string
	method     Method
	ignoreCase bool
	partial    bool

	// re is nil for exact, non-partial, case-sensitive basic matching.
	re *regexp.Regexp
}

// New compiles a matcher.
// Whole-text semantics apply unless partial is set, in which case the
// pattern may match anywhere in the text.
func New(pattern string, method Method, ignoreCase, partial bool) (Matcher, error) {
	m := Matcher{
		pattern:    pattern,
		method:     method,
		ignoreCase: ignoreCase,
		partial:    partial,
	}

	var expr string
	switch method {
	case MethodBasic, "":
		m.method = MethodBasic
		if !ignoreCase && !partial {
			return m, nil
		}
		expr = regexp.QuoteMeta(pattern)
	case MethodRegex:
		expr = pattern
	case MethodWildcard:
		expr = wildcardToRegex(pattern)
	default:
		return Matcher{}, fmt.Errorf("%w: unknown match method %q", domain.ErrInvalidConfig, method)
	}

	if !partial {
		expr = `^(?:` + expr + `)$`
	}
	if ignoreCase {
		expr = `(?i)` + expr
	}
	// Wildcards and basic text span newlines like any other character.
	if method != MethodRegex {
		expr = `(?s)` + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return Matcher{}, fmt.Errorf("%w: invalid pattern %q: %w", domain.ErrInvalidConfig, pattern, err)
	}
	m.re = re
	return m, nil
}

// MustNew is like New but panics on error. Meant for package-level matchers
// and tests.
func MustNew(pattern string, method Method, ignoreCase, partial bool) Matcher {
	m, err := New(pattern, method, ignoreCase, partial)
	if err != nil {
		panic(err)
	}
	return m
}

// Basic returns a case-sensitive exact matcher.
func Basic(text string) Matcher {
	return Matcher{pattern: text, method: MethodBasic}
}

// Regex compiles a case-sensitive whole-text regex matcher.
func Regex(expr string) (Matcher, error) {
	return New(expr, MethodRegex, false, false)
}

// Wildcard compiles a case-sensitive whole-text wildcard matcher.
func Wildcard(expr string) (Matcher, error) {
	return New(expr, MethodWildcard, false, false)
}

// Matches reports whether text matches.
func (m Matcher) Matches(text string) bool {
	if m.re == nil {
		return text == m.pattern
	}
	return m.re.MatchString(text)
}

// Pattern returns the configured pattern.
func (m Matcher) Pattern() string { return m.pattern }

// Method returns the matching method.
func (m Matcher) Method() Method { return m.method }

// IgnoreCase reports whether matching ignores case.
func (m Matcher) IgnoreCase() bool { return m.ignoreCase }

// Partial reports whether the pattern may match a substring.
func (m Matcher) Partial() bool { return m.partial }

// Equal compares configuration, not compiled state.
func (m Matcher) Equal(other Matcher) bool {
	return m.pattern == other.pattern &&
		m.normalizedMethod() == other.normalizedMethod() &&
		m.ignoreCase == other.ignoreCase &&
		m.partial == other.partial
}

func (m Matcher) String() string {
	var flags []string
	if m.ignoreCase {
		flags = append(flags, "ignoreCase")
	}
	if m.partial {
		flags = append(flags, "partial")
	}
	if len(flags) == 0 {
		return fmt.Sprintf("%s:%q", m.normalizedMethod(), m.pattern)
	}
	return fmt.Sprintf("%s:%q[%s]", m.normalizedMethod(), m.pattern, strings.Join(flags, ","))
}

func (m Matcher) normalizedMethod() Method {
	if m.method == "" {
		return MethodBasic
	}
	return m.method
}

// wildcardToRegex quotes everything except '*' and '?'.
func wildcardToRegex(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}

// FromConfig builds a matcher from its configuration form.
func FromConfig(cfg domain.MatcherConfig) (Matcher, error) {
	method, err := ParseMethod(cfg.Method)
	if err != nil {
		return Matcher{}, err
	}
	return New(cfg.Pattern, method, cfg.IgnoreCase, cfg.Partial)
}

// Config returns the configuration form of the matcher.
func (m Matcher) Config() domain.MatcherConfig {
	return domain.MatcherConfig{
		Method:     string(m.normalizedMethod()),
		Pattern:    m.pattern,
		IgnoreCase: m.ignoreCase,
		Partial:    m.partial,
	}
}
