package restrict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/textmatch"
)

func metaOf(pairs ...string) *domain.Metadata {
	md := domain.NewMetadata()
	for i := 0; i+1 < len(pairs); i += 2 {
		md.Add(pairs[i], pairs[i+1])
	}
	return md
}

func TestRule_Matches(t *testing.T) {
	contentType := textmatch.Basic(domain.FieldContentType)
	textWildcard := textmatch.MustNew("text/*", textmatch.MethodWildcard, false, false)

	tests := []struct {
		name     string
		rule     Rule
		meta     *domain.Metadata
		expected bool
	}{
		{
			name:     "wildcard value matches",
			rule:     NewRule(contentType, textWildcard),
			meta:     metaOf(domain.FieldContentType, "text/html"),
			expected: true,
		},
		{
			name:     "wildcard value does not match",
			rule:     NewRule(contentType, textWildcard),
			meta:     metaOf(domain.FieldContentType, "application/pdf"),
			expected: false,
		},
		{
			name:     "field absent",
			rule:     NewRule(contentType, textWildcard),
			meta:     metaOf("title", "text/plain"),
			expected: false,
		},
		{
			name:     "any value of a multi-valued field",
			rule:     NewRule(textmatch.Basic("tag"), textmatch.Basic("b")),
			meta:     metaOf("tag", "a", "tag", "b"),
			expected: true,
		},
		{
			name: "regex field selects several fields",
			rule: NewRule(
				textmatch.MustNew(`author\..*`, textmatch.MethodRegex, false, false),
				textmatch.Basic("Carroll"),
			),
			meta:     metaOf("author.first", "Lewis", "author.last", "Carroll"),
			expected: true,
		},
		{
			name:     "field names are case sensitive",
			rule:     NewRule(textmatch.Basic("Title"), textmatch.Basic("x")),
			meta:     metaOf("title", "x"),
			expected: false,
		},
		{
			name: "ignore case field matcher",
			rule: NewRule(
				textmatch.MustNew("Title", textmatch.MethodBasic, true, false),
				textmatch.Basic("x"),
			),
			meta:     metaOf("title", "x"),
			expected: true,
		},
		{
			name:     "nil metadata",
			rule:     NewRule(contentType, textWildcard),
			meta:     nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rule.Matches(tt.meta))
		})
	}
}

func TestRule_FieldWithoutValues(t *testing.T) {
	md := domain.NewMetadata()
	md.Add("flag")
	// Add with no values is a no-op, so the field does not exist.
	rule := NewRule(textmatch.Basic("flag"), textmatch.Basic(""))
	assert.False(t, rule.Matches(md))

	md.Set("flag", "")
	assert.True(t, rule.Matches(md))
}

func TestRuleFromConfig(t *testing.T) {
	rule, err := RuleFromConfig(domain.RestrictionConfig{
		Field: domain.MatcherConfig{Pattern: domain.FieldContentType},
		Value: domain.MatcherConfig{Method: "wildcard", Pattern: "text/*"},
	})
	require.NoError(t, err)
	assert.True(t, rule.Matches(metaOf(domain.FieldContentType, "text/html")))

	back, err := RuleFromConfig(rule.Config())
	require.NoError(t, err)
	assert.True(t, rule.Equal(back))
}

func TestRuleFromConfig_Invalid(t *testing.T) {
	_, err := RuleFromConfig(domain.RestrictionConfig{
		Field: domain.MatcherConfig{Pattern: "f"},
		Value: domain.MatcherConfig{Method: "regex", Pattern: "(["},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = RuleFromConfig(domain.RestrictionConfig{
		Field: domain.MatcherConfig{Method: "soundex", Pattern: "f"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
