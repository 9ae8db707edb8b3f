package extract

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

func TestPatternExtractor_Alice(t *testing.T) {
	e := NewPatternExtractor()
	require.NoError(t, e.AddPattern("headings", "<h2>(.*?)</h2>", 1))
	require.NoError(t, e.AddPattern("country", `\w+\sZealand`))

	meta := domain.NewMetadata()
	require.NoError(t, e.Extract(aliceRunes(t, 0), meta))

	assert.Equal(t, []string{"CHAPTER I", "Down the Rabbit-Hole"}, meta.GetAll("headings"))
	assert.Equal(t, []string{"New Zealand"}, meta.GetAll("country"))
}

func TestPatternExtractor_First100Chars(t *testing.T) {
	e := NewPatternExtractor()
	require.NoError(t, e.AddPattern("mytitle", "^.{0,100}"))

	meta := domain.NewMetadata()
	require.NoError(t, e.Extract(aliceRunes(t, 0), meta))

	title, ok := meta.Get("mytitle")
	require.True(t, ok)
	assert.Len(t, []rune(title), 100)
}

func TestPatternExtractor_MaxReadSize(t *testing.T) {
	content := strings.Repeat("lorem ipsum dolor sit amet\n", 20)[:500]

	runes, err := ReadBounded(strings.NewReader(content), 100)
	require.NoError(t, err)

	e := NewPatternExtractor()
	require.NoError(t, e.AddPattern("head", "^.{0,100}"))
	meta := domain.NewMetadata()
	require.NoError(t, e.Extract(runes, meta))

	head, _ := meta.Get("head")
	assert.Len(t, head, 100)
	assert.Equal(t, content[:100], head)
}

func TestPatternExtractor_Truncation(t *testing.T) {
	runes, err := ReadBounded(strings.NewReader("<h1>Title</h1> and more"), 10)
	require.NoError(t, err)

	e := NewPatternExtractor()
	require.NoError(t, e.AddPattern("full", "<h1>.*?</h1>"))
	require.NoError(t, e.AddPattern("partial", `<h1>\w+`))

	meta := domain.NewMetadata()
	require.NoError(t, e.Extract(runes, meta))

	assert.False(t, meta.Has("full"))
	assert.Equal(t, []string{"<h1>Title"}, meta.GetAll("partial"))
}

func TestPatternExtractor_DuplicatesKeptInOrder(t *testing.T) {
	e := NewPatternExtractor()
	require.NoError(t, e.AddPattern("word", `\bcat\b`))

	meta := domain.NewMetadata()
	meta.Add("word", "existing")
	require.NoError(t, e.Extract(runesOf("cat dog Cat cat"), meta))

	assert.Equal(t, []string{"existing", "cat", "Cat", "cat"}, meta.GetAll("word"))
}

func TestPatternExtractor_CaseSensitive(t *testing.T) {
	e := NewPatternExtractor()
	require.NoError(t, e.AddRule(PatternRule{Field: "word", Pattern: "cat", CaseSensitive: true}))

	meta := domain.NewMetadata()
	require.NoError(t, e.Extract(runesOf("cat Cat CAT"), meta))
	assert.Equal(t, []string{"cat"}, meta.GetAll("word"))
}

func TestPatternExtractor_KeyValue(t *testing.T) {
	e := NewPatternExtractor()
	require.NoError(t, e.AddKeyValuePattern(`(\w+)=(\w+)`, 1, 2))

	meta := domain.NewMetadata()
	require.NoError(t, e.Extract(runesOf("color=red size=big color=blue"), meta))

	assert.Equal(t, []string{"red", "blue"}, meta.GetAll("color"))
	assert.Equal(t, []string{"big"}, meta.GetAll("size"))
	assert.Equal(t, []string{"color", "size"}, meta.Fields())
}

func TestPatternExtractor_EmptyKeyFallsBackToField(t *testing.T) {
	e := NewPatternExtractor()
	require.NoError(t, e.AddRule(PatternRule{Field: "misc", Pattern: `(\w*):(\w+)`, KeyGroup: 1, ValueGroup: 2}))

	meta := domain.NewMetadata()
	require.NoError(t, e.Extract(runesOf("a:1 :2"), meta))

	assert.Equal(t, []string{"1"}, meta.GetAll("a"))
	assert.Equal(t, []string{"2"}, meta.GetAll("misc"))
}

func TestPatternExtractor_EmptyKeyWithoutFieldIsSkipped(t *testing.T) {
	e := NewPatternExtractor()
	require.NoError(t, e.AddKeyValuePattern(`(\w*):(\w+)`, 1, 2))

	meta := domain.NewMetadata()
	require.NoError(t, e.Extract(runesOf("a:1 :2"), meta))

	assert.Equal(t, []string{"a"}, meta.Fields())
}

func TestPatternExtractor_UnmatchedGroupContributesNothing(t *testing.T) {
	e := NewPatternExtractor()
	require.NoError(t, e.AddPattern("b", `a(b)?`, 1))

	meta := domain.NewMetadata()
	require.NoError(t, e.Extract(runesOf("a ab a"), meta))
	assert.Equal(t, []string{"b"}, meta.GetAll("b"))
}

func TestPatternExtractor_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		rule PatternRule
	}{
		{"bad syntax", PatternRule{Field: "f", Pattern: "(unclosed"}},
		{"empty pattern", PatternRule{Field: "f"}},
		{"no field nor key group", PatternRule{Pattern: "x"}},
		{"negative group", PatternRule{Field: "f", Pattern: "x", ValueGroup: -1}},
		{"value group out of range", PatternRule{Field: "f", Pattern: "(x)", ValueGroup: 2}},
		{"key group out of range", PatternRule{Pattern: "(x)", KeyGroup: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewPatternExtractor()
			err := e.AddRule(tt.rule)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Equal(t, 0, e.Len())
		})
	}
}

func TestPatternExtractor_Matches(t *testing.T) {
	e := NewPatternExtractor()
	require.NoError(t, e.AddPattern("f", "confidential"))
	require.NoError(t, e.AddPattern("f", `secret\s+\d+`))

	ok, err := e.Matches(runesOf("nothing to see"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = e.Matches(runesOf("SECRET   42"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = NewPatternExtractor().Matches(runesOf("anything"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPatternExtractor_Timeout(t *testing.T) {
	e := NewPatternExtractor(WithMatchTimeout(10 * time.Millisecond))
	require.NoError(t, e.AddPattern("ok", "^a"))
	require.NoError(t, e.AddPattern("slow", `^(a+)+$`))

	meta := domain.NewMetadata()
	err := e.Extract(runesOf(strings.Repeat("a", 40)+"!"), meta)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `^(a+)+$`)
	// Values found before the failure stay.
	assert.Equal(t, []string{"a"}, meta.GetAll("ok"))
}

func TestPatternRule_ConfigRoundTrip(t *testing.T) {
	rule := PatternRule{Field: "field3", Pattern: "blah", KeyGroup: 3, ValueGroup: 6, CaseSensitive: true}
	assert.True(t, rule.Equal(PatternRuleFromConfig(rule.Config())))
}

func TestPatternExtractor_Rules(t *testing.T) {
	e := NewPatternExtractor()
	require.NoError(t, e.AddPattern("field1", "123.*890"))
	require.NoError(t, e.AddPattern("field2", "abc(.*)xyz", 1))

	rules := e.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, PatternRule{Field: "field1", Pattern: "123.*890"}, rules[0])
	assert.Equal(t, 1, rules[1].ValueGroup)
}
