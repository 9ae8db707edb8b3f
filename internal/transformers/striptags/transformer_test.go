package striptags

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "Alice was beginning to get very tired",
			expected: "Alice was beginning to get very tired",
		},
		{
			name:     "inline tags removed",
			input:    "<p>So she was considering <i>in her own mind</i></p>",
			expected: "So she was considering in her own mind",
		},
		{
			name:     "block elements split lines",
			input:    "<h2>Down the Rabbit-Hole</h2><p>Alice</p><div>Rabbit</div>",
			expected: "Down the Rabbit-Hole\nAlice\nRabbit",
		},
		{
			name:     "script style and head dropped",
			input:    "<head><title>T</title></head><script>var x;</script><style>p{}</style><p>Body</p>",
			expected: "Body",
		},
		{
			name:     "styled head dropped whole",
			input:    "<html><head><style>p{}</style><title>Secret Title</title></head><body><p>Hi</p></body></html>",
			expected: "Hi",
		},
		{
			name:     "each script removed separately",
			input:    "<script>a()</script><p>Keep</p><script>b()</script>",
			expected: "Keep",
		},
		{
			name:     "comments dropped",
			input:    "before<!-- hidden\ncomment -->after",
			expected: "beforeafter",
		},
		{
			name:     "breaks become newlines",
			input:    "one<br>two<br/>three<hr />four",
			expected: "one\ntwo\nthree\nfour",
		},
		{
			name:     "entities decoded",
			input:    "Caf&eacute; &amp; &lt;tea&gt;",
			expected: "Café & <tea>",
		},
		{
			name:     "spaces collapsed",
			input:    "<p>  lots \t of   space  </p>",
			expected: "lots of space",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Strip(tt.input))
		})
	}
}

func TestTransformer_TransformDocument(t *testing.T) {
	tr, err := FromConfig(domain.HandlerConfig{
		Type: Type,
		RestrictTo: []domain.RestrictionConfig{{
			Field: domain.MatcherConfig{Pattern: domain.FieldContentType},
			Value: domain.MatcherConfig{Pattern: "text/html"},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, Type, tr.Name())

	t.Run("html is stripped", func(t *testing.T) {
		md := domain.NewMetadata()
		md.Set(domain.FieldContentType, "text/html")
		doc := &domain.HandlerDoc{
			Reference: "alice.html",
			Content:   strings.NewReader("<html><body><h1>Alice</h1><p>in Wonderland</p></body></html>"),
			Metadata:  md,
		}

		var out bytes.Buffer
		engaged, err := tr.TransformDocument(context.Background(), doc, &out, domain.ParsePre)
		require.NoError(t, err)
		assert.True(t, engaged)
		assert.Equal(t, "Alice\nin Wonderland", out.String())

		enc, _ := md.Get(domain.FieldContentEncoding)
		assert.Equal(t, "utf-8", enc)
	})

	t.Run("other types are left alone", func(t *testing.T) {
		md := domain.NewMetadata()
		md.Set(domain.FieldContentType, "text/plain")
		doc := &domain.HandlerDoc{Content: strings.NewReader("<b>x</b>"), Metadata: md}

		var out bytes.Buffer
		engaged, err := tr.TransformDocument(context.Background(), doc, &out, domain.ParsePre)
		require.NoError(t, err)
		assert.False(t, engaged)
		assert.Zero(t, out.Len())
	})
}

func TestFromConfig_InvalidRestriction(t *testing.T) {
	_, err := FromConfig(domain.HandlerConfig{
		Type: Type,
		RestrictTo: []domain.RestrictionConfig{{
			Field: domain.MatcherConfig{Pattern: "x"},
			Value: domain.MatcherConfig{Method: "regex", Pattern: "(("},
		}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
