package between

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/extract"
)

func newDoc(content string) *domain.HandlerDoc {
	md := domain.NewMetadata()
	md.Set(domain.FieldContentType, "text/html")
	return &domain.HandlerDoc{
		Reference: "page.html",
		Content:   strings.NewReader(content),
		Metadata:  md,
	}
}

func TestTagger_TagDocument(t *testing.T) {
	tests := []struct {
		name      string
		inclusive bool
		expected  []string
	}{
		{"inclusive", true, []string{"<h1>Title</h1>"}},
		{"exclusive", false, []string{"Title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tagger, err := New(Config{
				Endpoints: []extract.EndpointRule{{Field: "title", Start: "<h1>", End: "</h1>"}},
				Inclusive: tt.inclusive,
			})
			require.NoError(t, err)

			doc := newDoc("<h1>Title</h1>")
			require.NoError(t, tagger.TagDocument(context.Background(), doc, domain.ParsePre))
			assert.Equal(t, tt.expected, doc.Metadata.GetAll("title"))
		})
	}
}

func TestTagger_CaseSensitive(t *testing.T) {
	tagger, err := New(Config{
		Endpoints:     []extract.EndpointRule{{Field: "bold", Start: "<b>", End: "</b>"}},
		CaseSensitive: true,
	})
	require.NoError(t, err)

	doc := newDoc("<B>loud</B> <b>quiet</b>")
	require.NoError(t, tagger.TagDocument(context.Background(), doc, domain.ParsePost))
	assert.Equal(t, []string{"quiet"}, doc.Metadata.GetAll("bold"))
}

func TestTagger_MaxReadSizeDropsOpenSpan(t *testing.T) {
	tagger, err := New(Config{
		Endpoints:   []extract.EndpointRule{{Field: "title", Start: "<h1>", End: "</h1>"}},
		MaxReadSize: 10,
	})
	require.NoError(t, err)

	doc := newDoc("<h1>Title</h1>")
	require.NoError(t, tagger.TagDocument(context.Background(), doc, domain.ParsePre))
	assert.False(t, doc.Metadata.Has("title"))
}

func TestFromConfig(t *testing.T) {
	tagger, err := FromConfig(domain.HandlerConfig{
		Type: Type,
		Endpoints: []domain.EndpointConfig{
			{Field: "headings", Start: "<h1>", End: "</h1>"},
			{Field: "headings", Start: "<h2>", End: "</h2>"},
		},
		Inclusive:   true,
		MaxReadSize: 512,
	})
	require.NoError(t, err)
	assert.Equal(t, Type, tagger.Name())
	assert.Len(t, tagger.Endpoints(), 2)

	doc := newDoc("<h2>Two</h2><h1>One</h1>")
	require.NoError(t, tagger.TagDocument(context.Background(), doc, domain.ParsePre))
	assert.Equal(t, []string{"<h1>One</h1>", "<h2>Two</h2>"}, doc.Metadata.GetAll("headings"))
}

func TestFromConfig_Errors(t *testing.T) {
	_, err := FromConfig(domain.HandlerConfig{Type: Type})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = FromConfig(domain.HandlerConfig{
		Type:      Type,
		Endpoints: []domain.EndpointConfig{{Field: "f", Start: "(", End: ")"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
