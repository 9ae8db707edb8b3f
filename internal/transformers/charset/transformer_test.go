package charset

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

func TestTransformer_ConvertsToUTF8(t *testing.T) {
	tr, err := FromConfig(domain.HandlerConfig{Type: Type, Charset: "ISO-8859-1"})
	require.NoError(t, err)
	assert.Equal(t, Type, tr.Name())

	doc := &domain.HandlerDoc{
		Reference: "latin1.txt",
		Content:   strings.NewReader("na\xefve caf\xe9"),
		Metadata:  domain.NewMetadata(),
	}

	var out bytes.Buffer
	engaged, err := tr.TransformDocument(context.Background(), doc, &out, domain.ParsePre)
	require.NoError(t, err)
	assert.True(t, engaged)
	assert.Equal(t, "naïve café", out.String())

	enc, _ := doc.Metadata.Get(domain.FieldContentEncoding)
	assert.Equal(t, "utf-8", enc)
}

func TestTransformer_Restricted(t *testing.T) {
	tr, err := FromConfig(domain.HandlerConfig{
		Type:    Type,
		Charset: "ISO-8859-1",
		RestrictTo: []domain.RestrictionConfig{{
			Field: domain.MatcherConfig{Pattern: domain.FieldContentType},
			Value: domain.MatcherConfig{Pattern: "text/plain"},
		}},
	})
	require.NoError(t, err)

	md := domain.NewMetadata()
	md.Set(domain.FieldContentType, "application/pdf")
	doc := &domain.HandlerDoc{Content: strings.NewReader("%PDF"), Metadata: md}

	var out bytes.Buffer
	engaged, err := tr.TransformDocument(context.Background(), doc, &out, domain.ParsePre)
	require.NoError(t, err)
	assert.False(t, engaged)
	assert.Zero(t, out.Len())
	assert.False(t, md.Has(domain.FieldContentEncoding))
}
