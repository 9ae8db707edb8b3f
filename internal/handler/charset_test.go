package handler

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

func TestResolveCharset(t *testing.T) {
	tests := []struct {
		name     string
		doc      *domain.HandlerDoc
		content  string
		explicit string
		state    domain.ParseState
		expected string
	}{
		{
			name:     "parsed content is utf-8",
			doc:      &domain.HandlerDoc{ContentType: "text/html; charset=iso-8859-2"},
			explicit: "shift_jis",
			state:    domain.ParsePost,
			expected: "utf-8",
		},
		{
			name:     "explicit charset is cleaned",
			doc:      &domain.HandlerDoc{},
			explicit: "  UTF-8 ",
			state:    domain.ParsePre,
			expected: "utf-8",
		},
		{
			name:     "unknown explicit charset kept as given",
			doc:      &domain.HandlerDoc{},
			explicit: "X-Custom",
			state:    domain.ParsePre,
			expected: "x-custom",
		},
		{
			name:     "declared content type charset",
			doc:      &domain.HandlerDoc{ContentType: "text/html; charset=utf-8"},
			content:  "plain ascii",
			state:    domain.ParsePre,
			expected: "utf-8",
		},
		{
			name:     "declared content encoding",
			doc:      &domain.HandlerDoc{ContentEncoding: "UTF-8"},
			content:  "plain ascii",
			state:    domain.ParsePre,
			expected: "utf-8",
		},
		{
			name:     "sniffed utf-8",
			doc:      &domain.HandlerDoc{ContentType: "text/plain"},
			content:  "café crème",
			state:    domain.ParsePre,
			expected: "utf-8",
		},
		{
			name:     "html meta charset",
			doc:      &domain.HandlerDoc{ContentType: "text/html"},
			content:  `<html><head><meta charset="utf-8"></head></html>`,
			state:    domain.ParsePre,
			expected: "utf-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bufio.NewReader(strings.NewReader(tt.content))
			assert.Equal(t, tt.expected, ResolveCharset(tt.doc, r, tt.explicit, tt.state))
		})
	}
}

func TestOpenText_DecodesLatin1(t *testing.T) {
	doc := &domain.HandlerDoc{
		Reference: "latin1.txt",
		Content:   strings.NewReader("caf\xe9"),
	}

	r, err := OpenText(doc, "ISO-8859-1", domain.ParsePre)
	require.NoError(t, err)
	text, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "café", string(text))
}

func TestOpenText_PostStateReadsRaw(t *testing.T) {
	doc := &domain.HandlerDoc{Content: strings.NewReader("café")}

	r, err := OpenText(doc, "ISO-8859-1", domain.ParsePost)
	require.NoError(t, err)
	text, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "café", string(text))
}

func TestOpenText_UnknownCharsetDegrades(t *testing.T) {
	doc := &domain.HandlerDoc{Content: strings.NewReader("hello")}

	r, err := OpenText(doc, "x-not-a-charset", domain.ParsePre)
	require.NoError(t, err)
	text, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(text))
}

func TestOpenText_NoContent(t *testing.T) {
	_, err := OpenText(&domain.HandlerDoc{}, "", domain.ParsePre)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolveCharset_Latin1Bytes(t *testing.T) {
	doc := &domain.HandlerDoc{ContentType: "text/plain"}
	r := bufio.NewReader(strings.NewReader("caf\xe9 cr\xe8me"))
	assert.Equal(t, "windows-1252", ResolveCharset(doc, r, "", domain.ParsePre))
}

func TestResolveCharset_ASCIIIsUTF8(t *testing.T) {
	doc := &domain.HandlerDoc{ContentType: "text/plain"}
	r := bufio.NewReader(strings.NewReader("plain ascii text"))
	assert.Equal(t, "utf-8", ResolveCharset(doc, r, "", domain.ParsePre))
}

func TestTrimPartialRune(t *testing.T) {
	full := []byte("aé")
	assert.Equal(t, full, trimPartialRune(full))
	assert.Equal(t, []byte("a"), trimPartialRune(full[:2]))
	assert.Empty(t, trimPartialRune(nil))
}
