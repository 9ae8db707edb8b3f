package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/logger"
)

// UTF8 is the charset used when none can be determined.
const UTF8 = "utf-8"

// sniffSize is how many bytes are inspected to detect a charset.
const sniffSize = 1024

const fallbackCharset = "windows-1252"

// ResolveCharset returns the charset content should be decoded with.
// Parsed content is always UTF-8. An explicit charset wins over detection.
// Detection failures fall back to UTF-8.
func ResolveCharset(doc *domain.HandlerDoc, r *bufio.Reader, explicit string, state domain.ParseState) string {
	if state.IsPost() {
		return UTF8
	}
	if cs := cleanCharset(explicit); cs != "" {
		return cs
	}

	if doc != nil && doc.ContentEncoding != "" {
		if _, name := charset.Lookup(doc.ContentEncoding); name != "" {
			return name
		}
	}

	var peek []byte
	if r != nil {
		var err error
		peek, err = r.Peek(sniffSize)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
			logger.Debug("charset detection failed for %s, using %s: %v", reference(doc), UTF8, err)
			return UTF8
		}
	}

	contentType := ""
	if doc != nil {
		contentType = doc.ContentType
	}
	_, name, certain := charset.DetermineEncoding(peek, contentType)
	if name == "" {
		logger.Debug("no charset detected for %s, using %s", reference(doc), UTF8)
		return UTF8
	}
	// windows-1252 is the detector's fallback guess. Plain ASCII is more
	// likely the start of UTF-8 text.
	if !certain && name == fallbackCharset && utf8.Valid(trimPartialRune(peek)) {
		return UTF8
	}
	return name
}

// trimPartialRune drops an incomplete UTF-8 sequence cut off at the end of b.
func trimPartialRune(b []byte) []byte {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return b[:i]
			}
			break
		}
	}
	return b
}

// OpenText returns a reader producing doc's content as UTF-8 text.
// Unknown charsets degrade to reading the raw bytes as UTF-8.
func OpenText(doc *domain.HandlerDoc, explicit string, state domain.ParseState) (io.Reader, error) {
	if doc == nil || doc.Content == nil {
		return nil, fmt.Errorf("%w: document has no content", domain.ErrInvalidInput)
	}
	br := bufio.NewReaderSize(doc.Content, sniffSize)
	name := ResolveCharset(doc, br, explicit, state)
	if name == UTF8 {
		return br, nil
	}
	enc, _ := charset.Lookup(name)
	if enc == nil {
		logger.Debug("unsupported charset %q for %s, reading as %s", name, reference(doc), UTF8)
		return br, nil
	}
	return enc.NewDecoder().Reader(br), nil
}

// cleanCharset trims quotes and whitespace and canonicalises known labels.
func cleanCharset(label string) string {
	cs := strings.ToLower(strings.Trim(strings.TrimSpace(label), `"'`))
	if cs == "" {
		return ""
	}
	if _, name := charset.Lookup(cs); name != "" {
		return name
	}
	return cs
}
