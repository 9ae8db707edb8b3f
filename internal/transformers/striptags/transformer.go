// Package striptags provides StripTagsTransformer, which reduces markup
// content to readable text.
package striptags

import (
	"context"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-importer/internal/handler"
	"github.com/custodia-labs/sercha-importer/internal/restrict"
)

// Type is the configuration type name.
const Type = "StripTagsTransformer"

// Ensure Transformer implements the interface.
var _ driven.DocumentTransformer = (*Transformer)(nil)

// Transformer strips tags, scripts and comments from markup.
type Transformer struct {
	*handler.Transformer
	source string
}

// New creates a transformer. An empty source detects the charset.
func New(name string, restrictTo *restrict.RuleSet, source string) *Transformer {
	if name == "" {
		name = Type
	}
	t := &Transformer{source: source}
	t.Transformer = handler.NewTransformer(name, restrictTo, t.transform)
	return t
}

// FromConfig builds a transformer from a handler configuration.
func FromConfig(cfg domain.HandlerConfig) (*Transformer, error) {
	rules, err := restrict.FromConfig(cfg.RestrictTo)
	if err != nil {
		return nil, err
	}
	return New(cfg.DisplayName(), rules, cfg.Charset), nil
}

func (t *Transformer) transform(_ context.Context, doc *domain.HandlerDoc, out io.Writer, state domain.ParseState) error {
	r, err := handler.OpenText(doc, t.source, state)
	if err != nil {
		return err
	}
	markup, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read content: %w", err)
	}
	if _, err := io.WriteString(out, Strip(string(markup))); err != nil {
		return fmt.Errorf("write content: %w", err)
	}
	if doc.Metadata != nil {
		doc.Metadata.Set(domain.FieldContentEncoding, handler.UTF8)
	}
	return nil
}

var (
	scriptTag         = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleTag          = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	noscriptTag       = regexp.MustCompile(`(?is)<noscript\b[^>]*>.*?</noscript>`)
	headTag           = regexp.MustCompile(`(?is)<head\b[^>]*>.*?</head>`)
	svgTag            = regexp.MustCompile(`(?is)<svg\b[^>]*>.*?</svg>`)
	comments          = regexp.MustCompile(`(?s)<!--.*?-->`)
	openBlockElements = regexp.MustCompile(`(?i)<(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)[^>]*>`)
	closeBlocks       = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)>`)
	breaks            = regexp.MustCompile(`(?i)<(br|hr)\s*/?>`)
	allTags           = regexp.MustCompile(`<[^>]+>`)
	spaces            = regexp.MustCompile(`[ \t]+`)
)

// Strip returns the text of markup. Block elements become line breaks,
// entities are decoded and blank lines are dropped.
func Strip(markup string) string {
	s := markup
	// One pass per element, so a style inside head does not end the head.
	for _, re := range []*regexp.Regexp{scriptTag, styleTag, noscriptTag, headTag, svgTag} {
		s = re.ReplaceAllString(s, "")
	}
	s = comments.ReplaceAllString(s, "")
	s = openBlockElements.ReplaceAllString(s, "\n")
	s = closeBlocks.ReplaceAllString(s, "\n")
	s = breaks.ReplaceAllString(s, "\n")
	s = allTags.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = spaces.ReplaceAllString(s, " ")

	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
