package domain

import "io"

// Well-known metadata fields set by the import driver.
const (
	FieldReference       = "document.reference"
	FieldContentType     = "document.contentType"
	FieldContentEncoding = "document.contentEncoding"
)

// ParseState tells handlers whether content was already parsed to text.
type ParseState int

const (
	// ParsePre means content is still in its original, possibly binary, form.
	ParsePre ParseState = iota

	// ParsePost means content has been normalised to UTF-8 text.
	ParsePost
)

// IsPost reports whether the document was already parsed.
func (s ParseState) IsPost() bool {
	return s == ParsePost
}

// String returns the parse state name.
func (s ParseState) String() string {
	if s == ParsePost {
		return "post"
	}
	return "pre"
}

// HandlerDoc is the view of a document handed to a single handler.
// Content is read at most once per handler invocation.
type HandlerDoc struct {
	// Reference identifies the document (URL, path). Used for logs and errors.
	Reference string

	// Content is the document content stream.
	Content io.Reader

	// Metadata is the document's metadata, shared along the handler chain.
	Metadata *Metadata

	// ContentType is the declared MIME type, if known.
	ContentType string

	// ContentEncoding is the declared character encoding, if known.
	ContentEncoding string
}
