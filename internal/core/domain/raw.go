package domain

import "time"

// RawDocument is a document as handed to the importer by its caller.
// The importer buffers Content once and gives each handler its own reader.
type RawDocument struct {
	// Reference is the original location (file path, URL, etc).
	Reference string

	// Content is the raw bytes.
	Content []byte

	// ContentType is the declared MIME type (e.g., "text/html").
	ContentType string

	// ContentEncoding is the declared character encoding, if any.
	ContentEncoding string

	// Metadata holds fields known before import. May be nil.
	Metadata *Metadata

	// ParseState is ParsePost when Content is already extracted text.
	ParseState ParseState
}

// ImportResult is the outcome of running a document through the handler chain.
type ImportResult struct {
	// ID uniquely identifies this import run of the document.
	ID string

	// Reference echoes RawDocument.Reference.
	Reference string

	// Accepted is false when a filter rejected the document.
	Accepted bool

	// RejectedBy names the rejecting filter, empty when accepted.
	RejectedBy string

	// Metadata is the document metadata after all handlers ran.
	Metadata *Metadata

	// Content is the document content after all transformers ran.
	Content []byte

	// ImportedAt is when the import finished.
	ImportedAt time.Time
}

// ResultQuery selects stored import results.
type ResultQuery struct {
	// Reference limits results to one document reference when set.
	Reference string

	// RejectedOnly limits results to documents a filter rejected.
	RejectedOnly bool

	// Limit caps the number of results. Zero means no limit.
	Limit int
}
