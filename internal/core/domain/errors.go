package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent import failures independent of infrastructure.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates a handler or rule could not be built from
	// its configuration (bad pattern syntax, missing attributes).
	// Always raised before any document is processed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedType indicates an unknown handler type.
	ErrUnsupportedType = errors.New("unsupported type")
)

// HandlerError is returned when a handler fails on a specific document.
// The pipeline driver decides whether to skip, retry, or abort.
type HandlerError struct {
	// Handler is the name of the failing handler.
	Handler string

	// Reference is the document reference.
	Reference string

	// Err is the underlying failure.
	Err error
}

// NewHandlerError wraps err for the given handler and document.
func NewHandlerError(handler, reference string, err error) *HandlerError {
	return &HandlerError{Handler: handler, Reference: reference, Err: err}
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler %s failed on %s: %v", e.Handler, e.Reference, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}
