package tui

import "errors"

// ErrMissingResultService is returned when the browser has no result
// service to read from.
var ErrMissingResultService = errors.New("result service is required")
