// Package messages defines the Bubbletea messages of the results browser.
package messages

import (
	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

// ViewType identifies the active view.
type ViewType int

const (
	// ViewResults lists recorded results.
	ViewResults ViewType = iota
	// ViewDetail shows one result with its metadata and content.
	ViewDetail
	// ViewHandlers lists the configured handler chain.
	ViewHandlers
)

// String returns the view name.
func (v ViewType) String() string {
	switch v {
	case ViewResults:
		return "results"
	case ViewDetail:
		return "detail"
	case ViewHandlers:
		return "handlers"
	default:
		return "unknown"
	}
}

// ResultsLoaded carries the outcome of a list query.
type ResultsLoaded struct {
	Results []*domain.ImportResult
	Err     error
}

// ResultLoaded carries one result fetched by ID.
type ResultLoaded struct {
	Result *domain.ImportResult
	Err    error
}
