// Package tui provides an interactive terminal browser over recorded
// import results and the configured handler chain.
package tui

import (
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driving"
)

// Ports aggregates the driving ports the browser reads from.
type Ports struct {
	// Results lists and fetches recorded import results.
	Results driving.ResultService

	// Import is optional. When set, its handler chain can be shown.
	Import driving.ImportService
}

// Validate ensures the required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Results == nil {
		return ErrMissingResultService
	}
	return nil
}
