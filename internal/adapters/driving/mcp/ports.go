package mcp

import (
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Import runs documents through the handler chain.
	Import driving.ImportService

	// Results reads recorded import results. Optional; the result tools
	// are only registered when it is set.
	Results driving.ResultService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Import == nil {
		return ErrMissingImportService
	}
	return nil
}
