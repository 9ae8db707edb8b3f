// Package driving defines the ports the CLI and MCP adapters call into:
// ImportService runs documents through the handler chain and ResultService
// reads back recorded results.
//
// Implementations live in internal/core/services.
package driving
