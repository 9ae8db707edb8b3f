// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the importer. It lets AI assistants run documents through the configured
// handler chain.
package mcp

import "errors"

// ErrMissingImportService is returned when the import service is not provided.
var ErrMissingImportService = errors.New("mcp: import service is required")
