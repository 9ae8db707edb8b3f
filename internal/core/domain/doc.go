// Package domain defines the core import entities for Sercha Importer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Metadata: Ordered multimap of document fields
//   - HandlerDoc: The document view handed to a single handler
//   - RawDocument: Bytes and declared hints handed to the importer
//   - OnMatch: Include/exclude policy of filters
//   - HandlerConfig: Format-agnostic handler configuration
//   - Change: A document change reported by a watching source
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
