// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and handler packages and
// adapters implement them.
//
// # Interfaces
//
//   - DocumentFilter: Accepts or rejects a document
//   - DocumentTagger: Adds metadata to a document
//   - DocumentTransformer: Rewrites document content
//   - ConfigLoader: Reads handler chain configuration (TOML, YAML)
//   - DocumentSource: Loads and watches raw documents
//   - ResultStore: Persists import results
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or handler package
package driven
