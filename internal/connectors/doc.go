// Package connectors provides document sources that feed the importer.
// Each source knows how to load raw documents from one kind of store
// and, where the store supports it, report changes as they happen.
package connectors
