// Package services implements the driving ports.
//
// Importer runs raw documents through an immutable chain of filters,
// taggers and transformers, optionally recording each result in a
// driven.ResultStore. ResultService reads those recorded results back.
package services
