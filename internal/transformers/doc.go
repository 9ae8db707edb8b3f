// Package transformers groups the built-in content transformers.
// Each subpackage provides one transformer type registered with the
// handler registry.
package transformers
