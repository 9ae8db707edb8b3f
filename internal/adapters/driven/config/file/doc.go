// Package file loads and saves handler chain configuration on disk.
// The format follows the file extension: .toml, .yaml or .yml.
package file
