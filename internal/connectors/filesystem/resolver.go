package filesystem

import (
	"net/url"
	"path/filepath"
	"strings"
)

// LocalPath converts a document reference to a local path for opening.
// Handles file:// URIs and bare paths.
func LocalPath(reference string) string {
	if !strings.HasPrefix(reference, "file://") {
		return reference
	}
	u, err := url.Parse(reference)
	if err != nil || u.Path == "" {
		return strings.TrimPrefix(reference, "file://")
	}
	return filepath.FromSlash(u.Path)
}
