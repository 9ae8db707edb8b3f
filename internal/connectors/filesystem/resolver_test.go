package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalPath(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		want      string
	}{
		{
			name:      "file URI is converted to local path",
			reference: "file:///srv/docs/alice.html",
			want:      "/srv/docs/alice.html",
		},
		{
			name:      "file URI with escaped spaces",
			reference: "file:///srv/my%20docs/alice.html",
			want:      "/srv/my docs/alice.html",
		},
		{
			name:      "bare path passes through unchanged",
			reference: "/srv/docs/alice.html",
			want:      "/srv/docs/alice.html",
		},
		{
			name:      "relative path passes through unchanged",
			reference: "docs/alice.html",
			want:      "docs/alice.html",
		},
		{
			name:      "empty reference",
			reference: "",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalPath(tt.reference))
		})
	}
}
