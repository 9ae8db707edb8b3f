package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

func TestOptions_compile(t *testing.T) {
	tests := []struct {
		name          string
		expr          string
		caseSensitive bool
		input         string
		want          bool
	}{
		{"case-insensitive matches upper case", "rabbit", false, "White RABBIT", true},
		{"case-sensitive rejects upper case", "rabbit", true, "White RABBIT", false},
		{"dot matches newline", "Alice.was", true, "Alice\nwas", true},
		{"look-ahead supported", `Alice(?=\s+was)`, true, "Alice  was", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := newOptions(nil).compile(tt.expr, tt.caseSensitive)
			require.NoError(t, err)

			got, err := re.MatchString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptions_compile_Timeout(t *testing.T) {
	re, err := newOptions([]Option{WithMatchTimeout(time.Second)}).compile("a", true)
	require.NoError(t, err)
	assert.Equal(t, time.Second, re.MatchTimeout)
}

func TestOptions_compile_Invalid(t *testing.T) {
	_, err := newOptions(nil).compile("(unclosed", true)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
