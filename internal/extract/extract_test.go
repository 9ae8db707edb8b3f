package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func aliceRunes(t *testing.T, maxReadSize int) []rune {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", "alice.html"))
	require.NoError(t, err)
	defer f.Close()

	content, err := ReadBounded(f, maxReadSize)
	require.NoError(t, err)
	return content
}

func runesOf(s string) []rune {
	content, _ := ReadBounded(strings.NewReader(s), DefaultMaxReadSize)
	return content
}
