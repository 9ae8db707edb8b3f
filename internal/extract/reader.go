package extract

import (
	"bufio"
	"errors"
	"io"
)

// DefaultMaxReadSize leaves reads unbounded. Callers handling large documents
// are expected to set a finite bound.
const DefaultMaxReadSize = 0

// ReadBounded reads at most maxReadSize characters from r.
// A maxReadSize of zero or less reads everything.
func ReadBounded(r io.Reader, maxReadSize int) ([]rune, error) {
	br, ok := r.(io.RuneReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	var out []rune
	if maxReadSize > 0 {
		out = make([]rune, 0, min(maxReadSize, 4096))
	}
	for maxReadSize <= 0 || len(out) < maxReadSize {
		ch, _, err := br.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return out, err
		}
		out = append(out, ch)
	}
	return out, nil
}
