package domain

import (
	"fmt"
	"strings"
)

// OnMatch is the action a filter takes when its criterion fires.
// The zero value is OnMatchInclude.
type OnMatch int

const (
	// OnMatchInclude accepts matching documents.
	OnMatchInclude OnMatch = iota

	// OnMatchExclude rejects matching documents.
	OnMatchExclude
)

// ParseOnMatch parses an onMatch configuration token.
// Blank defaults to include.
func ParseOnMatch(s string) (OnMatch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "include":
		return OnMatchInclude, nil
	case "exclude":
		return OnMatchExclude, nil
	default:
		return OnMatchInclude, fmt.Errorf("%w: unknown onMatch %q", ErrInvalidConfig, s)
	}
}

// String returns the configuration token.
func (o OnMatch) String() string {
	if o == OnMatchExclude {
		return "exclude"
	}
	return "include"
}

// MarshalText implements encoding.TextMarshaler.
func (o OnMatch) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OnMatch) UnmarshalText(text []byte) error {
	parsed, err := ParseOnMatch(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
