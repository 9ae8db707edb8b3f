package extract

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

// DefaultMatchTimeout bounds a single regex search.
const DefaultMatchTimeout = 5 * time.Second

// Option configures an extractor.
type Option func(*options)

type options struct {
	matchTimeout time.Duration
}

// WithMatchTimeout sets the per-search timeout. Zero or less disables it.
func WithMatchTimeout(d time.Duration) Option {
	return func(o *options) {
		o.matchTimeout = d
	}
}

func newOptions(opts []Option) options {
	o := options{matchTimeout: DefaultMatchTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) compile(expr string, caseSensitive bool) (*regexp2.Regexp, error) {
	flags := regexp2.RegexOptions(regexp2.Singleline)
	if !caseSensitive {
		flags |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(expr, flags)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid pattern %q: %w", domain.ErrInvalidConfig, expr, err)
	}
	if o.matchTimeout > 0 {
		re.MatchTimeout = o.matchTimeout
	}
	return re, nil
}

// maxGroup returns the highest capture group number in re.
func maxGroup(re *regexp2.Regexp) int {
	highest := 0
	for _, n := range re.GetGroupNumbers() {
		if n > highest {
			highest = n
		}
	}
	return highest
}
