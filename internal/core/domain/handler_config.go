package domain

// MatcherConfig describes a text matcher as found in configuration files.
type MatcherConfig struct {
	// Method is one of "basic" (exact), "regex" or "wildcard". Blank is basic.
	Method string `toml:"method,omitempty" yaml:"method,omitempty" json:"method,omitempty"`

	// Pattern is the text, expression or wildcard to match.
	Pattern string `toml:"pattern" yaml:"pattern" json:"pattern"`

	// IgnoreCase makes the match case-insensitive.
	IgnoreCase bool `toml:"ignoreCase,omitempty" yaml:"ignoreCase,omitempty" json:"ignoreCase,omitempty"`

	// Partial matches anywhere in the text instead of the whole text.
	Partial bool `toml:"partial,omitempty" yaml:"partial,omitempty" json:"partial,omitempty"`
}

// RestrictionConfig is a field matcher and value matcher pair.
type RestrictionConfig struct {
	Field MatcherConfig `toml:"field" yaml:"field" json:"field"`
	Value MatcherConfig `toml:"value" yaml:"value" json:"value"`
}

// PatternConfig configures one pattern extraction rule.
type PatternConfig struct {
	// Field receives the extracted values. Required unless KeyGroup is set.
	Field string `toml:"field,omitempty" yaml:"field,omitempty" json:"field,omitempty"`

	// Match is the regular expression.
	Match string `toml:"match" yaml:"match" json:"match"`

	// ValueGroup selects the capture group holding the value. 0 is the whole match.
	ValueGroup int `toml:"valueGroup,omitempty" yaml:"valueGroup,omitempty" json:"valueGroup,omitempty"`

	// KeyGroup selects the capture group holding the field name. 0 uses Field.
	KeyGroup int `toml:"keyGroup,omitempty" yaml:"keyGroup,omitempty" json:"keyGroup,omitempty"`

	CaseSensitive bool `toml:"caseSensitive,omitempty" yaml:"caseSensitive,omitempty" json:"caseSensitive,omitempty"`
}

// EndpointConfig configures one start/end delimited extraction rule.
type EndpointConfig struct {
	Field string `toml:"field" yaml:"field" json:"field"`
	Start string `toml:"start" yaml:"start" json:"start"`
	End   string `toml:"end" yaml:"end" json:"end"`
}

// HandlerConfig configures a single handler in the import chain.
// Which attributes apply depends on Type.
type HandlerConfig struct {
	// Type selects the handler implementation, e.g. "TextPatternTagger".
	Type string `toml:"type" yaml:"type" json:"type"`

	// Name is used in logs and errors. Defaults to Type.
	Name string `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`

	// RestrictTo limits the documents the handler applies to.
	RestrictTo []RestrictionConfig `toml:"restrictTo,omitempty" yaml:"restrictTo,omitempty" json:"restrictTo,omitempty"`

	// OnMatch is the filter policy, "include" or "exclude".
	OnMatch string `toml:"onMatch,omitempty" yaml:"onMatch,omitempty" json:"onMatch,omitempty"`

	// MaxReadSize bounds how many characters of content are scanned. 0 is unbounded.
	MaxReadSize int `toml:"maxReadSize,omitempty" yaml:"maxReadSize,omitempty" json:"maxReadSize,omitempty"`

	// Charset overrides charset detection for unparsed content.
	Charset string `toml:"charset,omitempty" yaml:"charset,omitempty" json:"charset,omitempty"`

	CaseSensitive bool `toml:"caseSensitive,omitempty" yaml:"caseSensitive,omitempty" json:"caseSensitive,omitempty"`
	Inclusive     bool `toml:"inclusive,omitempty" yaml:"inclusive,omitempty" json:"inclusive,omitempty"`

	Patterns  []PatternConfig  `toml:"patterns,omitempty" yaml:"patterns,omitempty" json:"patterns,omitempty"`
	Endpoints []EndpointConfig `toml:"endpoints,omitempty" yaml:"endpoints,omitempty" json:"endpoints,omitempty"`
	Keywords  []string         `toml:"keywords,omitempty" yaml:"keywords,omitempty" json:"keywords,omitempty"`

	// Criteria are the metadata rules a MetadataFilter tests.
	Criteria []RestrictionConfig `toml:"criteria,omitempty" yaml:"criteria,omitempty" json:"criteria,omitempty"`
}

// DisplayName returns Name, falling back to Type.
func (c HandlerConfig) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Type
}

// ImporterConfig is the top-level import configuration.
type ImporterConfig struct {
	// Workers bounds how many documents are imported concurrently.
	Workers int `toml:"workers,omitempty" yaml:"workers,omitempty" json:"workers,omitempty"`

	// Handlers run in order for every document.
	Handlers []HandlerConfig `toml:"handlers" yaml:"handlers" json:"handlers"`
}
