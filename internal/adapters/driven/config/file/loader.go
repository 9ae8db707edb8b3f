package file

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driven"
)

// Ensure ConfigLoader implements the interface.
var _ driven.ConfigLoader = (*ConfigLoader)(nil)

// Format is a configuration file format.
type Format string

const (
	// FormatTOML is the default format.
	FormatTOML Format = "toml"

	// FormatYAML is accepted for .yaml and .yml files.
	FormatYAML Format = "yaml"
)

// FormatOf returns the format implied by the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unsupported config file %q (want .toml, .yaml or .yml)", domain.ErrInvalidConfig, path)
	}
}

// ConfigLoader reads and writes importer configuration files.
type ConfigLoader struct{}

// NewConfigLoader creates a config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// Load reads the configuration at path.
// A missing file is reported as domain.ErrNotFound.
func (l *ConfigLoader) Load(path string) (*domain.ImporterConfig, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: config file %s", domain.ErrNotFound, path)
		}
		return nil, err
	}
	cfg, err := Unmarshal(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func (l *ConfigLoader) Save(path string, cfg *domain.ImporterConfig) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Marshal(cfg, format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	// Write with restricted permissions
	return os.WriteFile(path, data, 0600)
}

// Marshal encodes cfg in the given format.
func Marshal(cfg *domain.ImporterConfig, format Format) ([]byte, error) {
	if cfg == nil {
		cfg = &domain.ImporterConfig{}
	}
	switch format {
	case FormatTOML:
		return toml.Marshal(cfg)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", domain.ErrInvalidConfig, format)
	}
}

// Unmarshal decodes a configuration. Unknown keys are rejected so typos
// in handler attributes do not pass silently.
func Unmarshal(data []byte, format Format) (*domain.ImporterConfig, error) {
	var cfg domain.ImporterConfig
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %q", domain.ErrInvalidConfig, format)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: workers must not be negative", domain.ErrInvalidConfig)
	}
	return &cfg, nil
}
