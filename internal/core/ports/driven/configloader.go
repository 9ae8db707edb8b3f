package driven

import "github.com/custodia-labs/sercha-importer/internal/core/domain"

// ConfigLoader reads and writes importer configuration files.
// Implementations pick the format from the file extension.
type ConfigLoader interface {
	// Load reads the configuration at path.
	Load(path string) (*domain.ImporterConfig, error)

	// Save writes cfg to path.
	Save(path string, cfg *domain.ImporterConfig) error
}
