// Package cli provides the cobra command tree for sercha-importer.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-importer/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-importer/internal/logger"
)

// ServiceOptions carries the global flags services are built from.
type ServiceOptions struct {
	// ConfigPath is the handler chain file. Empty means none was given.
	ConfigPath string

	// StorePath is the result database. Empty disables recording.
	StorePath string
}

// ImportServiceFactory builds an import service.
type ImportServiceFactory func(opts ServiceOptions) (driving.ImportService, error)

// ResultServiceFactory builds a result service.
type ResultServiceFactory func(opts ServiceOptions) (driving.ResultService, error)

var (
	version = "dev"

	verbose    bool
	configPath string
	storePath  string

	importService        driving.ImportService
	importServiceFactory ImportServiceFactory
	resultService        driving.ResultService
	resultServiceFactory ResultServiceFactory
)

var rootCmd = &cobra.Command{
	Use:   "sercha-importer",
	Short: "Run documents through a configurable handler chain",
	Long: `sercha-importer runs documents through a chain of filters, taggers and
transformers. Filters accept or reject documents, taggers extract metadata
from content, and transformers rewrite content.

The chain is read from a TOML or YAML configuration file given with --config.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "handler chain configuration file (.toml, .yaml)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "SQLite database recording import results")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetImportServiceFactory sets how commands build the import service.
func SetImportServiceFactory(f ImportServiceFactory) {
	importServiceFactory = f
}

// SetImportService sets a ready-made import service, bypassing the factory.
func SetImportService(s driving.ImportService) {
	importService = s
}

// SetResultServiceFactory sets how commands build the result service.
func SetResultServiceFactory(f ResultServiceFactory) {
	resultServiceFactory = f
}

// SetResultService sets a ready-made result service, bypassing the factory.
func SetResultService(s driving.ResultService) {
	resultService = s
}

func serviceOptions() ServiceOptions {
	return ServiceOptions{ConfigPath: configPath, StorePath: storePath}
}

// resolveImportService returns the configured import service.
func resolveImportService() (driving.ImportService, error) {
	if importService != nil {
		return importService, nil
	}
	if importServiceFactory == nil {
		return nil, errors.New("import service not configured")
	}
	return importServiceFactory(serviceOptions())
}

// resolveResultService returns the configured result service.
func resolveResultService() (driving.ResultService, error) {
	if resultService != nil {
		return resultService, nil
	}
	if storePath == "" {
		return nil, errors.New("--store is required")
	}
	if resultServiceFactory == nil {
		return nil, errors.New("result service not configured")
	}
	return resultServiceFactory(serviceOptions())
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
