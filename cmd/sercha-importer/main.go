// Command sercha-importer runs documents through a configurable chain of
// filters, taggers and transformers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/custodia-labs/sercha-importer/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-importer/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/sercha-importer/internal/adapters/driving/cli"
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-importer/internal/core/services"
	"github.com/custodia-labs/sercha-importer/internal/handlers"
	"github.com/custodia-labs/sercha-importer/internal/logger"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores := &storeCache{}
	cli.SetVersion(version)
	cli.SetImportServiceFactory(func(opts cli.ServiceOptions) (driving.ImportService, error) {
		var store driven.ResultStore
		if opts.StorePath != "" {
			s, err := stores.open(opts.StorePath)
			if err != nil {
				return nil, err
			}
			store = s
		}
		return newImportService(file.NewConfigLoader(), handlers.DefaultRegistry(), opts.ConfigPath, store)
	})
	cli.SetResultServiceFactory(func(opts cli.ServiceOptions) (driving.ResultService, error) {
		store, err := stores.open(opts.StorePath)
		if err != nil {
			return nil, err
		}
		return services.NewResultService(store), nil
	})

	err := cli.ExecuteContext(ctx)
	if cerr := stores.Close(); cerr != nil {
		logger.Warn("closing result store: %v", cerr)
	}
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// storeCache opens the result store at most once per process.
type storeCache struct {
	mu    sync.Mutex
	store *sqlite.Store
}

func (c *storeCache) open(path string) (*sqlite.Store, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store != nil {
		return c.store, nil
	}
	store, err := sqlite.NewStore(path)
	if err != nil {
		return nil, fmt.Errorf("opening result store: %w", err)
	}
	logger.Debug("recording results in %s", store.Path())
	c.store = store
	return store, nil
}

func (c *storeCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		return nil
	}
	err := c.store.Close()
	c.store = nil
	return err
}

// newImportService loads the handler chain from path. Without a path the
// importer runs an empty chain that accepts every document. A non-nil
// store records every result.
func newImportService(loader driven.ConfigLoader, registry *handlers.Registry, path string, store driven.ResultStore) (driving.ImportService, error) {
	var (
		importer *services.Importer
		err      error
	)
	if path == "" {
		logger.Info("no --config given, running an empty handler chain")
		importer, err = services.NewImporter(nil, 0)
	} else {
		importer, err = buildImporter(loader, registry, path)
	}
	if err != nil {
		return nil, err
	}

	if store != nil {
		importer = importer.WithStore(store)
	}
	return importer, nil
}

func buildImporter(loader driven.ConfigLoader, registry *handlers.Registry, path string) (*services.Importer, error) {
	cfg, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	chain, err := registry.BuildAll(cfg.Handlers)
	if err != nil {
		return nil, fmt.Errorf("building handlers: %w", err)
	}
	logger.Debug("loaded %d handlers from %s", len(chain), path)

	return services.NewImporter(chain, cfg.Workers)
}
