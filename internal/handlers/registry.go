// Package handlers builds the import handler chain from configuration.
package handlers

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driven"
)

// Handler is a built handler.
type Handler = driven.Handler

// BuilderFunc creates a Handler from its configuration.
type BuilderFunc func(cfg domain.HandlerConfig) (Handler, error)

// Registry maps handler types to their builders.
// It allows dynamic construction of handlers from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new handler registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a handler builder to the registry.
// Type should be unique and match the handler's configuration type name.
func (r *Registry) Register(handlerType string, builder BuilderFunc) {
	r.builders[handlerType] = builder
}

// Build creates a handler from cfg.
// Returns domain.ErrUnsupportedType if the type is not registered.
func (r *Registry) Build(cfg domain.HandlerConfig) (Handler, error) {
	builder, ok := r.builders[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("%w: handler %q", domain.ErrUnsupportedType, cfg.Type)
	}
	h, err := builder(cfg)
	if err != nil {
		return nil, fmt.Errorf("handler %s: %w", cfg.DisplayName(), err)
	}
	return h, nil
}

// BuildAll creates every configured handler, in order.
// The first failure stops the build.
func (r *Registry) BuildAll(cfgs []domain.HandlerConfig) ([]Handler, error) {
	out := make([]Handler, 0, len(cfgs))
	for i, cfg := range cfgs {
		h, err := r.Build(cfg)
		if err != nil {
			return nil, fmt.Errorf("handlers[%d]: %w", i, err)
		}
		out = append(out, h)
	}
	return out, nil
}

// Has returns true if a handler type is registered.
func (r *Registry) Has(handlerType string) bool {
	_, ok := r.builders[handlerType]
	return ok
}

// Types returns all registered handler types, sorted.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.builders))
	for t := range r.builders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
