package handlers

import (
	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/filters/content"
	"github.com/custodia-labs/sercha-importer/internal/filters/keyword"
	"github.com/custodia-labs/sercha-importer/internal/filters/metadata"
	"github.com/custodia-labs/sercha-importer/internal/taggers/between"
	"github.com/custodia-labs/sercha-importer/internal/taggers/pattern"
	"github.com/custodia-labs/sercha-importer/internal/transformers/charset"
	"github.com/custodia-labs/sercha-importer/internal/transformers/striptags"
)

// RegisterDefaults registers all built-in handlers with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(pattern.Type, adapt(pattern.FromConfig))
	r.Register(between.Type, adapt(between.FromConfig))
	r.Register(content.Type, adapt(content.FromConfig))
	r.Register(metadata.Type, adapt(metadata.FromConfig))
	r.Register(keyword.Type, adapt(keyword.FromConfig))
	r.Register(charset.Type, adapt(charset.FromConfig))
	r.Register(striptags.Type, adapt(striptags.FromConfig))
}

// DefaultRegistry returns a registry holding the built-in handlers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// adapt turns a typed constructor into a BuilderFunc.
func adapt[H Handler](build func(domain.HandlerConfig) (H, error)) BuilderFunc {
	return func(cfg domain.HandlerConfig) (Handler, error) {
		h, err := build(cfg)
		if err != nil {
			return nil, err
		}
		return h, nil
	}
}
