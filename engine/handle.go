// Package engine is flint's public façade: eval/compile/validate over an
// expression source string and a registry Handle, per spec.md §4.I.
package engine

import (
	"sync"

	"flint/builtins"
	"flint/cache"
	"flint/registry"
)

// Handle pairs a frozen Registry with the per-registry cache settings
// spec.md §6's "Registry declaration" describes ({plugins, cache_enabled?,
// cache_limit?}) -- Registry itself only carries function identity (see
// registry.Registry), so Handle is where the cache knobs actually live.
type Handle struct {
	Registry     *registry.Registry
	CacheEnabled bool
	CacheLimit   int
}

var sharedCache = cache.New()

var (
	defaultOnce   sync.Once
	defaultHandle *Handle
)

// DefaultHandle returns the lazily-built default registry handle used by
// every façade call that passes a nil Handle -- spec.md's "the engine
// ships a default registry (id = None)" sentinel, realized here as one
// process-wide Handle reused across calls rather than a fresh registry
// (and therefore a fresh cache partition) minted per call.
func DefaultHandle() *Handle {
	defaultOnce.Do(func() {
		defaultHandle = &Handle{
			Registry:     registry.New(builtins.All(), nil),
			CacheEnabled: true,
			CacheLimit:   1000,
		}
	})
	return defaultHandle
}

// NewHandle builds a custom Handle from a registry.Config (selecting
// builtin packs and cache settings) plus an optional plugin list that
// overrides pack builtins by name, per spec.md §4.D's "plugin > default"
// resolution order.
func NewHandle(plugins []registry.FunctionImpl, cfg registry.Config) (*Handle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	packFuncs, err := builtins.Packs(cfg.Packs)
	if err != nil {
		return nil, err
	}
	return &Handle{
		Registry:     registry.New(packFuncs, plugins),
		CacheEnabled: cfg.CacheEnabledOrDefault(),
		CacheLimit:   cfg.CacheLimitOrDefault(),
	}, nil
}

func resolveHandle(h *Handle) *Handle {
	if h == nil {
		return DefaultHandle()
	}
	return h
}
