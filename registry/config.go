package registry

import (
	"github.com/go-playground/validator/v10"
)

// Config is the declarative, YAML-friendly shape callers assemble a
// Registry from: named builtin extension packs plus cache settings,
// operationalizing spec.md §6's "Registry declaration" interface for
// hosts that configure via file rather than code.
type Config struct {
	// Packs names the builtin extension packs to enable, e.g. "math",
	// "string", "util", "crypto". See builtins.Pack.
	Packs []string `yaml:"packs" validate:"required,min=1,dive,oneof=math string util crypto"`
	// CacheEnabled mirrors spec.md §4.G's per-registry "enabled" flag.
	CacheEnabled *bool `yaml:"cache_enabled"`
	// CacheLimit mirrors spec.md §4.G's per-registry "limit"; must be
	// positive when set.
	CacheLimit int `yaml:"cache_limit" validate:"omitempty,gt=0"`
}

var validate = validator.New()

// Validate checks Config against its struct tags, returning a
// *validator.ValidationErrors-wrapping error on failure.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// CacheEnabledOrDefault returns CacheEnabled's value, defaulting to true
// per spec.md §4.G when unset.
func (c Config) CacheEnabledOrDefault() bool {
	if c.CacheEnabled == nil {
		return true
	}
	return *c.CacheEnabled
}

// CacheLimitOrDefault returns CacheLimit, defaulting to 1000 per spec.md
// §4.G when unset (zero).
func (c Config) CacheLimitOrDefault() int {
	if c.CacheLimit == 0 {
		return 1000
	}
	return c.CacheLimit
}
