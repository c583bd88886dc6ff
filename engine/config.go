package engine

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"flint/registry"
)

// LoadRegistryConfig reads a YAML document at path describing which
// builtin packs to enable and the per-registry cache settings (the same
// shape conformance/loader.go already reads YAML test suites with), and
// builds a Handle from it. There is no plugin list in the YAML form --
// code-level custom FunctionImpls are supplied programmatically via
// NewHandle instead, since a Go closure has no YAML representation.
func LoadRegistryConfig(path string) (*Handle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "engine: reading registry config %s", path)
	}
	var cfg registry.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "engine: parsing registry config %s", path)
	}
	return NewHandle(nil, cfg)
}
