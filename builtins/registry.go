// Package builtins provides the engine's reference function library:
// spec.md's Appendix math/string/utility functions plus the
// SPEC_FULL.md-supplemented crypto pack, grouped into named packs so a
// host can assemble a registry.Registry from only the packs it wants
// (registry.Config.Packs).
package builtins

import (
	"fmt"

	"flint/registry"
)

// Pack names the four builtin extension packs a registry.Config can
// select. Matches the "oneof=math string util crypto" validator tag on
// registry.Config.Packs.
const (
	PackMath   = "math"
	PackString = "string"
	PackUtil   = "util"
	PackCrypto = "crypto"
)

// AllPacks lists every pack name, in the same order All() concatenates
// them.
var AllPacks = []string{PackMath, PackString, PackUtil, PackCrypto}

// Pack returns the FunctionImpls for one named pack.
func Pack(name string) ([]registry.FunctionImpl, error) {
	switch name {
	case PackMath:
		return mathPack(), nil
	case PackString:
		return stringPack(), nil
	case PackUtil:
		return utilPack(), nil
	case PackCrypto:
		return cryptoPack(), nil
	default:
		return nil, fmt.Errorf("builtins: unknown pack %q", name)
	}
}

// Packs concatenates the named packs, in the order given, for use as the
// defaults argument to registry.New.
func Packs(names []string) ([]registry.FunctionImpl, error) {
	var funcs []registry.FunctionImpl
	for _, name := range names {
		pack, err := Pack(name)
		if err != nil {
			return nil, err
		}
		funcs = append(funcs, pack...)
	}
	return funcs, nil
}

// All returns every builtin in every pack, the convenience default for a
// host that wants the full reference library with no YAML config.
func All() []registry.FunctionImpl {
	funcs, _ := Packs(AllPacks)
	return funcs
}
