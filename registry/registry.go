// Package registry implements the engine's frozen function table: built
// once at construction from (defaults ∪ plugins), with a stable identity
// used to key the compile cache.
package registry

import (
	"strconv"

	"github.com/google/uuid"

	"flint/types"
)

// Arity describes how many arguments a function accepts. A Fixed arity is
// validated by the compiler at compile time; Any defers all argument-count
// checking to the function body itself.
type Arity struct {
	Fixed int  // valid only when IsAny is false
	IsAny bool
}

// FixedArity returns an Arity requiring exactly n arguments.
func FixedArity(n int) Arity { return Arity{Fixed: n} }

// AnyArity returns an Arity accepting any number of arguments.
func AnyArity() Arity { return Arity{IsAny: true} }

// Accepts reports whether n arguments satisfy this arity.
func (a Arity) Accepts(n int) bool {
	return a.IsAny || a.Fixed == n
}

func (a Arity) String() string {
	if a.IsAny {
		return "any"
	}
	return strconv.Itoa(a.Fixed)
}

// Invoke is a function plugin's body. It receives already-evaluated
// arguments and returns a Value or an error (which compiled.Apply wraps
// via errs.Wrap unless it is already an *errs.Error).
type Invoke func(args []types.Value) (types.Value, error)

// FunctionImpl is one entry in a Registry: the spec's {name, arity,
// invoke} function contract.
type FunctionImpl struct {
	Name   string
	Arity  Arity
	Invoke Invoke
}

// Registry is a frozen name -> FunctionImpl table with a stable ID. It is
// built once, by New, and never mutated afterward -- concurrent Resolve
// calls need no locking.
type Registry struct {
	id    string
	funcs map[string]FunctionImpl
}

// New builds a Registry from defaults and plugins. Plugins override
// defaults by name (last-writer-wins among plugins, then plugins over
// defaults), per spec.md §4.D's resolution order.
func New(defaults, plugins []FunctionImpl) *Registry {
	funcs := make(map[string]FunctionImpl, len(defaults)+len(plugins))
	for _, fn := range defaults {
		funcs[fn.Name] = fn
	}
	for _, fn := range plugins {
		funcs[fn.Name] = fn
	}
	return &Registry{id: uuid.NewString(), funcs: funcs}
}

// ID is this registry's stable identity, used as half of the cache key.
// The default registry built by engine.DefaultHandle has its own fresh ID just
// like any other -- spec.md's "default registry id is the sentinel
// None/0" is satisfied one level up, in engine, which holds a single
// lazily-built default Registry and reuses it rather than minting a new
// ID per call.
func (r *Registry) ID() string { return r.id }

// Resolve looks up name, returning (impl, true) on a hit.
func (r *Registry) Resolve(name string) (FunctionImpl, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns every registered function name, used by the compiler's
// "did you mean" suggestion search.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	return names
}
