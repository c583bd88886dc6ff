// Package compiled holds the artifact the compiler produces (Expr) and
// the runtime evaluation semantics spec.md §4.F describes: scope
// resolution, access dispatch, and spread machinery. There is no separate
// package for §4.F because its only observable surface is Expr.Apply.
package compiled

import (
	"flint/errs"
	"flint/types"
)

// Interpretable is one compiled node: a closure over an already-resolved
// plan (literal values embedded, functions resolved, arities checked) that
// evaluates against a scope. Building the tree out of closures rather than
// a node-and-switch walker means Apply does no further dispatch work
// beyond what each expression logically requires, matching §5's
// allocation discipline.
type Interpretable func(scope types.Value) (types.Value, *errs.Error)

// Expr is the compiler's output: a reusable, concurrency-safe compiled
// expression. A single Expr may be invoked from many goroutines
// concurrently against distinct scopes; it holds no mutable state.
type Expr struct {
	run Interpretable
}

// New wraps an already-planned Interpretable as an Expr. Outside tests,
// only the compiler package calls this.
func New(run Interpretable) *Expr {
	return &Expr{run: run}
}

// Apply evaluates the compiled expression against scope.
func (e *Expr) Apply(scope types.Value) (types.Value, *errs.Error) {
	return e.run(scope)
}

// notFoundValue is the internal "not found" sentinel: a unique type,
// never exported, guaranteed never to collide with any value a host or
// expression could produce (a user value that happens to equal a
// well-known "miss" string, e.g. "not_found", is never mistaken for this
// marker, because this marker isn't a string at all). Grounded on the
// teacher's types.UnboundValue, which plays the same "impossible user
// value" role for declared-but-unbound MOO locals -- the teacher exports
// it; here it stays private to this package, since the engine's public
// surface never returns it.
type notFoundValue struct{}

func (notFoundValue) Type() types.TypeCode { return types.TypeCode(-1) }
func (notFoundValue) String() string       { return "<not-found>" }
func (notFoundValue) Truthy() bool         { return false }
func (notFoundValue) Equal(o types.Value) bool {
	_, ok := o.(notFoundValue)
	return ok
}

var notFound types.Value = notFoundValue{}

func isNotFound(v types.Value) bool {
	_, ok := v.(notFoundValue)
	return ok
}
