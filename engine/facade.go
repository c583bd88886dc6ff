package engine

import (
	"flint/compiled"
	"flint/compiler"
	"flint/errs"
	"flint/parser"
	"flint/types"
)

// Compile parses and compiles src once, against h's registry (or the
// default Handle when h is nil), serving from the shared compilation
// cache when the handle has caching enabled. Compile-time errors are
// never cached, per spec.md §7, so a caller can retry after fixing the
// registry without first clearing anything.
func Compile(src string, h *Handle) (*compiled.Expr, *errs.Error) {
	h = resolveHandle(h)

	if h.CacheEnabled {
		if cached, ok := sharedCache.Get(h.Registry.ID(), src); ok {
			return cached, nil
		}
	}

	node, perr := parser.Parse(src)
	if perr != nil {
		return nil, perr
	}
	expr, cerr := compiler.Compile(node, h.Registry)
	if cerr != nil {
		return nil, cerr
	}

	sharedCache.Put(h.Registry.ID(), src, expr, h.CacheEnabled, h.CacheLimit)
	return expr, nil
}

// Eval compiles (via cache) then applies src against scope.
func Eval(src string, scope types.Value, h *Handle) (types.Value, *errs.Error) {
	expr, cerr := Compile(src, h)
	if cerr != nil {
		return nil, cerr
	}
	return expr.Apply(scope)
}

// Validate compiles and discards the result, reporting only whether src
// compiles against h's registry.
func Validate(src string, h *Handle) *errs.Error {
	_, cerr := Compile(src, h)
	return cerr
}

// MustCompile is Compile's "bang" variant: it panics with the *errs.Error
// instead of returning it, per spec.md §4.I.
func MustCompile(src string, h *Handle) *compiled.Expr {
	expr, err := Compile(src, h)
	if err != nil {
		panic(err)
	}
	return expr
}

// MustEval is Eval's "bang" variant.
func MustEval(src string, scope types.Value, h *Handle) types.Value {
	v, err := Eval(src, scope, h)
	if err != nil {
		panic(err)
	}
	return v
}

// MustValidate is Validate's "bang" variant.
func MustValidate(src string, h *Handle) {
	if err := Validate(src, h); err != nil {
		panic(err)
	}
}
