package builtins

import (
	"errors"

	"flint/registry"
	"flint/types"
)

// ============================================================================
// UTILITY PACK
// ============================================================================

// utilPack is the reference utility function library from spec.md's
// Appendix: if, ifnull, coalesce, switch, and, or, lookup.
func utilPack() []registry.FunctionImpl {
	return []registry.FunctionImpl{
		{Name: "if", Arity: registry.FixedArity(3), Invoke: builtinIf},
		{Name: "ifnull", Arity: registry.FixedArity(2), Invoke: builtinIfnull},
		{Name: "coalesce", Arity: registry.AnyArity(), Invoke: builtinCoalesce},
		{Name: "switch", Arity: registry.AnyArity(), Invoke: builtinSwitch},
		{Name: "and", Arity: registry.AnyArity(), Invoke: builtinAnd},
		{Name: "or", Arity: registry.AnyArity(), Invoke: builtinOr},
		{Name: "lookup", Arity: registry.AnyArity(), Invoke: builtinLookup},
	}
}

// if(cond, t, f) -> Value. Unlike the grammar's own ternary operator, this
// is a plain function: both t and f are already-evaluated arguments (the
// compiler has no special case for this call, unlike Ternary), so neither
// branch short-circuits -- a host wanting short-circuiting conditional
// evaluation should use `cond ? t : f` instead.
func builtinIf(args []types.Value) (types.Value, error) {
	if args[0].Truthy() {
		return args[1], nil
	}
	return args[2], nil
}

// ifnull(v, d) -> v, or d if v is Null.
func builtinIfnull(args []types.Value) (types.Value, error) {
	if args[0].Type() == types.TYPE_NULL {
		return args[1], nil
	}
	return args[0], nil
}

// coalesce(v1, v2, ...) -> the first non-Null argument, or Null if every
// argument is Null.
func builtinCoalesce(args []types.Value) (types.Value, error) {
	for _, a := range args {
		if a.Type() != types.TYPE_NULL {
			return a, nil
		}
	}
	return types.Null, nil
}

// switch(expr, c1, v1, c2, v2, ..., [default]) -> the value vi of the
// first ci equal to expr, or the trailing default if none match and an
// odd argument remains, else Null.
func builtinSwitch(args []types.Value) (types.Value, error) {
	if len(args) < 1 {
		return nil, errors.New("switch requires at least an expr argument")
	}
	expr := args[0]
	rest := args[1:]
	i := 0
	for ; i+1 < len(rest); i += 2 {
		if expr.Equal(rest[i]) {
			return rest[i+1], nil
		}
	}
	if i < len(rest) {
		return rest[i], nil
	}
	return types.Null, nil
}

// and(v1, v2, ...) -> bool, true iff every argument is truthy. Like if,
// this is a plain eager function -- the grammar's own && operator is what
// short-circuits.
func builtinAnd(args []types.Value) (types.Value, error) {
	for _, a := range args {
		if !a.Truthy() {
			return types.NewBool(false), nil
		}
	}
	return types.NewBool(true), nil
}

// or(v1, v2, ...) -> bool, true iff at least one argument is truthy.
func builtinOr(args []types.Value) (types.Value, error) {
	for _, a := range args {
		if a.Truthy() {
			return types.NewBool(true), nil
		}
	}
	return types.NewBool(false), nil
}

// lookup(coll, key [, default]) -> Value, a uniform accessor over List
// (Int key), Map and Struct (String key) that returns default (or Null)
// instead of erroring on a miss -- a function-call alternative to
// Access(target, key) for callers building the key dynamically from
// another builtin's result rather than the parser's own `[key]` syntax.
func builtinLookup(args []types.Value) (types.Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, errors.New("lookup takes 2 or 3 arguments")
	}
	def := types.Value(types.Null)
	if len(args) == 3 {
		def = args[2]
	}
	switch coll := args[0].(type) {
	case types.ListValue:
		idx, ok := types.AsInt64(args[1])
		if !ok {
			return def, nil
		}
		if v, ok := coll.At(int(idx)); ok {
			return v, nil
		}
		return def, nil
	case types.MapValue:
		key, ok := asString(args[1])
		if !ok {
			return def, nil
		}
		if v, ok := coll.Get(key); ok {
			return v, nil
		}
		return def, nil
	case types.StructValue:
		key, ok := asString(args[1])
		if !ok {
			return def, nil
		}
		if v, ok := coll.Lookup(key); ok {
			return v, nil
		}
		return def, nil
	default:
		return def, nil
	}
}
