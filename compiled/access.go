package compiled

import (
	"flint/errs"
	"flint/types"
)

// ResolveVar implements spec.md §4.F's GetVar resolution order:
//  1. treat scope as a map and look up name as a string key;
//  2. if that misses and scope is a Struct, try the struct's own
//     existing-keys-only lookup;
//  3. otherwise a runtime error naming the variable.
func ResolveVar(scope types.Value, name string) (types.Value, *errs.Error) {
	if v, ok := lookupMapLike(scope, name); ok {
		return v, nil
	}
	if s, ok := scope.(types.StructValue); ok {
		if v, ok := s.Lookup(name); ok {
			return v, nil
		}
	}
	return nil, errs.NewRuntime("variable not found: " + name)
}

func lookupMapLike(scope types.Value, name string) (types.Value, bool) {
	switch s := scope.(type) {
	case types.MapValue:
		return s.Get(name)
	case types.StructValue:
		// A Struct is also addressable as "a map keyed by its own
		// field names" for step 1's string lookup -- the two steps
		// of §4.F collapse into one for Struct, since its Lookup is
		// already the existing-keys-only string lookup step 2 wants.
		return s.Lookup(name)
	default:
		return nil, false
	}
}

// ResolveAccess implements Access(target, key) dispatch for top-level
// (non-spread) access: List+Int -> indexed element, Struct -> member
// lookup, any other map-like -> keyed lookup. A miss of any kind reports
// the same "Access failed: key not found" runtime error, per spec.md
// §4.E's "only the sentinel triggers a runtime error" wording.
func ResolveAccess(target, key types.Value) (types.Value, *errs.Error) {
	v := rawAccess(target, key)
	if isNotFound(v) {
		return nil, errs.NewRuntime("Access failed: key not found")
	}
	return v, nil
}

// resolveAccessLenient is the per-element access used inside a Spread
// tail: a miss yields Null instead of a runtime error, keeping aggregates
// forgiving (spec.md §4.E).
func resolveAccessLenient(target, key types.Value) types.Value {
	v := rawAccess(target, key)
	if isNotFound(v) {
		return types.Null
	}
	return v
}

// rawAccess returns notFound (never exposed outside this package) instead
// of erroring, so both the strict and lenient callers above can share one
// dispatch implementation.
func rawAccess(target, key types.Value) types.Value {
	switch t := target.(type) {
	case types.ListValue:
		idx, ok := types.AsInt64(key)
		if !ok {
			return notFound
		}
		v, ok := t.At(int(idx))
		if !ok {
			return notFound
		}
		return v
	case types.StructValue:
		name, ok := key.(types.StringValue)
		if !ok {
			return notFound
		}
		v, ok := t.Lookup(name.Val)
		if !ok {
			return notFound
		}
		return v
	case types.MapValue:
		name, ok := key.(types.StringValue)
		if !ok {
			return notFound
		}
		v, ok := t.Get(name.Val)
		if !ok {
			return notFound
		}
		return v
	default:
		return notFound
	}
}
