package builtins

import (
	"errors"
	"strings"

	"flint/registry"
	"flint/types"
)

// ============================================================================
// STRING PACK
// ============================================================================

// stringPack is the reference string function library from spec.md's
// Appendix: len, left, right, substring, upper, lower, trim, concat,
// textjoin, replace, find, contains, normalize.
func stringPack() []registry.FunctionImpl {
	return []registry.FunctionImpl{
		{Name: "len", Arity: registry.FixedArity(1), Invoke: builtinLen},
		{Name: "left", Arity: registry.FixedArity(2), Invoke: builtinLeft},
		{Name: "right", Arity: registry.FixedArity(2), Invoke: builtinRight},
		{Name: "substring", Arity: registry.AnyArity(), Invoke: builtinSubstring},
		{Name: "upper", Arity: registry.FixedArity(1), Invoke: oneStringFn(strings.ToUpper)},
		{Name: "lower", Arity: registry.FixedArity(1), Invoke: oneStringFn(strings.ToLower)},
		{Name: "trim", Arity: registry.FixedArity(1), Invoke: oneStringFn(strings.TrimSpace)},
		{Name: "concat", Arity: registry.AnyArity(), Invoke: builtinConcat},
		{Name: "textjoin", Arity: registry.AnyArity(), Invoke: builtinTextjoin},
		{Name: "replace", Arity: registry.FixedArity(3), Invoke: builtinReplace},
		{Name: "find", Arity: registry.FixedArity(2), Invoke: builtinFind},
		{Name: "contains", Arity: registry.FixedArity(2), Invoke: builtinContains},
		{Name: "normalize", Arity: registry.FixedArity(1), Invoke: builtinNormalize},
	}
}

var errNotString = errors.New("argument is not a string")

func asString(v types.Value) (string, bool) {
	s, ok := v.(types.StringValue)
	if !ok {
		return "", false
	}
	return s.Val, true
}

// oneStringFn adapts a plain string->string transform into a
// registry.Invoke.
func oneStringFn(f func(string) string) registry.Invoke {
	return func(args []types.Value) (types.Value, error) {
		s, ok := asString(args[0])
		if !ok {
			return nil, errNotString
		}
		return types.NewString(f(s)), nil
	}
}

// len(value) -> int; works on both String (rune count) and List, since
// spec.md's Appendix lists len alongside the string pack but the teacher's
// analogous builtin (length) is polymorphic over string/list too.
func builtinLen(args []types.Value) (types.Value, error) {
	switch v := args[0].(type) {
	case types.StringValue:
		return types.NewInt(int64(len([]rune(v.Val)))), nil
	case types.ListValue:
		return types.NewInt(int64(v.Len())), nil
	default:
		return nil, errors.New("len requires a string or list")
	}
}

// left(s, n) -> string, the leftmost n runes of s (clamped to len(s)).
func builtinLeft(args []types.Value) (types.Value, error) {
	s, ok := asString(args[0])
	if !ok {
		return nil, errNotString
	}
	n, ok := types.AsInt64(args[1])
	if !ok {
		return nil, errors.New("left requires an integer count")
	}
	runes := []rune(s)
	if n < 0 {
		n = 0
	}
	if int(n) > len(runes) {
		n = int64(len(runes))
	}
	return types.NewString(string(runes[:n])), nil
}

// right(s, n) -> string, the rightmost n runes of s (clamped to len(s)).
func builtinRight(args []types.Value) (types.Value, error) {
	s, ok := asString(args[0])
	if !ok {
		return nil, errNotString
	}
	n, ok := types.AsInt64(args[1])
	if !ok {
		return nil, errors.New("right requires an integer count")
	}
	runes := []rune(s)
	if n < 0 {
		n = 0
	}
	if int(n) > len(runes) {
		n = int64(len(runes))
	}
	return types.NewString(string(runes[len(runes)-int(n):])), nil
}

// substring(s, start [, len]) -> string, 0-based start; omitted len runs
// to the end of s.
func builtinSubstring(args []types.Value) (types.Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, errors.New("substring takes 2 or 3 arguments")
	}
	s, ok := asString(args[0])
	if !ok {
		return nil, errNotString
	}
	start, ok := types.AsInt64(args[1])
	if !ok || start < 0 {
		return nil, errors.New("substring requires a non-negative start")
	}
	runes := []rune(s)
	if int(start) > len(runes) {
		return types.NewString(""), nil
	}
	end := len(runes)
	if len(args) == 3 {
		n, ok := types.AsInt64(args[2])
		if !ok || n < 0 {
			return nil, errors.New("substring requires a non-negative length")
		}
		if int(start)+int(n) < end {
			end = int(start) + int(n)
		}
	}
	return types.NewString(string(runes[start:end])), nil
}

// concat(v1, v2, ...) -> string, coercing every argument via its own
// String() representation, so a non-string argument is simply formatted
// rather than rejected (distinct from textjoin, which requires a string
// separator but likewise formats its operands).
func builtinConcat(args []types.Value) (types.Value, error) {
	var b strings.Builder
	for _, a := range args {
		b.WriteString(a.String())
	}
	return types.NewString(b.String()), nil
}

// textjoin(sep, v1, v2, ...) -> string
func builtinTextjoin(args []types.Value) (types.Value, error) {
	if len(args) == 0 {
		return nil, errors.New("textjoin requires a separator")
	}
	sep, ok := asString(args[0])
	if !ok {
		return nil, errNotString
	}
	parts := make([]string, 0, len(args)-1)
	for _, a := range args[1:] {
		parts = append(parts, a.String())
	}
	return types.NewString(strings.Join(parts, sep)), nil
}

// replace(s, old, new) -> string
func builtinReplace(args []types.Value) (types.Value, error) {
	s, ok1 := asString(args[0])
	old, ok2 := asString(args[1])
	newS, ok3 := asString(args[2])
	if !ok1 || !ok2 || !ok3 {
		return nil, errNotString
	}
	return types.NewString(strings.ReplaceAll(s, old, newS)), nil
}

// find(needle, hay) -> int, 0-based index of the first occurrence, or -1.
func builtinFind(args []types.Value) (types.Value, error) {
	needle, ok1 := asString(args[0])
	hay, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, errNotString
	}
	runeIdx := strings.Index(hay, needle)
	if runeIdx < 0 {
		return types.NewInt(-1), nil
	}
	return types.NewInt(int64(len([]rune(hay[:runeIdx])))), nil
}

// contains(s, sub) -> bool
func builtinContains(args []types.Value) (types.Value, error) {
	s, ok1 := asString(args[0])
	sub, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, errNotString
	}
	return types.NewBool(strings.Contains(s, sub)), nil
}

// normalize(s) -> string, downcased with spaces replaced by underscores --
// spec.md's Appendix describes this exactly as a slug-like normalization,
// used for turning a free-text label into a stable map/struct key.
func builtinNormalize(args []types.Value) (types.Value, error) {
	s, ok := asString(args[0])
	if !ok {
		return nil, errNotString
	}
	return types.NewString(strings.ReplaceAll(strings.ToLower(s), " ", "_")), nil
}
