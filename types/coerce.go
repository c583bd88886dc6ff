package types

import "github.com/spf13/cast"

// AsFloat64 coerces an Int or Float value to float64. ok is false for any
// other type. Arithmetic and ordering comparisons promote Int to Float
// through this helper, matching the data model's "Int op Float -> Float"
// rule; IntValue/FloatValue.Equal convert with float64() directly.
func AsFloat64(v Value) (float64, bool) {
	switch t := v.(type) {
	case FloatValue:
		return t.Val, true
	case IntValue:
		// cast.ToFloat64 never fails for an int64, but routing through it
		// keeps the arithmetic and ordering code paths on one helper
		// instead of ad-hoc float64(x) conversions.
		return cast.ToFloat64(t.Val), true
	default:
		return 0, false
	}
}

// AsInt64 coerces an Int value to int64. Floats are intentionally not
// accepted here: operators that require an integral operand (bitwise ops,
// factorial, list indices) must reject a Float rather than silently
// truncate it.
func AsInt64(v Value) (int64, bool) {
	if i, ok := v.(IntValue); ok {
		return cast.ToInt64(i.Val), true
	}
	return 0, false
}

// PromoteArith applies the data model's numeric promotion rule to a pair
// of operands: Int op Int stays Int (returned as two int64s with bothInt
// true); any other numeric combination promotes both sides to float64.
func PromoteArith(l, r Value) (li, ri int64, lf, rf float64, bothInt, ok bool) {
	li2, lIsInt := l.(IntValue)
	ri2, rIsInt := r.(IntValue)
	if lIsInt && rIsInt {
		return li2.Val, ri2.Val, 0, 0, true, true
	}
	lf2, lok := AsFloat64(l)
	rf2, rok := AsFloat64(r)
	if !lok || !rok {
		return 0, 0, 0, 0, false, false
	}
	return 0, 0, lf2, rf2, false, true
}
