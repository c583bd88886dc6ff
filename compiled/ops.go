package compiled

import (
	"math"

	"flint/errs"
	"flint/types"
)

// BinaryArith implements +, -, * with spec.md §4.A's promotion rule:
// Int op Int stays Int; any other numeric pairing promotes to Float.
func BinaryArith(op func(il, ir int64) int64, fop func(fl, fr float64) float64, l, r types.Value) (types.Value, *errs.Error) {
	li, ri, lf, rf, bothInt, ok := types.PromoteArith(l, r)
	if !ok {
		return nil, errs.NewRuntime("arithmetic requires numeric operands")
	}
	if bothInt {
		return types.NewInt(op(li, ri)), nil
	}
	return types.NewFloat(fop(lf, rf)), nil
}

// Div is always floating-point division, per spec.md §4.E.
func Div(l, r types.Value) (types.Value, *errs.Error) {
	lf, lok := types.AsFloat64(l)
	rf, rok := types.AsFloat64(r)
	if !lok || !rok {
		return nil, errs.NewRuntime("division requires numeric operands")
	}
	if rf == 0 {
		return nil, errs.NewRuntime("division by zero")
	}
	return types.NewFloat(lf / rf), nil
}

// Mod implements % with the same Int/Float promotion rule as Add/Sub/Mul;
// Go's % and math.Mod both already give a remainder with the dividend's
// sign, which is what spec.md §4.E asks for.
func Mod(l, r types.Value) (types.Value, *errs.Error) {
	li, ri, lf, rf, bothInt, ok := types.PromoteArith(l, r)
	if !ok {
		return nil, errs.NewRuntime("modulo requires numeric operands")
	}
	if bothInt {
		if ri == 0 {
			return nil, errs.NewRuntime("division by zero")
		}
		return types.NewInt(li % ri), nil
	}
	if rf == 0 {
		return nil, errs.NewRuntime("division by zero")
	}
	return types.NewFloat(math.Mod(lf, rf)), nil
}

// Pow is always floating-point power, per spec.md §4.E.
func Pow(l, r types.Value) (types.Value, *errs.Error) {
	lf, lok := types.AsFloat64(l)
	rf, rok := types.AsFloat64(r)
	if !lok || !rok {
		return nil, errs.NewRuntime("exponentiation requires numeric operands")
	}
	return types.NewFloat(math.Pow(lf, rf)), nil
}

// Eq/Neq are total over all value pairs: Value.Equal already returns
// false for mismatched types (apart from the Int/Float coercion it
// performs itself), which is exactly spec.md §4.E's "mixed-type
// comparison by ==/!= is defined and returns false".
func Eq(l, r types.Value) (types.Value, *errs.Error) {
	return types.NewBool(l.Equal(r)), nil
}

func Neq(l, r types.Value) (types.Value, *errs.Error) {
	return types.NewBool(!l.Equal(r)), nil
}

// Ordered implements <, >, <=, >=. Unlike ==/!=, these are only total
// within a compatible group (numbers, strings, booleans); anything else
// is a runtime error.
func Ordered(op string, l, r types.Value) (types.Value, *errs.Error) {
	cmp, err := compareOrdered(l, r)
	if err != nil {
		return nil, err
	}
	switch op {
	case "<":
		return types.NewBool(cmp < 0), nil
	case ">":
		return types.NewBool(cmp > 0), nil
	case "<=":
		return types.NewBool(cmp <= 0), nil
	case ">=":
		return types.NewBool(cmp >= 0), nil
	default:
		return nil, errs.NewRuntime("unknown ordering operator " + op)
	}
}

func compareOrdered(l, r types.Value) (int, *errs.Error) {
	if types.IsNumeric(l) && types.IsNumeric(r) {
		lf, _ := types.AsFloat64(l)
		rf, _ := types.AsFloat64(r)
		switch {
		case lf < rf:
			return -1, nil
		case lf > rf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if ls, ok := l.(types.StringValue); ok {
		if rs, ok := r.(types.StringValue); ok {
			switch {
			case ls.Val < rs.Val:
				return -1, nil
			case ls.Val > rs.Val:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	if lb, ok := l.(types.BoolValue); ok {
		if rb, ok := r.(types.BoolValue); ok {
			li, ri := boolRank(lb.Val), boolRank(rb.Val)
			return li - ri, nil
		}
	}
	return 0, errs.NewRuntime("incompatible types for comparison: " + l.Type().String() + " and " + r.Type().String())
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Bitwise implements &, |^, |, <<, >>: all require integral operands.
func Bitwise(op func(l, r int64) (int64, *errs.Error), l, r types.Value) (types.Value, *errs.Error) {
	li, lok := types.AsInt64(l)
	ri, rok := types.AsInt64(r)
	if !lok || !rok {
		return nil, errs.NewRuntime("bitwise operators require integral operands")
	}
	v, err := op(li, ri)
	if err != nil {
		return nil, err
	}
	return types.NewInt(v), nil
}

func BAnd(l, r int64) (int64, *errs.Error) { return l & r, nil }
func BOr(l, r int64) (int64, *errs.Error)  { return l | r, nil }
func BXor(l, r int64) (int64, *errs.Error) { return l ^ r, nil }

func Shl(l, r int64) (int64, *errs.Error) {
	if r < 0 {
		return 0, errs.NewRuntime("negative shift count")
	}
	return l << uint64(r), nil
}

func Shr(l, r int64) (int64, *errs.Error) {
	if r < 0 {
		return 0, errs.NewRuntime("negative shift count")
	}
	return l >> uint64(r), nil
}

// Neg implements prefix '-'.
func Neg(v types.Value) (types.Value, *errs.Error) {
	switch t := v.(type) {
	case types.IntValue:
		return types.NewInt(-t.Val), nil
	case types.FloatValue:
		return types.NewFloat(-t.Val), nil
	default:
		return nil, errs.NewRuntime("unary '-' requires a numeric operand")
	}
}

// Not implements prefix 'not', using the engine's truthiness rule.
func Not(v types.Value) (types.Value, *errs.Error) {
	return types.NewBool(!v.Truthy()), nil
}

// BNot implements prefix '~', requiring an integral operand.
func BNot(v types.Value) (types.Value, *errs.Error) {
	i, ok := types.AsInt64(v)
	if !ok {
		return nil, errs.NewRuntime("unary '~' requires an integer operand")
	}
	return types.NewInt(^i), nil
}

// Factorial implements postfix '!': the operand must be a non-negative
// Int.
func Factorial(v types.Value) (types.Value, *errs.Error) {
	i, ok := types.AsInt64(v)
	if !ok {
		return nil, errs.NewRuntime("factorial requires an integer operand")
	}
	if i < 0 {
		return nil, errs.NewRuntime("factorial requires a non-negative operand")
	}
	result := int64(1)
	for n := int64(2); n <= i; n++ {
		result *= n
	}
	return types.NewInt(result), nil
}
