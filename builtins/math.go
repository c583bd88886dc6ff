package builtins

import (
	"errors"
	"math"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"flint/registry"
	"flint/types"
)

// ============================================================================
// MATH PACK
// ============================================================================

// mathPack is the reference math function library from spec.md's
// Appendix: abs, round, floor, ceil, trunc, sign, max, min, sqrt, exp,
// ln, log(x,base), log10, sum, avg.
func mathPack() []registry.FunctionImpl {
	return []registry.FunctionImpl{
		{Name: "abs", Arity: registry.FixedArity(1), Invoke: builtinAbs},
		{Name: "round", Arity: registry.FixedArity(1), Invoke: builtinRound},
		{Name: "floor", Arity: registry.FixedArity(1), Invoke: oneFloatFn(math.Floor)},
		{Name: "ceil", Arity: registry.FixedArity(1), Invoke: oneFloatFn(math.Ceil)},
		{Name: "trunc", Arity: registry.FixedArity(1), Invoke: oneFloatFn(math.Trunc)},
		{Name: "sign", Arity: registry.FixedArity(1), Invoke: builtinSign},
		{Name: "max", Arity: registry.AnyArity(), Invoke: builtinMax},
		{Name: "min", Arity: registry.AnyArity(), Invoke: builtinMin},
		{Name: "sqrt", Arity: registry.FixedArity(1), Invoke: builtinSqrt},
		{Name: "exp", Arity: registry.FixedArity(1), Invoke: oneFloatFn(math.Exp)},
		{Name: "ln", Arity: registry.FixedArity(1), Invoke: oneFloatFn(math.Log)},
		{Name: "log", Arity: registry.FixedArity(2), Invoke: builtinLogBase},
		{Name: "log10", Arity: registry.FixedArity(1), Invoke: oneFloatFn(math.Log10)},
		{Name: "sum", Arity: registry.AnyArity(), Invoke: builtinSum},
		{Name: "avg", Arity: registry.AnyArity(), Invoke: builtinAvg},
	}
}

var errNotNumeric = errors.New("argument is not numeric")

// oneFloatFn adapts a plain float64->float64 math function into a
// registry.Invoke, for the builtins whose contract is exactly "coerce to
// float, apply the function" with no extra range checking.
func oneFloatFn(f func(float64) float64) registry.Invoke {
	return func(args []types.Value) (types.Value, error) {
		v, ok := types.AsFloat64(args[0])
		if !ok {
			return nil, errNotNumeric
		}
		return types.NewFloat(f(v)), nil
	}
}

// builtinAbs returns absolute value, preserving Int-ness for an Int
// argument rather than always promoting to Float.
// abs(number) -> int|float
func builtinAbs(args []types.Value) (types.Value, error) {
	switch v := args[0].(type) {
	case types.IntValue:
		if v.Val < 0 {
			return types.NewInt(-v.Val), nil
		}
		return v, nil
	case types.FloatValue:
		return types.NewFloat(math.Abs(v.Val)), nil
	default:
		return nil, errNotNumeric
	}
}

// builtinRound rounds to the nearest integer, half-away-from-zero, via
// shopspring/decimal rather than math.Round's float64 rounding, which
// avoids the binary-float edge cases decimal arithmetic is chosen to
// sidestep elsewhere in this pack (round/avg).
// round(number) -> int
func builtinRound(args []types.Value) (types.Value, error) {
	f, ok := types.AsFloat64(args[0])
	if !ok {
		return nil, errNotNumeric
	}
	rounded := decimal.NewFromFloat(f).Round(0)
	return types.NewInt(rounded.IntPart()), nil
}

// sign(number) -> int (-1, 0, or 1)
func builtinSign(args []types.Value) (types.Value, error) {
	f, ok := types.AsFloat64(args[0])
	if !ok {
		return nil, errNotNumeric
	}
	switch {
	case f > 0:
		return types.NewInt(1), nil
	case f < 0:
		return types.NewInt(-1), nil
	default:
		return types.NewInt(0), nil
	}
}

// max(num1, num2, ...) -> int|float, preserving the winning argument's
// original type rather than returning a promoted float.
func builtinMax(args []types.Value) (types.Value, error) {
	return extremum(args, func(a, b float64) bool { return a > b })
}

// min(num1, num2, ...) -> int|float
func builtinMin(args []types.Value) (types.Value, error) {
	return extremum(args, func(a, b float64) bool { return a < b })
}

func extremum(args []types.Value, better func(a, b float64) bool) (types.Value, error) {
	if len(args) == 0 {
		return nil, errors.New("requires at least one argument")
	}
	best := args[0]
	bestF, ok := types.AsFloat64(best)
	if !ok {
		return nil, errNotNumeric
	}
	for _, a := range args[1:] {
		f, ok := types.AsFloat64(a)
		if !ok {
			return nil, errNotNumeric
		}
		if better(f, bestF) {
			best, bestF = a, f
		}
	}
	return best, nil
}

// sqrt(value) -> float
func builtinSqrt(args []types.Value) (types.Value, error) {
	f, ok := types.AsFloat64(args[0])
	if !ok {
		return nil, errNotNumeric
	}
	if f < 0 {
		return nil, errors.New("sqrt of a negative number")
	}
	return types.NewFloat(math.Sqrt(f)), nil
}

// log(x, base) -> float, the two-argument logarithm spec.md's Appendix
// lists alongside the natural-log-only ln.
func builtinLogBase(args []types.Value) (types.Value, error) {
	x, ok1 := types.AsFloat64(args[0])
	base, ok2 := types.AsFloat64(args[1])
	if !ok1 || !ok2 {
		return nil, errNotNumeric
	}
	return types.NewFloat(math.Log(x) / math.Log(base)), nil
}

// sum(num1, num2, ...) -> float, the typical consumer of a Spread or
// ComputedSpread result: a List argument contributes each of its elements.
func builtinSum(args []types.Value) (types.Value, error) {
	flat := make([]types.Value, 0, len(args))
	for _, a := range args {
		if l, ok := a.(types.ListValue); ok {
			flat = append(flat, l.Elements()...)
			continue
		}
		flat = append(flat, a)
	}
	floats, err := toFloats(flat)
	if err != nil {
		return nil, err
	}
	total := lo.Reduce(floats, func(acc float64, f float64, _ int) float64 { return acc + f }, 0.0)
	return types.NewFloat(total), nil
}

// avg(num1, num2, ...) -> float, summed with decimal precision to avoid
// the float64 accumulation drift a naive running-sum loop would show over
// a long argument list.
func builtinAvg(args []types.Value) (types.Value, error) {
	if len(args) == 0 {
		return nil, errors.New("avg requires at least one argument")
	}
	floats, err := toFloats(args)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, f := range floats {
		total = total.Add(decimal.NewFromFloat(f))
	}
	avg := total.Div(decimal.NewFromInt(int64(len(floats))))
	result, _ := avg.Float64()
	return types.NewFloat(result), nil
}

func toFloats(args []types.Value) ([]float64, error) {
	floats := make([]float64, len(args))
	for i, v := range args {
		f, ok := types.AsFloat64(v)
		if !ok {
			return nil, errNotNumeric
		}
		floats[i] = f
	}
	return floats, nil
}
