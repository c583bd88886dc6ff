package compiler

import (
	"flint/compiled"
	"flint/errs"
	"flint/ir"
	"flint/registry"
	"flint/types"
)

// planBinary lowers a Binary node. && and || short-circuit the right
// operand and so are planned specially; every other operator is eager and
// delegates to compiled's op helpers.
func planBinary(n *ir.Binary, reg *registry.Registry) (compiled.Interpretable, *errs.Error) {
	left, err := plan(n.Left, reg)
	if err != nil {
		return nil, err
	}
	right, err := plan(n.Right, reg)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case ir.And:
		return func(scope types.Value) (types.Value, *errs.Error) {
			l, err := left(scope)
			if err != nil {
				return nil, err
			}
			if !l.Truthy() {
				return types.NewBool(false), nil
			}
			r, err := right(scope)
			if err != nil {
				return nil, err
			}
			return types.NewBool(r.Truthy()), nil
		}, nil

	case ir.Or:
		return func(scope types.Value) (types.Value, *errs.Error) {
			l, err := left(scope)
			if err != nil {
				return nil, err
			}
			if l.Truthy() {
				return types.NewBool(true), nil
			}
			r, err := right(scope)
			if err != nil {
				return nil, err
			}
			return types.NewBool(r.Truthy()), nil
		}, nil
	}

	eager, err := eagerBinaryOp(n.Op)
	if err != nil {
		return nil, err
	}
	return func(scope types.Value) (types.Value, *errs.Error) {
		l, err := left(scope)
		if err != nil {
			return nil, err
		}
		r, err := right(scope)
		if err != nil {
			return nil, err
		}
		return eager(l, r)
	}, nil
}

func eagerBinaryOp(op ir.BinaryOp) (func(l, r types.Value) (types.Value, *errs.Error), *errs.Error) {
	switch op {
	case ir.Add:
		return func(l, r types.Value) (types.Value, *errs.Error) {
			return compiled.BinaryArith(func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }, l, r)
		}, nil
	case ir.Sub:
		return func(l, r types.Value) (types.Value, *errs.Error) {
			return compiled.BinaryArith(func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }, l, r)
		}, nil
	case ir.Mul:
		return func(l, r types.Value) (types.Value, *errs.Error) {
			return compiled.BinaryArith(func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }, l, r)
		}, nil
	case ir.Div:
		return compiled.Div, nil
	case ir.Mod:
		return compiled.Mod, nil
	case ir.Pow:
		return compiled.Pow, nil
	case ir.Eq:
		return compiled.Eq, nil
	case ir.Neq:
		return compiled.Neq, nil
	case ir.Gt:
		return func(l, r types.Value) (types.Value, *errs.Error) { return compiled.Ordered(">", l, r) }, nil
	case ir.Lt:
		return func(l, r types.Value) (types.Value, *errs.Error) { return compiled.Ordered("<", l, r) }, nil
	case ir.Gte:
		return func(l, r types.Value) (types.Value, *errs.Error) { return compiled.Ordered(">=", l, r) }, nil
	case ir.Lte:
		return func(l, r types.Value) (types.Value, *errs.Error) { return compiled.Ordered("<=", l, r) }, nil
	case ir.BAnd:
		return func(l, r types.Value) (types.Value, *errs.Error) { return compiled.Bitwise(compiled.BAnd, l, r) }, nil
	case ir.BOr:
		return func(l, r types.Value) (types.Value, *errs.Error) { return compiled.Bitwise(compiled.BOr, l, r) }, nil
	case ir.BXor:
		return func(l, r types.Value) (types.Value, *errs.Error) { return compiled.Bitwise(compiled.BXor, l, r) }, nil
	case ir.Shl:
		return func(l, r types.Value) (types.Value, *errs.Error) { return compiled.Bitwise(compiled.Shl, l, r) }, nil
	case ir.Shr:
		return func(l, r types.Value) (types.Value, *errs.Error) { return compiled.Bitwise(compiled.Shr, l, r) }, nil
	default:
		return nil, errs.NewCompiler("unsupported binary operator")
	}
}
