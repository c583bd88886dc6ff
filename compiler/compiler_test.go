package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flint/errs"
	"flint/parser"
	"flint/registry"
	"flint/types"
)

func testRegistry() *registry.Registry {
	return registry.New([]registry.FunctionImpl{
		{Name: "sum", Arity: registry.AnyArity(), Invoke: func(args []types.Value) (types.Value, error) {
			total := 0.0
			for _, a := range args {
				f, _ := types.AsFloat64(a)
				total += f
			}
			return types.NewFloat(total), nil
		}},
		{Name: "double", Arity: registry.FixedArity(1), Invoke: func(args []types.Value) (types.Value, error) {
			f, _ := types.AsFloat64(args[0])
			return types.NewFloat(f * 2), nil
		}},
	}, nil)
}

func evalSrc(t *testing.T, src string, scope types.Value) (types.Value, *errs.Error) {
	t.Helper()
	node, perr := parser.Parse(src)
	require.Nil(t, perr)
	reg := testRegistry()
	expr, cerr := Compile(node, reg)
	if cerr != nil {
		return nil, cerr
	}
	return expr.Apply(scope)
}

func TestCompileArithmeticPromotion(t *testing.T) {
	v, err := evalSrc(t, "1 + 2", types.Null)
	require.Nil(t, err)
	assert.True(t, types.NewInt(3).Equal(v))

	v, err = evalSrc(t, "1 + 2.0", types.Null)
	require.Nil(t, err)
	assert.True(t, types.NewFloat(3).Equal(v))
}

func TestCompileDivisionAlwaysFloat(t *testing.T) {
	v, err := evalSrc(t, "4 / 2", types.Null)
	require.Nil(t, err)
	assert.True(t, types.NewFloat(2).Equal(v))
}

func TestCompileDivisionByZero(t *testing.T) {
	_, err := evalSrc(t, "1 / 0", types.Null)
	require.NotNil(t, err)
	assert.Equal(t, errs.Runtime, err.Kind)
}

func TestCompileUnknownFunction(t *testing.T) {
	_, err := evalSrc(t, "sume(1,2)", types.Null)
	require.NotNil(t, err)
	assert.Equal(t, errs.Compiler, err.Kind)
	assert.Contains(t, err.Message, "sum")
}

func TestCompileArityMismatch(t *testing.T) {
	_, err := evalSrc(t, "double(1,2)", types.Null)
	require.NotNil(t, err)
	assert.Equal(t, errs.Compiler, err.Kind)
}

func TestCompileVariableLookup(t *testing.T) {
	scope := types.NewMap(map[string]types.Value{"x": types.NewInt(5)})
	v, err := evalSrc(t, "x + 1", scope)
	require.Nil(t, err)
	assert.True(t, types.NewInt(6).Equal(v))
}

func TestCompileMissingVariable(t *testing.T) {
	_, err := evalSrc(t, "missing", types.NewEmptyMap())
	require.NotNil(t, err)
	assert.Equal(t, errs.Runtime, err.Kind)
	assert.Contains(t, err.Message, "missing")
}

func TestCompileTernaryShortCircuits(t *testing.T) {
	scope := types.NewMap(map[string]types.Value{"x": types.NewInt(5)})
	v, err := evalSrc(t, "true ? x : nonexistent", scope)
	require.Nil(t, err)
	assert.True(t, types.NewInt(5).Equal(v))
}

func TestCompileAndOrShortCircuit(t *testing.T) {
	v, err := evalSrc(t, "false && nonexistent", types.NewEmptyMap())
	require.Nil(t, err)
	assert.True(t, types.NewBool(false).Equal(v))

	v, err = evalSrc(t, "true || nonexistent", types.NewEmptyMap())
	require.Nil(t, err)
	assert.True(t, types.NewBool(true).Equal(v))
}

func TestCompileListAccessAndSpread(t *testing.T) {
	rows := types.NewList([]types.Value{
		types.NewMap(map[string]types.Value{"qty": types.NewInt(2)}),
		types.NewMap(map[string]types.Value{"qty": types.NewInt(3)}),
	})
	scope := types.NewMap(map[string]types.Value{"orders": rows})

	v, err := evalSrc(t, "orders[0].qty", scope)
	require.Nil(t, err)
	assert.True(t, types.NewInt(2).Equal(v))

	v, err = evalSrc(t, "orders[*].qty", scope)
	require.Nil(t, err)
	list, ok := v.(types.ListValue)
	require.True(t, ok)
	assert.Equal(t, 2, list.Len())
}

func TestCompileComputedSpread(t *testing.T) {
	rows := types.NewList([]types.Value{
		types.NewMap(map[string]types.Value{"qty": types.NewInt(2), "price": types.NewInt(3)}),
		types.NewMap(map[string]types.Value{"qty": types.NewInt(4), "price": types.NewInt(5)}),
	})
	scope := types.NewMap(map[string]types.Value{"orders": rows})

	v, err := evalSrc(t, "orders[*].(qty * price)", scope)
	require.Nil(t, err)
	list, ok := v.(types.ListValue)
	require.True(t, ok)
	first, _ := list.At(0)
	assert.True(t, types.NewInt(6).Equal(first))
}

func TestCompileOutOfBoundsAccess(t *testing.T) {
	scope := types.NewMap(map[string]types.Value{"xs": types.NewList([]types.Value{types.NewInt(1)})})
	_, err := evalSrc(t, "xs[5]", scope)
	require.NotNil(t, err)
	assert.Equal(t, errs.Runtime, err.Kind)
	assert.Contains(t, err.Message, "key not found")
}
