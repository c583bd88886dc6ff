package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flint/types"
)

func TestIfEagerlyEvaluatesBothBranchesByContract(t *testing.T) {
	v, err := builtinIf([]types.Value{types.NewBool(true), types.NewInt(1), types.NewInt(2)})
	require.NoError(t, err)
	assert.True(t, types.NewInt(1).Equal(v))

	v, err = builtinIf([]types.Value{types.NewBool(false), types.NewInt(1), types.NewInt(2)})
	require.NoError(t, err)
	assert.True(t, types.NewInt(2).Equal(v))
}

func TestIfnull(t *testing.T) {
	v, err := builtinIfnull([]types.Value{types.Null, types.NewInt(9)})
	require.NoError(t, err)
	assert.True(t, types.NewInt(9).Equal(v))

	v, err = builtinIfnull([]types.Value{types.NewInt(3), types.NewInt(9)})
	require.NoError(t, err)
	assert.True(t, types.NewInt(3).Equal(v))
}

func TestCoalesceReturnsFirstNonNull(t *testing.T) {
	v, err := builtinCoalesce([]types.Value{types.Null, types.Null, types.NewInt(7)})
	require.NoError(t, err)
	assert.True(t, types.NewInt(7).Equal(v))
}

func TestCoalesceAllNullReturnsNull(t *testing.T) {
	v, err := builtinCoalesce([]types.Value{types.Null, types.Null})
	require.NoError(t, err)
	assert.True(t, types.Null.Equal(v))
}

func TestSwitchMatchesFirstCase(t *testing.T) {
	v, err := builtinSwitch([]types.Value{
		types.NewInt(2),
		types.NewInt(1), types.NewString("one"),
		types.NewInt(2), types.NewString("two"),
	})
	require.NoError(t, err)
	assert.True(t, types.NewString("two").Equal(v))
}

func TestSwitchFallsBackToDefault(t *testing.T) {
	v, err := builtinSwitch([]types.Value{
		types.NewInt(9),
		types.NewInt(1), types.NewString("one"),
		types.NewString("default"),
	})
	require.NoError(t, err)
	assert.True(t, types.NewString("default").Equal(v))
}

func TestSwitchNoMatchNoDefaultReturnsNull(t *testing.T) {
	v, err := builtinSwitch([]types.Value{
		types.NewInt(9),
		types.NewInt(1), types.NewString("one"),
	})
	require.NoError(t, err)
	assert.True(t, types.Null.Equal(v))
}

func TestAndOrEagerAggregation(t *testing.T) {
	and, err := builtinAnd([]types.Value{types.NewBool(true), types.NewBool(true)})
	require.NoError(t, err)
	assert.True(t, and.Truthy())

	and, err = builtinAnd([]types.Value{types.NewBool(true), types.NewBool(false)})
	require.NoError(t, err)
	assert.False(t, and.Truthy())

	or, err := builtinOr([]types.Value{types.NewBool(false), types.NewBool(true)})
	require.NoError(t, err)
	assert.True(t, or.Truthy())
}

func TestLookupList(t *testing.T) {
	list := types.NewList([]types.Value{types.NewInt(10), types.NewInt(20)})
	v, err := builtinLookup([]types.Value{list, types.NewInt(1)})
	require.NoError(t, err)
	assert.True(t, types.NewInt(20).Equal(v))
}

func TestLookupListMissReturnsDefault(t *testing.T) {
	list := types.NewList([]types.Value{types.NewInt(10)})
	v, err := builtinLookup([]types.Value{list, types.NewInt(5), types.NewString("fallback")})
	require.NoError(t, err)
	assert.True(t, types.NewString("fallback").Equal(v))
}

func TestLookupMapMissReturnsNullWithoutDefault(t *testing.T) {
	m := types.NewMap(map[string]types.Value{"a": types.NewInt(1)})
	v, err := builtinLookup([]types.Value{m, types.NewString("missing")})
	require.NoError(t, err)
	assert.True(t, types.Null.Equal(v))
}

func TestLookupStruct(t *testing.T) {
	s := types.NewStruct(map[string]types.Value{"name": types.NewString("ok")})
	v, err := builtinLookup([]types.Value{s, types.NewString("name")})
	require.NoError(t, err)
	assert.True(t, types.NewString("ok").Equal(v))
}

func TestLookupWrongArgCountErrors(t *testing.T) {
	_, err := builtinLookup([]types.Value{types.NewInt(1)})
	require.Error(t, err)
}
