package builtins

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flint/types"
)

func TestAbsPreservesIntType(t *testing.T) {
	v, err := builtinAbs([]types.Value{types.NewInt(-5)})
	require.NoError(t, err)
	assert.True(t, types.NewInt(5).Equal(v))
	_, isInt := v.(types.IntValue)
	assert.True(t, isInt)
}

func TestAbsFloat(t *testing.T) {
	v, err := builtinAbs([]types.Value{types.NewFloat(-2.5)})
	require.NoError(t, err)
	assert.True(t, types.NewFloat(2.5).Equal(v))
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	v, err := builtinRound([]types.Value{types.NewFloat(2.5)})
	require.NoError(t, err)
	assert.True(t, types.NewInt(3).Equal(v))

	v, err = builtinRound([]types.Value{types.NewFloat(-2.5)})
	require.NoError(t, err)
	assert.True(t, types.NewInt(-3).Equal(v))
}

func TestSign(t *testing.T) {
	pos, _ := builtinSign([]types.Value{types.NewFloat(3)})
	zero, _ := builtinSign([]types.Value{types.NewInt(0)})
	neg, _ := builtinSign([]types.Value{types.NewFloat(-3)})
	assert.True(t, types.NewInt(1).Equal(pos))
	assert.True(t, types.NewInt(0).Equal(zero))
	assert.True(t, types.NewInt(-1).Equal(neg))
}

func TestMaxPreservesWinnerType(t *testing.T) {
	v, err := builtinMax([]types.Value{types.NewInt(1), types.NewFloat(4.5), types.NewInt(3)})
	require.NoError(t, err)
	assert.True(t, types.NewFloat(4.5).Equal(v))
}

func TestMinNoArgsErrors(t *testing.T) {
	_, err := builtinMin(nil)
	require.Error(t, err)
}

func TestSqrtNegativeErrors(t *testing.T) {
	_, err := builtinSqrt([]types.Value{types.NewFloat(-1)})
	require.Error(t, err)
}

func TestLogBase(t *testing.T) {
	v, err := builtinLogBase([]types.Value{types.NewFloat(8), types.NewFloat(2)})
	require.NoError(t, err)
	f, _ := types.AsFloat64(v)
	assert.InDelta(t, 3.0, f, 1e-9)
}

func TestSumAcrossMixedNumericTypes(t *testing.T) {
	v, err := builtinSum([]types.Value{types.NewInt(1), types.NewFloat(2.5), types.NewInt(3)})
	require.NoError(t, err)
	assert.True(t, types.NewFloat(6.5).Equal(v))
}

func TestAvgRequiresAtLeastOneArgument(t *testing.T) {
	_, err := builtinAvg(nil)
	require.Error(t, err)
}

func TestAvgComputesMean(t *testing.T) {
	v, err := builtinAvg([]types.Value{types.NewInt(1), types.NewInt(2), types.NewInt(3)})
	require.NoError(t, err)
	assert.True(t, types.NewFloat(2).Equal(v))
}

func TestFloorCeilTrunc(t *testing.T) {
	floor, err := oneFloatFn(math.Floor)([]types.Value{types.NewFloat(1.8)})
	require.NoError(t, err)
	assert.True(t, types.NewFloat(1).Equal(floor))

	ceil, err := oneFloatFn(math.Ceil)([]types.Value{types.NewFloat(1.2)})
	require.NoError(t, err)
	assert.True(t, types.NewFloat(2).Equal(ceil))

	trunc, err := oneFloatFn(math.Trunc)([]types.Value{types.NewFloat(-1.8)})
	require.NoError(t, err)
	assert.True(t, types.NewFloat(-1).Equal(trunc))
}
