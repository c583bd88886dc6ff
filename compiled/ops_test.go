package compiled

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flint/types"
)

func TestBinaryArithIntStaysInt(t *testing.T) {
	v, err := BinaryArith(func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }, types.NewInt(1), types.NewInt(2))
	require.Nil(t, err)
	_, isInt := v.(types.IntValue)
	assert.True(t, isInt)
}

func TestBinaryArithMixedPromotesToFloat(t *testing.T) {
	v, err := BinaryArith(func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }, types.NewInt(1), types.NewFloat(2))
	require.Nil(t, err)
	_, isFloat := v.(types.FloatValue)
	assert.True(t, isFloat)
}

func TestDivAlwaysFloat(t *testing.T) {
	v, err := Div(types.NewInt(4), types.NewInt(2))
	require.Nil(t, err)
	assert.True(t, types.NewFloat(2).Equal(v))
}

func TestDivByZeroErrors(t *testing.T) {
	_, err := Div(types.NewInt(1), types.NewInt(0))
	require.NotNil(t, err)
}

func TestModKeepsDividendSign(t *testing.T) {
	v, err := Mod(types.NewInt(-7), types.NewInt(3))
	require.Nil(t, err)
	assert.True(t, types.NewInt(-1).Equal(v))
}

func TestPowAlwaysFloat(t *testing.T) {
	v, err := Pow(types.NewInt(2), types.NewInt(3))
	require.Nil(t, err)
	assert.True(t, types.NewFloat(8).Equal(v))
}

func TestEqNeqTotalAcrossTypes(t *testing.T) {
	v, _ := Eq(types.NewInt(1), types.NewString("1"))
	assert.True(t, types.NewBool(false).Equal(v))

	v, _ = Neq(types.NewInt(1), types.NewString("1"))
	assert.True(t, types.NewBool(true).Equal(v))
}

func TestOrderedNumericCrossType(t *testing.T) {
	v, err := Ordered("<", types.NewInt(1), types.NewFloat(1.5))
	require.Nil(t, err)
	assert.True(t, types.NewBool(true).Equal(v))
}

func TestOrderedIncompatibleTypesErrors(t *testing.T) {
	_, err := Ordered("<", types.NewInt(1), types.NewString("a"))
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "incompatible types")
}

func TestBitwiseRequiresIntegralOperands(t *testing.T) {
	_, err := Bitwise(BAnd, types.NewFloat(1.5), types.NewInt(1))
	require.NotNil(t, err)
}

func TestShiftNegativeCountErrors(t *testing.T) {
	_, err := Bitwise(Shl, types.NewInt(1), types.NewInt(-1))
	require.NotNil(t, err)
}

func TestFactorial(t *testing.T) {
	v, err := Factorial(types.NewInt(5))
	require.Nil(t, err)
	assert.True(t, types.NewInt(120).Equal(v))

	_, err = Factorial(types.NewInt(-1))
	require.NotNil(t, err)
}

func TestNegUnsupportedType(t *testing.T) {
	_, err := Neg(types.NewString("x"))
	require.NotNil(t, err)
}

func TestNotUsesTruthiness(t *testing.T) {
	v, err := Not(types.Null)
	require.Nil(t, err)
	assert.True(t, types.NewBool(true).Equal(v))
}

func TestBNotRequiresIntegral(t *testing.T) {
	v, err := BNot(types.NewInt(0))
	require.Nil(t, err)
	assert.True(t, types.NewInt(-1).Equal(v))

	_, err = BNot(types.NewFloat(1.1))
	require.NotNil(t, err)
}
