package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flint/types"
)

func TestLenOnStringCountsRunes(t *testing.T) {
	v, err := builtinLen([]types.Value{types.NewString("héllo")})
	require.NoError(t, err)
	assert.True(t, types.NewInt(5).Equal(v))
}

func TestLenOnListCountsElements(t *testing.T) {
	v, err := builtinLen([]types.Value{types.NewList([]types.Value{types.NewInt(1), types.NewInt(2)})})
	require.NoError(t, err)
	assert.True(t, types.NewInt(2).Equal(v))
}

func TestLenRejectsNonStringNonList(t *testing.T) {
	_, err := builtinLen([]types.Value{types.NewInt(1)})
	require.Error(t, err)
}

func TestLeftRightClampToLength(t *testing.T) {
	left, err := builtinLeft([]types.Value{types.NewString("hello"), types.NewInt(100)})
	require.NoError(t, err)
	assert.True(t, types.NewString("hello").Equal(left))

	right, err := builtinRight([]types.Value{types.NewString("hello"), types.NewInt(3)})
	require.NoError(t, err)
	assert.True(t, types.NewString("llo").Equal(right))
}

func TestLeftRightAreRuneAware(t *testing.T) {
	left, err := builtinLeft([]types.Value{types.NewString("héllo"), types.NewInt(2)})
	require.NoError(t, err)
	assert.True(t, types.NewString("hé").Equal(left))
}

func TestSubstringWithAndWithoutLength(t *testing.T) {
	v, err := builtinSubstring([]types.Value{types.NewString("hello world"), types.NewInt(6)})
	require.NoError(t, err)
	assert.True(t, types.NewString("world").Equal(v))

	v, err = builtinSubstring([]types.Value{types.NewString("hello world"), types.NewInt(0), types.NewInt(5)})
	require.NoError(t, err)
	assert.True(t, types.NewString("hello").Equal(v))
}

func TestSubstringStartPastEndReturnsEmpty(t *testing.T) {
	v, err := builtinSubstring([]types.Value{types.NewString("hi"), types.NewInt(10)})
	require.NoError(t, err)
	assert.True(t, types.NewString("").Equal(v))
}

func TestConcatFormatsNonStrings(t *testing.T) {
	v, err := builtinConcat([]types.Value{types.NewString("n="), types.NewInt(5)})
	require.NoError(t, err)
	assert.True(t, types.NewString("n=5").Equal(v))
}

func TestTextjoin(t *testing.T) {
	v, err := builtinTextjoin([]types.Value{types.NewString(", "), types.NewString("a"), types.NewString("b")})
	require.NoError(t, err)
	assert.True(t, types.NewString("a, b").Equal(v))
}

func TestReplace(t *testing.T) {
	v, err := builtinReplace([]types.Value{types.NewString("foo bar foo"), types.NewString("foo"), types.NewString("baz")})
	require.NoError(t, err)
	assert.True(t, types.NewString("baz bar baz").Equal(v))
}

func TestFindReturnsRuneIndexNotByteIndex(t *testing.T) {
	v, err := builtinFind([]types.Value{types.NewString("world"), types.NewString("héllo world")})
	require.NoError(t, err)
	assert.True(t, types.NewInt(6).Equal(v))
}

func TestFindMissReturnsNegativeOne(t *testing.T) {
	v, err := builtinFind([]types.Value{types.NewString("zzz"), types.NewString("hello")})
	require.NoError(t, err)
	assert.True(t, types.NewInt(-1).Equal(v))
}

func TestContains(t *testing.T) {
	v, err := builtinContains([]types.Value{types.NewString("hello"), types.NewString("ell")})
	require.NoError(t, err)
	assert.True(t, v.Truthy())
}

func TestNormalize(t *testing.T) {
	v, err := builtinNormalize([]types.Value{types.NewString("Order Total")})
	require.NoError(t, err)
	assert.True(t, types.NewString("order_total").Equal(v))
}
