package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flint/errs"
	"flint/ir"
	"flint/types"
)

func mustParse(t *testing.T, src string) ir.Node {
	t.Helper()
	node, err := Parse(src)
	require.Nil(t, err, "unexpected parse error for %q: %v", src, err)
	return node
}

func TestParseLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want types.Value
	}{
		{"true", types.NewBool(true)},
		{"false", types.NewBool(false)},
		{"null", types.Null},
		{"42", types.NewInt(42)},
		{"3.14", types.NewFloat(3.14)},
		{"5.", types.NewFloat(5)},
		{".5", types.NewFloat(0.5)},
		{`"hi\n"`, types.NewString("hi\n")},
		{`'it\'s'`, types.NewString("it's")},
	}
	for _, c := range cases {
		node := mustParse(t, c.src)
		lit, ok := node.(*ir.Literal)
		require.True(t, ok, "%q: expected *ir.Literal, got %T", c.src, node)
		assert.True(t, c.want.Equal(lit.Value), "%q: want %v got %v", c.src, c.want, lit.Value)
	}
}

func TestParseIdentifierIsKeywordPrefix(t *testing.T) {
	node := mustParse(t, "nothing")
	gv, ok := node.(*ir.GetVar)
	require.True(t, ok)
	assert.Equal(t, "nothing", gv.Name)
}

func TestParsePrecedenceAdditiveMultiplicative(t *testing.T) {
	node := mustParse(t, "1 + 2 * 3")
	bin, ok := node.(*ir.Binary)
	require.True(t, ok)
	assert.Equal(t, ir.Add, bin.Op)
	_, rhsIsBinary := bin.Right.(*ir.Binary)
	assert.True(t, rhsIsBinary, "expected 2*3 to bind tighter than +")
}

func TestParseExponentLeftAssociative(t *testing.T) {
	node := mustParse(t, "2 ^ 3 ^ 2")
	bin, ok := node.(*ir.Binary)
	require.True(t, ok)
	assert.Equal(t, ir.Pow, bin.Op)
	_, lhsIsBinary := bin.Left.(*ir.Binary)
	assert.True(t, lhsIsBinary, "2^3^2 should parse as (2^3)^2")
}

func TestParseUnaryBindsInsideExponent(t *testing.T) {
	// Per the grammar's literal ordering, prefix unary sits inside
	// exponent, so "-2^2" parses as (-2)^2, not -(2^2).
	node := mustParse(t, "-2^2")
	bin, ok := node.(*ir.Binary)
	require.True(t, ok)
	assert.Equal(t, ir.Pow, bin.Op)
	un, ok := bin.Left.(*ir.Unary)
	require.True(t, ok, "expected left operand of ^ to be a unary negation")
	assert.Equal(t, ir.Neg, un.Op)
}

func TestParseFactorialBindsInsideUnary(t *testing.T) {
	// Postfix factorial wraps prefix unary, so "-x!" parses as (-x)!.
	node := mustParse(t, "-x!")
	fact, ok := node.(*ir.Factorial)
	require.True(t, ok)
	un, ok := fact.Operand.(*ir.Unary)
	require.True(t, ok)
	assert.Equal(t, ir.Neg, un.Op)
}

func TestParseTernaryNestsRight(t *testing.T) {
	node := mustParse(t, "a ? b : c ? d : e")
	outer, ok := node.(*ir.Ternary)
	require.True(t, ok)
	_, innerIsTernary := outer.Else.(*ir.Ternary)
	assert.True(t, innerIsTernary)
}

func TestParseBitwiseDoesNotSwallowLogicalTokens(t *testing.T) {
	node := mustParse(t, "a && b")
	bin, ok := node.(*ir.Binary)
	require.True(t, ok)
	assert.Equal(t, ir.And, bin.Op)
}

func TestParseShiftBindsTighterThanComparison(t *testing.T) {
	node := mustParse(t, "a < b << c")
	bin, ok := node.(*ir.Binary)
	require.True(t, ok)
	assert.Equal(t, ir.Lt, bin.Op)
	shiftBin, ok := bin.Right.(*ir.Binary)
	require.True(t, ok)
	assert.Equal(t, ir.Shl, shiftBin.Op)
}

func TestParseDotAccess(t *testing.T) {
	node := mustParse(t, "row.name")
	access, ok := node.(*ir.Access)
	require.True(t, ok)
	assert.True(t, access.DotKey)
	gv, ok := access.Target.(*ir.GetVar)
	require.True(t, ok)
	assert.Equal(t, "row", gv.Name)
	lit, ok := access.Key.(*ir.Literal)
	require.True(t, ok)
	assert.Equal(t, "name", lit.Value.String())
}

func TestParseBracketAccess(t *testing.T) {
	node := mustParse(t, "row[0]")
	access, ok := node.(*ir.Access)
	require.True(t, ok)
	assert.False(t, access.DotKey)
}

func TestParseCallOnlyAsFirstStep(t *testing.T) {
	node := mustParse(t, "sum(1, 2, 3)")
	call, ok := node.(*ir.Call)
	require.True(t, ok)
	assert.Equal(t, "sum", call.Name)
	assert.Len(t, call.Args, 3)

	_, err := Parse("a.b(1)")
	require.NotNil(t, err, "a.b(1) should not parse: call is only legal as the first step")
}

func TestParseSpreadTail(t *testing.T) {
	node := mustParse(t, "orders[*].qty")
	spread, ok := node.(*ir.Spread)
	require.True(t, ok)
	assert.False(t, spread.Flatten)
	require.Len(t, spread.Tail, 1)
	assert.Equal(t, ir.StepKey, spread.Tail[0].Kind)
	assert.Equal(t, "qty", spread.Tail[0].Key)
}

func TestParseSpreadFlatten(t *testing.T) {
	node := mustParse(t, "orders[*].items[*].qty")
	spread, ok := node.(*ir.Spread)
	require.True(t, ok)
	assert.True(t, spread.Flatten)
	require.Len(t, spread.Tail, 2)
}

func TestParseComputedSpreadRequiresPrecedingMarker(t *testing.T) {
	node := mustParse(t, "orders[*].(qty * price)")
	cs, ok := node.(*ir.ComputedSpread)
	require.True(t, ok)
	assert.False(t, cs.Flatten)

	_, err := Parse("orders.(qty)")
	require.NotNil(t, err, "'.(' without a preceding '[*]' must be a parse error")
}

func TestParseTrailingInputIsError(t *testing.T) {
	_, err := Parse("1 + 2 )")
	require.NotNil(t, err)
	assert.Equal(t, errs.Parser, err.Kind)
}

func TestParseReportsPosition(t *testing.T) {
	_, err := Parse("1 +\n  *")
	require.NotNil(t, err)
	assert.True(t, err.HasPosition())
	assert.Equal(t, 2, err.Line)
}
