package parser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensargok/numerix/internal/expr"
	"github.com/ensargok/numerix/internal/optimize"
)

func mustParse(t *testing.T, src string) expr.Expression {
	t.Helper()
	e, status := Parse(src)
	require.True(t, status.OK(), "unexpected status %+v parsing %q", status, src)
	return e
}

func TestParseConstantAndVariable(t *testing.T) {
	assert.Equal(t, 3.5, expr.Evaluate(mustParse(t, "3.5"), 0))
	assert.Equal(t, 7.0, expr.Evaluate(mustParse(t, "x"), 7))
}

func TestParseImplicitMultiplication(t *testing.T) {
	e := mustParse(t, "2x")
	for x := -3.0; x <= 3.0; x++ {
		assert.Equal(t, 2*x, expr.Evaluate(e, x))
	}

	e2 := mustParse(t, "2*x")
	for x := -3.0; x <= 3.0; x++ {
		assert.Equal(t, expr.Evaluate(e2, x), expr.Evaluate(e, x))
	}
}

func TestParseImplicitMultiplicationBeforeFunctionCall(t *testing.T) {
	e := mustParse(t, "2sin(x)")
	assert.InDelta(t, 2*math.Sin(1), expr.Evaluate(e, 1), 1e-12)
}

func TestParsePolynomialAtX2(t *testing.T) {
	e := mustParse(t, "2x^(2)+3x-5")
	assert.Equal(t, 9.0, expr.Evaluate(e, 2))
}

func TestParseLogarithmWithBase(t *testing.T) {
	e := mustParse(t, "log_(2)(8)")
	assert.InDelta(t, 3.0, expr.Evaluate(e, 0), 1e-12)
}

func TestParseLnIsLogBaseE(t *testing.T) {
	e := mustParse(t, "ln(e)")
	assert.InDelta(t, 1.0, expr.Evaluate(e, 0), 1e-12)
}

func TestParseTrigAndInverseTrig(t *testing.T) {
	e := mustParse(t, "sin(pi/2)")
	assert.InDelta(t, 1.0, expr.Evaluate(e, 0), 1e-12)

	inv := mustParse(t, "asin(1)")
	assert.InDelta(t, math.Pi/2, expr.Evaluate(inv, 0), 1e-12)
}

func TestParseLeadingUnaryMinus(t *testing.T) {
	e := mustParse(t, "-5+x")
	assert.Equal(t, -5.0+2.0, expr.Evaluate(e, 2))
}

func TestParseLeadingUnaryMinusInsideParens(t *testing.T) {
	e := mustParse(t, "(-5+x)*2")
	assert.Equal(t, (-5.0+2.0)*2, expr.Evaluate(e, 2))
}

func TestParseSignAfterOperatorIsUnary(t *testing.T) {
	e := mustParse(t, "x+-5")
	assert.Equal(t, 2.0-5.0, expr.Evaluate(e, 2))
}

func TestRoundTripPrintThenParse(t *testing.T) {
	sources := []string{"2x^(2)+3x-5", "sin(pi/2)", "log_(2)(8)", "-5+x", "3*x/2"}
	for _, src := range sources {
		e := mustParse(t, src)
		reprinted := expr.String(e)
		e2, status := Parse(reprinted)
		require.True(t, status.OK(), "re-parsing %q (from %q) failed: %+v", reprinted, src, status)
		for x := -2.0; x <= 2.0; x++ {
			assert.InDelta(t, expr.Evaluate(e, x), expr.Evaluate(e2, x), 1e-9)
		}
	}
}

// TestRoundTripOptimizedNegativeBasePowerAndLogarithm pins down a
// printer/optimizer interaction: Optimize can fold a Power or
// Logarithm's base down to a negative Constant (e.g. "(-2)^(x)"), and
// printing that tree must re-parse to a structurally equivalent tree
// rather than silently flipping the base's sign or failing to parse
// at all.
func TestRoundTripOptimizedNegativeBasePowerAndLogarithm(t *testing.T) {
	powerSrc := "(-2)^(x)"
	p := optimize.Optimize(mustParse(t, powerSrc))
	reprinted := expr.String(p)
	p2, status := Parse(reprinted)
	require.True(t, status.OK(), "re-parsing %q (from %q) failed: %+v", reprinted, powerSrc, status)
	for x := -2.0; x <= 2.0; x++ {
		assert.InDelta(t, expr.Evaluate(p, x), expr.Evaluate(p2, x), 1e-9)
	}
	assert.InDelta(t, 4.0, expr.Evaluate(p2, 2), 1e-9)

	logSrc := "log_(-2)(x)"
	l := optimize.Optimize(mustParse(t, logSrc))
	reprinted = expr.String(l)
	l2, status := Parse(reprinted)
	require.True(t, status.OK(), "re-parsing %q (from %q) failed: %+v", reprinted, logSrc, status)
	for x := 1.0; x <= 4.0; x++ {
		assert.InDelta(t, expr.Evaluate(l, x), expr.Evaluate(l2, x), 1e-9)
	}
}

func TestParseEmptyParensCollapsesToIdentity(t *testing.T) {
	e := mustParse(t, "()")
	assert.Equal(t, 1.0, expr.Evaluate(e, 0))
}

func TestParseUnexpectedCharacter(t *testing.T) {
	_, status := Parse("2 $ 3")
	assert.Equal(t, StatusUnexpectedCharacter, status.Code)
	assert.Equal(t, 2, status.Position)
}

func TestParseExpectedCharacterForMissingParen(t *testing.T) {
	_, status := Parse("sin(x")
	assert.Equal(t, StatusExpectedCharacter, status.Code)
	assert.Equal(t, byte(')'), status.Expected)
}

func TestParseExpectedUnderscoreAfterLog(t *testing.T) {
	_, status := Parse("log(8)")
	assert.Equal(t, StatusExpectedCharacter, status.Code)
	assert.Equal(t, byte('_'), status.Expected)
}

func TestParseTrailingGarbageIsUnexpected(t *testing.T) {
	_, status := Parse("x+1)")
	assert.Equal(t, StatusUnexpectedCharacter, status.Code)
}
