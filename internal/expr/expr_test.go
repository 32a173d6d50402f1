package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateLeaves(t *testing.T) {
	assert.Equal(t, 3.5, Evaluate(NewConstant(3.5), 99))
	assert.Equal(t, 7.0, Evaluate(NewVariable(), 7))
}

func TestEvaluateSumChain(t *testing.T) {
	s := NewSumChain()
	s.AddTerm(NewConstant(2), true)
	s.AddTerm(NewVariable(), true)
	s.AddTerm(NewConstant(5), false)
	require.Equal(t, 2.0+3.0-5.0, Evaluate(s, 3))
}

func TestEvaluateMulChainDivision(t *testing.T) {
	m := NewMulChain()
	m.AddFactor(NewConstant(10), false)
	m.AddFactor(NewConstant(2), true)
	assert.Equal(t, 5.0, Evaluate(m, 0))
}

func TestEvaluateDivisionByZeroPropagatesAsInfOrNaN(t *testing.T) {
	m := NewMulChain()
	m.AddFactor(NewConstant(1), false)
	m.AddFactor(NewConstant(0), true)
	assert.True(t, math.IsInf(Evaluate(m, 0), 1))

	m2 := NewMulChain()
	m2.AddFactor(NewConstant(0), false)
	m2.AddFactor(NewConstant(0), true)
	assert.True(t, math.IsNaN(Evaluate(m2, 0)))
}

func TestEvaluatePowerLogTrigInverseTrig(t *testing.T) {
	pow := NewPower(NewConstant(2), NewConstant(10))
	assert.Equal(t, 1024.0, Evaluate(pow, 0))

	logBase2 := NewLogarithm(NewConstant(2), NewConstant(8))
	assert.InDelta(t, 3.0, Evaluate(logBase2, 0), 1e-12)

	assert.InDelta(t, 1.0, Evaluate(NewTrig(Sin, NewConstant(math.Pi/2)), 0), 1e-12)
	assert.InDelta(t, 1.0, Evaluate(NewTrig(Csc, NewConstant(math.Pi/2)), 0), 1e-12)

	assert.InDelta(t, math.Pi/2, Evaluate(NewInverseTrig(Asin, NewConstant(1)), 0), 1e-12)
	assert.InDelta(t, math.Pi/4, Evaluate(NewInverseTrig(Acot, NewConstant(1)), 0), 1e-12)
}

func TestPowerLogarithmDefaults(t *testing.T) {
	p := NewPower(nil, nil)
	assert.Equal(t, 1.0, Evaluate(p, 5))

	l := NewLogarithm(nil, nil)
	assert.Equal(t, 0.0, Evaluate(l, 5)) // ln(1)/ln(10) == 0
}

func TestCopyProducesDisjointTree(t *testing.T) {
	original := NewSumChain()
	original.AddTerm(NewVariable(), true)
	original.AddTerm(NewConstant(4), false)

	clone, ok := Copy(original).(*SumChain)
	require.True(t, ok)
	require.Len(t, clone.Terms, 2)

	// Mutate the clone; the original must be unaffected.
	clone.Terms[1].Term.(*Constant).Value = 999
	assert.Equal(t, 4.0, original.Terms[1].Term.(*Constant).Value)
	assert.Equal(t, 999.0, clone.Terms[1].Term.(*Constant).Value)
}

func TestCopyEvaluatesIdenticallyToOriginal(t *testing.T) {
	e := NewPower(NewSumChain(), NewConstant(2))
	e.Base.(*SumChain).AddTerm(NewVariable(), true)
	e.Base.(*SumChain).AddTerm(NewConstant(1), true)

	clone := Copy(e)
	for x := -5.0; x <= 5.0; x++ {
		assert.Equal(t, Evaluate(e, x), Evaluate(clone, x))
	}
}

func TestDestroySeversChildren(t *testing.T) {
	e := NewLogarithm(NewConstant(2), NewConstant(8))
	Destroy(e)
	assert.Nil(t, e.Base)
	assert.Nil(t, e.Argument)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConstant, KindOf(NewConstant(1)))
	assert.Equal(t, KindVariable, KindOf(NewVariable()))
	assert.Equal(t, KindPower, KindOf(NewPower(nil, nil)))
}

func TestStringRendersExpectedNotation(t *testing.T) {
	assert.Equal(t, "x", String(NewVariable()))
	assert.Equal(t, "3", String(NewConstant(3)))

	pow := NewPower(NewVariable(), NewConstant(2))
	assert.Equal(t, "x^(2)", String(pow))

	logE := NewLogarithm(NewConstant(2), NewConstant(8))
	assert.Equal(t, "log_(2)(8)", String(logE))

	trig := NewTrig(Sin, NewVariable())
	assert.Equal(t, "sin(x)", String(trig))

	mul := NewMulChain()
	mul.AddFactor(NewConstant(3), false)
	mul.AddFactor(NewVariable(), false)
	assert.Equal(t, "3*x", String(mul))

	sum := NewSumChain()
	sum.AddTerm(NewVariable(), true)
	sum.AddTerm(NewConstant(1), false)
	assert.Equal(t, "(x-1)", String(sum))
}

func TestStringFoldsNegativeConstantSignIntoChain(t *testing.T) {
	sum := NewSumChain()
	sum.AddTerm(NewVariable(), true)
	sum.AddTerm(NewConstant(-5), true)
	assert.Equal(t, "(x-5)", String(sum))
}
