// Package optimize implements constant folding over an *expr.Expression
// tree. Optimize is a bottom-up rewrite: every child is folded first,
// then the parent folds itself if that leaves it holding only
// constants.
//
// Two refinements are applied that the analyser this was distilled
// from does not make: a MulChain folds straight to Constant(0) the
// moment a zero numerator factor appears (the source only folds the
// running product and leaves a literal "0*remaining-factors" chain
// behind), and folding never mutates the input — Optimize returns a
// new tree and the caller discards the old one, rather than the
// in-place destructive rewrite the source performs.
package optimize

import (
	"math"

	"github.com/ensargok/numerix/internal/expr"
)

// Optimize returns a semantically equivalent tree with every
// constant-only subtree folded down to a single Constant.
func Optimize(e expr.Expression) expr.Expression {
	switch n := e.(type) {
	case *expr.Constant, *expr.Variable:
		return e

	case *expr.SumChain:
		return optimizeSumChain(n)

	case *expr.MulChain:
		return optimizeMulChain(n)

	case *expr.Power:
		base := Optimize(n.Base)
		exponent := Optimize(n.Exponent)
		if bc, ok := asConstant(base); ok {
			if ec, ok := asConstant(exponent); ok {
				return expr.NewConstant(math.Pow(bc, ec))
			}
		}
		return expr.NewPower(base, exponent)

	case *expr.Logarithm:
		base := Optimize(n.Base)
		argument := Optimize(n.Argument)
		if bc, ok := asConstant(base); ok {
			if ac, ok := asConstant(argument); ok {
				return expr.NewConstant(math.Log(ac) / math.Log(bc))
			}
		}
		return expr.NewLogarithm(base, argument)

	case *expr.Trig:
		argument := Optimize(n.Argument)
		if ac, ok := asConstant(argument); ok {
			return expr.NewConstant(expr.Evaluate(expr.NewTrig(n.Op, expr.NewConstant(ac)), 0))
		}
		return expr.NewTrig(n.Op, argument)

	case *expr.InverseTrig:
		argument := Optimize(n.Argument)
		if ac, ok := asConstant(argument); ok {
			return expr.NewConstant(expr.Evaluate(expr.NewInverseTrig(n.Op, expr.NewConstant(ac)), 0))
		}
		return expr.NewInverseTrig(n.Op, argument)

	default:
		panic("optimize: Optimize on unhandled Expression variant")
	}
}

func asConstant(e expr.Expression) (float64, bool) {
	if c, ok := e.(*expr.Constant); ok {
		return c.Value, true
	}
	return 0, false
}

// optimizeSumChain folds every constant term into a single running
// sum, keeping non-constant terms in their original order and with
// their original sign.
func optimizeSumChain(n *expr.SumChain) expr.Expression {
	sum := 0.0
	kept := expr.NewSumChain()
	for _, term := range n.Terms {
		optimized := Optimize(term.Term)
		if c, ok := asConstant(optimized); ok {
			if term.Positive {
				sum += c
			} else {
				sum -= c
			}
			continue
		}
		kept.AddTerm(optimized, term.Positive)
	}
	if len(kept.Terms) == 0 {
		return expr.NewConstant(sum)
	}
	if sum != 0 {
		kept.AddTerm(expr.NewConstant(math.Abs(sum)), sum > 0)
	}
	if len(kept.Terms) == 1 && kept.Terms[0].Positive {
		return kept.Terms[0].Term
	}
	return kept
}

// optimizeMulChain folds every constant factor into a single running
// product, keeping non-constant factors in their original order and
// with their original isDivided flag. A zero numerator factor
// collapses the whole chain to Constant(0) immediately, the required
// refinement over the source's behaviour described in the package
// doc.
func optimizeMulChain(n *expr.MulChain) expr.Expression {
	product := 1.0
	kept := expr.NewMulChain()
	for _, factor := range n.Factors {
		optimized := Optimize(factor.Factor)
		if c, ok := asConstant(optimized); ok {
			if !factor.Divided && c == 0 {
				return expr.NewConstant(0)
			}
			if factor.Divided {
				product /= c
			} else {
				product *= c
			}
			continue
		}
		kept.AddFactor(optimized, factor.Divided)
	}
	if len(kept.Factors) == 0 {
		return expr.NewConstant(product)
	}
	if product != 1 {
		kept.AddFactor(expr.NewConstant(product), false)
	}
	if len(kept.Factors) == 1 && !kept.Factors[0].Divided {
		return kept.Factors[0].Factor
	}
	return kept
}
