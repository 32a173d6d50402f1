package expr

import "math"

// Evaluate computes the value of e at x. It is total for well-formed
// trees: domain errors (ln of a negative argument, tan at a
// singularity, division by zero) propagate as IEEE NaN/+-Inf through
// the recursive computation rather than panicking, matching the
// reference evaluator's semantics.
func Evaluate(e Expression, x float64) float64 {
	switch n := e.(type) {
	case *Constant:
		return n.Value
	case *Variable:
		return x
	case *SumChain:
		result := 0.0
		for _, term := range n.Terms {
			v := Evaluate(term.Term, x)
			if term.Positive {
				result += v
			} else {
				result -= v
			}
		}
		return result
	case *MulChain:
		result := 1.0
		for _, factor := range n.Factors {
			v := Evaluate(factor.Factor, x)
			if factor.Divided {
				result /= v
			} else {
				result *= v
			}
		}
		return result
	case *Power:
		return math.Pow(Evaluate(n.Base, x), Evaluate(n.Exponent, x))
	case *Logarithm:
		return math.Log(Evaluate(n.Argument, x)) / math.Log(Evaluate(n.Base, x))
	case *Trig:
		return evaluateTrig(n.Op, Evaluate(n.Argument, x))
	case *InverseTrig:
		return evaluateInverseTrig(n.Op, Evaluate(n.Argument, x))
	default:
		panic("expr: Evaluate on unhandled Expression variant")
	}
}

func evaluateTrig(op TrigKind, v float64) float64 {
	switch op {
	case Sin:
		return math.Sin(v)
	case Cos:
		return math.Cos(v)
	case Tan:
		return math.Tan(v)
	case Csc:
		return 1 / math.Sin(v)
	case Sec:
		return 1 / math.Cos(v)
	case Cot:
		return 1 / math.Tan(v)
	default:
		panic("expr: unhandled TrigKind")
	}
}

func evaluateInverseTrig(op InverseTrigKind, v float64) float64 {
	switch op {
	case Asin:
		return math.Asin(v)
	case Acos:
		return math.Acos(v)
	case Atan:
		return math.Atan(v)
	case Acsc:
		return math.Asin(1 / v)
	case Asec:
		return math.Acos(1 / v)
	case Acot:
		return math.Atan(1 / v)
	default:
		panic("expr: unhandled InverseTrigKind")
	}
}
