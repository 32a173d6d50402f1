package expr

// Copy deep-clones e: the result shares no memory with e. Each variant
// clones its own children in order, so chain flags (Positive/Divided)
// travel with their term rather than being mixed up across siblings.
func Copy(e Expression) Expression {
	switch n := e.(type) {
	case *Constant:
		return NewConstant(n.Value)
	case *Variable:
		return NewVariable()
	case *SumChain:
		clone := NewSumChain()
		for _, term := range n.Terms {
			clone.AddTerm(Copy(term.Term), term.Positive)
		}
		return clone
	case *MulChain:
		clone := NewMulChain()
		for _, factor := range n.Factors {
			clone.AddFactor(Copy(factor.Factor), factor.Divided)
		}
		return clone
	case *Power:
		return NewPower(Copy(n.Base), Copy(n.Exponent))
	case *Logarithm:
		return NewLogarithm(Copy(n.Base), Copy(n.Argument))
	case *Trig:
		return NewTrig(n.Op, Copy(n.Argument))
	case *InverseTrig:
		return NewInverseTrig(n.Op, Copy(n.Argument))
	default:
		panic("expr: Copy on unhandled Expression variant")
	}
}
