package expr

// Destroy recursively severs e's children, freeing the subtree before
// the node itself. Go's garbage collector makes the traversal
// unnecessary for memory reclamation, but the method is kept for API
// fidelity with the tree's ownership model: it recurses into every
// child first, then nils the parent's reference, so code that
// mistakenly reuses a destroyed subtree fails fast with a nil
// dereference instead of silently observing stale data.
func Destroy(e Expression) {
	switch n := e.(type) {
	case *Constant, *Variable:
		// Leaves own no children.
	case *SumChain:
		for i := range n.Terms {
			Destroy(n.Terms[i].Term)
			n.Terms[i].Term = nil
		}
		n.Terms = nil
	case *MulChain:
		for i := range n.Factors {
			Destroy(n.Factors[i].Factor)
			n.Factors[i].Factor = nil
		}
		n.Factors = nil
	case *Power:
		Destroy(n.Base)
		Destroy(n.Exponent)
		n.Base, n.Exponent = nil, nil
	case *Logarithm:
		Destroy(n.Base)
		Destroy(n.Argument)
		n.Base, n.Argument = nil, nil
	case *Trig:
		Destroy(n.Argument)
		n.Argument = nil
	case *InverseTrig:
		Destroy(n.Argument)
		n.Argument = nil
	default:
		panic("expr: Destroy on unhandled Expression variant")
	}
}
