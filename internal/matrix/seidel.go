package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// maxSeidelSweeps bounds iteration when a system legitimately never
// satisfies the convergence tolerance (e.g. it is not diagonally
// dominant even after pivoting).
const maxSeidelSweeps = 10_000

// GaussSeidel solves a x = b iteratively. It first permutes the rows
// of a (and b along with them) with a single greedy pass so that each
// row's largest-magnitude entry sits on the diagonal, then sweeps
// xi <- (bi - sum_{j!=i} aij*xj) / aii until every component moves by
// less than eps between successive sweeps.
//
// The convergence check compares the whole iterate vector against its
// value at the start of the current sweep and resets for the next
// sweep; the source this is modelled on instead carries its "has
// anything changed by more than eps" flag across sweeps without
// clearing it, so once any single component ever moved by more than
// eps in any sweep, the loop could never again detect convergence.
// That reset is a required fix, not a behavioural choice.
func GaussSeidel(a *Matrix, b []float64, eps float64) ([]float64, bool) {
	if !a.IsSquare() || a.Rows != len(b) {
		return nil, false
	}
	n := a.Rows
	work := a.Clone()
	rhs := append([]float64(nil), b...)
	pivotForDiagonalDominance(work, rhs)

	for i := 0; i < n; i++ {
		if work.At(i, i) == 0 {
			return nil, false
		}
	}

	x := make([]float64, n)
	for sweep := 0; sweep < maxSeidelSweeps; sweep++ {
		prev := append([]float64(nil), x...)
		for i := 0; i < n; i++ {
			sum := rhs[i]
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				sum -= work.At(i, j) * x[j]
			}
			x[i] = sum / work.At(i, i)
		}
		if floats.Distance(x, prev, math.Inf(1)) < eps {
			return x, true
		}
	}
	return x, false
}

// pivotForDiagonalDominance greedily assigns, for each row in turn,
// the remaining row whose entry in that row's column has the largest
// magnitude, swapping both a and its paired rhs entry together. This
// is the single-pass heuristic the iteration's convergence depends
// on; it does not guarantee diagonal dominance, only improves on the
// matrix's original row order.
func pivotForDiagonalDominance(a *Matrix, b []float64) {
	n := a.Rows
	for col := 0; col < n; col++ {
		best := col
		for r := col; r < n; r++ {
			if math.Abs(a.At(r, col)) > math.Abs(a.At(best, col)) {
				best = r
			}
		}
		if best != col {
			a.SwapRows(best, col)
			b[best], b[col] = b[col], b[best]
		}
	}
}
