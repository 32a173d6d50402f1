package numeric

import "github.com/ensargok/numerix/internal/expr"

// ForwardDifference approximates f'(x) as (f(x+h)-f(x))/h.
func ForwardDifference(f expr.Expression, x, h float64) float64 {
	return (expr.Evaluate(f, x+h) - expr.Evaluate(f, x)) / h
}

// BackwardDifference approximates f'(x) as (f(x)-f(x-h))/h.
func BackwardDifference(f expr.Expression, x, h float64) float64 {
	return (expr.Evaluate(f, x) - expr.Evaluate(f, x-h)) / h
}

// CentralDifference approximates f'(x) as (f(x+h)-f(x-h))/(2h).
func CentralDifference(f expr.Expression, x, h float64) float64 {
	return (expr.Evaluate(f, x+h) - expr.Evaluate(f, x-h)) / (2 * h)
}
