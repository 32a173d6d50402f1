package batch

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ensargok/numerix/internal/expr"
	"github.com/ensargok/numerix/internal/matrix"
	"github.com/ensargok/numerix/internal/numeric"
	"github.com/ensargok/numerix/internal/optimize"
	"github.com/ensargok/numerix/internal/parser"
)

// Run executes one already-parsed Command and returns its result
// line, or an error describing why the line could not be carried out
// (a bad argument, a parse failure in its "f", a singular matrix...).
func Run(cmd *Command) (string, error) {
	switch cmd.Method {
	case "root":
		return runRootFinding(cmd)
	case "integrate":
		return runQuadrature(cmd)
	case "diff":
		return runDifferentiation(cmd)
	case "matrix":
		return runMatrix(cmd)
	default:
		return "", fmt.Errorf("unknown method %q", cmd.Method)
	}
}

// RunScript parses and runs every line of a batch script, skipping
// blank lines and lines starting with '#'. It returns one result
// (possibly empty) and one error per line it ran, in order; skipped
// lines get no entry. When failFast is set it stops at the first error
// instead of continuing, the way a shell script run with "set -e"
// would.
func RunScript(lines []string, failFast bool) ([]string, []error) {
	var results []string
	var errs []error
	for _, line := range lines {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		cmd, err := ParseCommand(line)
		if err != nil {
			results = append(results, "")
			errs = append(errs, fmt.Errorf("%q: %w", line, err))
			if failFast {
				break
			}
			continue
		}
		result, err := Run(cmd)
		results = append(results, result)
		errs = append(errs, err)
		if err != nil && failFast {
			break
		}
	}
	return results, errs
}

func function(cmd *Command) (expr.Expression, error) {
	src, ok := cmd.Get("f")
	if !ok {
		return nil, fmt.Errorf("missing f=\"...\" argument")
	}
	e, status := parser.Parse(src)
	if !status.OK() {
		return nil, fmt.Errorf("parsing f=%q failed at byte %d", src, status.Position)
	}
	return optimize.Optimize(e), nil
}

func floatArg(cmd *Command, key string, fallback float64) (float64, error) {
	v, ok := cmd.Get(key)
	if !ok {
		return fallback, nil
	}
	return strconv.ParseFloat(v, 64)
}

func intArg(cmd *Command, key string, fallback int) (int, error) {
	v, ok := cmd.Get(key)
	if !ok {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func runRootFinding(cmd *Command) (string, error) {
	f, err := function(cmd)
	if err != nil {
		return "", err
	}
	eps, err := floatArg(cmd, "eps", 1e-9)
	if err != nil {
		return "", err
	}

	var root float64
	switch cmd.Sub {
	case "bisection", "falsi":
		a, err := floatArg(cmd, "a", 0)
		if err != nil {
			return "", err
		}
		b, err := floatArg(cmd, "b", 0)
		if err != nil {
			return "", err
		}
		if cmd.Sub == "bisection" {
			root = numeric.Bisection(f, a, b, eps)
		} else {
			root = numeric.RegulaFalsi(f, a, b, eps)
		}
	case "newton":
		x0, err := floatArg(cmd, "x0", 0)
		if err != nil {
			return "", err
		}
		root = numeric.NewtonRaphson(f, x0, eps)
	default:
		return "", fmt.Errorf("unknown root method %q", cmd.Sub)
	}
	if math.IsNaN(root) {
		return "", fmt.Errorf("no root found in the interval")
	}
	return formatFloat(root), nil
}

func runQuadrature(cmd *Command) (string, error) {
	f, err := function(cmd)
	if err != nil {
		return "", err
	}
	a, err := floatArg(cmd, "a", 0)
	if err != nil {
		return "", err
	}
	b, err := floatArg(cmd, "b", 0)
	if err != nil {
		return "", err
	}
	n, err := intArg(cmd, "n", 100)
	if err != nil {
		return "", err
	}

	var area float64
	switch cmd.Sub {
	case "trapezoid":
		area = numeric.Trapezoid(f, a, b, n)
	case "simpson13":
		area = numeric.Simpson13(f, a, b, n)
		if math.IsNaN(area) {
			return "", fmt.Errorf("simpson13 requires an even n, got %d", n)
		}
	case "simpson38":
		area = numeric.Simpson38(f, a, b, n)
	default:
		return "", fmt.Errorf("unknown integrate method %q", cmd.Sub)
	}
	return formatFloat(area), nil
}

func runDifferentiation(cmd *Command) (string, error) {
	f, err := function(cmd)
	if err != nil {
		return "", err
	}
	x, err := floatArg(cmd, "x", 0)
	if err != nil {
		return "", err
	}
	h, err := floatArg(cmd, "h", 1e-5)
	if err != nil {
		return "", err
	}

	var d float64
	switch cmd.Sub {
	case "forward":
		d = numeric.ForwardDifference(f, x, h)
	case "backward":
		d = numeric.BackwardDifference(f, x, h)
	case "central":
		d = numeric.CentralDifference(f, x, h)
	default:
		return "", fmt.Errorf("unknown diff method %q", cmd.Sub)
	}
	return formatFloat(d), nil
}

func runMatrix(cmd *Command) (string, error) {
	rows, err := parseRows(cmd.GetAll("row"))
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("at least one row=\"...\" argument is required")
	}
	m := matrix.FromRows(rows)

	switch cmd.Sub {
	case "determinant":
		det := matrix.Determinant(m)
		if math.IsNaN(det) {
			return "", fmt.Errorf("determinant requires a square matrix")
		}
		return formatFloat(det), nil

	case "invert":
		inv, ok := matrix.Inverse(m)
		if !ok {
			return "", fmt.Errorf("matrix is singular or not square")
		}
		return formatMatrix(inv), nil

	case "solve":
		x, ok := matrix.SolveLinearSystem(m)
		if !ok {
			return "", fmt.Errorf("system is singular or not in augmented n x (n+1) form")
		}
		return formatVector(x), nil

	case "seidel":
		bRow, err := parseRow(mustGet(cmd, "b"))
		if err != nil {
			return "", fmt.Errorf("invalid b=\"...\" vector: %w", err)
		}
		eps, err := floatArg(cmd, "eps", 1e-9)
		if err != nil {
			return "", err
		}
		x, ok := matrix.GaussSeidel(m, bRow, eps)
		if !ok {
			return "", fmt.Errorf("system did not converge")
		}
		return formatVector(x), nil

	default:
		return "", fmt.Errorf("unknown matrix method %q", cmd.Sub)
	}
}

func mustGet(cmd *Command, key string) string {
	v, _ := cmd.Get(key)
	return v
}

func parseRows(raw []string) ([][]float64, error) {
	rows := make([][]float64, len(raw))
	for i, r := range raw {
		parsed, err := parseRow(r)
		if err != nil {
			return nil, fmt.Errorf("invalid row=%q: %w", r, err)
		}
		rows[i] = parsed
	}
	return rows, nil
}

func parseRow(raw string) ([]float64, error) {
	fields := strings.Split(raw, ",")
	out := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

func formatVector(x []float64) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, "\t")
}

func formatMatrix(m *matrix.Matrix) string {
	lines := make([]string, m.Rows)
	for r := 0; r < m.Rows; r++ {
		parts := make([]string, m.Cols)
		for c := 0; c < m.Cols; c++ {
			parts[c] = formatFloat(m.At(r, c))
		}
		lines[r] = strings.Join(parts, "\t")
	}
	return strings.Join(lines, "\n")
}
