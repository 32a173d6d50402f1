// Package matrix implements a dense row-major matrix and the
// elementary operations, determinant, inverse, linear-system solvers
// and Gauss-Seidel iteration built on top of them.
package matrix

import "math"

// Matrix is a dense row-major matrix of real entries.
type Matrix struct {
	Rows, Cols int
	data       [][]float64
}

// New returns a rows x cols matrix of zeros.
func New(rows, cols int) *Matrix {
	data := make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, cols)
	}
	return &Matrix{Rows: rows, Cols: cols, data: data}
}

// FromRows returns a matrix whose rows are the given slices. The
// caller must not mutate the slices afterward through any other
// reference; FromRows takes ownership of them directly, the same way
// the row-swap operations below trade row slices by header rather
// than by copying their contents.
func FromRows(rows [][]float64) *Matrix {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	return &Matrix{Rows: len(rows), Cols: cols, data: rows}
}

// At returns the entry at (row, col).
func (m *Matrix) At(row, col int) float64 { return m.data[row][col] }

// Set stores v at (row, col).
func (m *Matrix) Set(row, col int, v float64) { m.data[row][col] = v }

// Row returns the underlying slice for a row; mutating it mutates m.
func (m *Matrix) Row(row int) []float64 { return m.data[row] }

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := New(m.Rows, m.Cols)
	for i := range m.data {
		copy(out.data[i], m.data[i])
	}
	return out
}

// IsSquare reports whether the matrix has equal row and column counts.
func (m *Matrix) IsSquare() bool { return m.Rows == m.Cols }

// AddRow performs r1 <- r1 + scale*r2 in place.
func (m *Matrix) AddRow(r1, r2 int, scale float64) {
	for c := 0; c < m.Cols; c++ {
		m.data[r1][c] += scale * m.data[r2][c]
	}
}

// AddColumn performs c1 <- c1 + scale*c2 in place.
func (m *Matrix) AddColumn(c1, c2 int, scale float64) {
	for r := 0; r < m.Rows; r++ {
		m.data[r][c1] += scale * m.data[r][c2]
	}
}

// MultiplyRow scales row r in place by scale.
func (m *Matrix) MultiplyRow(r int, scale float64) {
	for c := 0; c < m.Cols; c++ {
		m.data[r][c] *= scale
	}
}

// MultiplyColumn scales column c in place by scale.
func (m *Matrix) MultiplyColumn(c int, scale float64) {
	for r := 0; r < m.Rows; r++ {
		m.data[r][c] *= scale
	}
}

// SwapRows exchanges two rows by trading their slice headers, an O(1)
// operation regardless of column count.
func (m *Matrix) SwapRows(r1, r2 int) {
	m.data[r1], m.data[r2] = m.data[r2], m.data[r1]
}

// SwapColumns exchanges two columns entry by entry (columns are not
// contiguous slices, so there is no header to trade).
func (m *Matrix) SwapColumns(c1, c2 int) {
	for r := 0; r < m.Rows; r++ {
		m.data[r][c1], m.data[r][c2] = m.data[r][c2], m.data[r][c1]
	}
}

// Determinant computes det(m) by cofactor expansion along row 0,
// O(n!). A non-square matrix has no determinant and returns NaN.
func Determinant(m *Matrix) float64 {
	if !m.IsSquare() {
		return math.NaN()
	}
	return determinant(m.data)
}

func determinant(rows [][]float64) float64 {
	n := len(rows)
	switch n {
	case 0:
		return 1
	case 1:
		return rows[0][0]
	case 2:
		return rows[0][0]*rows[1][1] - rows[0][1]*rows[1][0]
	}
	sign := 1.0
	det := 0.0
	for col := 0; col < n; col++ {
		cof := rows[0][col]
		if cof != 0 {
			det += sign * cof * determinant(minor(rows, 0, col))
		}
		sign = -sign
	}
	return det
}

// minor returns the submatrix with the given row and column removed.
func minor(rows [][]float64, row, col int) [][]float64 {
	out := make([][]float64, 0, len(rows)-1)
	for r, line := range rows {
		if r == row {
			continue
		}
		trimmed := make([]float64, 0, len(line)-1)
		for c, v := range line {
			if c == col {
				continue
			}
			trimmed = append(trimmed, v)
		}
		out = append(out, trimmed)
	}
	return out
}

// Inverse computes m's inverse by Gauss-Jordan elimination with
// partial pivoting. It returns (nil, false) for a non-square or
// singular matrix instead of dividing by a zero pivot.
func Inverse(m *Matrix) (*Matrix, bool) {
	if !m.IsSquare() {
		return nil, false
	}
	n := m.Rows
	work := m.Clone()
	result := identity(n)

	for col := 0; col < n; col++ {
		pivotRow := col
		if work.data[col][col] == 0 {
			found := false
			for r := col + 1; r < n; r++ {
				if work.data[r][col] != 0 {
					pivotRow = r
					found = true
					break
				}
			}
			if !found {
				return nil, false
			}
		}
		if pivotRow != col {
			work.SwapRows(pivotRow, col)
			result.SwapRows(pivotRow, col)
		}

		pivot := work.data[col][col]
		work.MultiplyRow(col, 1/pivot)
		result.MultiplyRow(col, 1/pivot)

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := -work.data[r][col]
			if factor == 0 {
				continue
			}
			work.AddRow(r, col, factor)
			result.AddRow(r, col, factor)
		}
	}
	return result, true
}

func identity(n int) *Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.data[i][i] = 1
	}
	return m
}

// SolveLinearSystem runs forward elimination with partial pivoting
// over an n x (n+1) augmented matrix, then back-substitutes into the
// solution vector. It returns (nil, false) if augmented is not
// n x (n+1) or the system is singular.
func SolveLinearSystem(augmented *Matrix) ([]float64, bool) {
	n := augmented.Rows
	if augmented.Cols != n+1 {
		return nil, false
	}
	work := augmented.Clone()

	for col := 0; col < n; col++ {
		pivotRow := col
		for r := col; r < n; r++ {
			if math.Abs(work.data[r][col]) > math.Abs(work.data[pivotRow][col]) {
				pivotRow = r
			}
		}
		if work.data[pivotRow][col] == 0 {
			return nil, false
		}
		if pivotRow != col {
			work.SwapRows(pivotRow, col)
		}
		for r := col + 1; r < n; r++ {
			factor := -work.data[r][col] / work.data[col][col]
			work.AddRow(r, col, factor)
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := work.data[i][n]
		for j := i + 1; j < n; j++ {
			sum -= work.data[i][j] * x[j]
		}
		x[i] = sum / work.data[i][i]
	}
	return x, true
}
