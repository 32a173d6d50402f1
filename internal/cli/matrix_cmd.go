package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ensargok/numerix/internal/matrix"
)

var matrixGroupCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Dense matrix operations: determinant, inverse, linear solve, Gauss-Seidel.",
}

var determinantCmd = &cobra.Command{
	Use:   "determinant",
	Short: "Compute a determinant by cofactor expansion.",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readMatrix(cmd)
		if err != nil {
			return err
		}
		det := matrix.Determinant(m)
		if det != det { // NaN
			return fmt.Errorf("determinant requires a square matrix")
		}
		fmt.Printf("%.10g\n", det)
		return nil
	},
}

var invertCmd = &cobra.Command{
	Use:   "invert",
	Short: "Invert a square matrix by Gauss-Jordan elimination.",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readMatrix(cmd)
		if err != nil {
			return err
		}
		inv, ok := matrix.Inverse(m)
		if !ok {
			return fmt.Errorf("matrix is singular or not square")
		}
		printMatrix(inv)
		return nil
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a linear system given as an n x (n+1) augmented matrix.",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readMatrix(cmd)
		if err != nil {
			return err
		}
		x, ok := matrix.SolveLinearSystem(m)
		if !ok {
			return fmt.Errorf("system is singular or not in augmented n x (n+1) form")
		}
		printVector(x)
		return nil
	},
}

var seidelCmd = &cobra.Command{
	Use:   "seidel",
	Short: "Solve a (diagonally dominant, after pivoting) linear system by Gauss-Seidel iteration.",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readMatrix(cmd)
		if err != nil {
			return err
		}
		bFlag, _ := cmd.Flags().GetString("b")
		b, err := parseRow(bFlag)
		if err != nil {
			return fmt.Errorf("invalid --b vector: %w", err)
		}
		eps, _ := cmd.Flags().GetFloat64("eps")

		x, ok := matrix.GaussSeidel(m, b, eps)
		if !ok {
			return fmt.Errorf("system did not converge (singular, dimension mismatch, or zero pivot after pivoting)")
		}
		printVector(x)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matrixGroupCmd)
	matrixGroupCmd.AddCommand(determinantCmd, invertCmd, solveCmd, seidelCmd)

	for _, c := range []*cobra.Command{determinantCmd, invertCmd, solveCmd, seidelCmd} {
		c.Flags().StringArray("row", nil, "one matrix row as comma-separated numbers; repeat per row")
	}
	seidelCmd.Flags().String("b", "", "right-hand-side vector as comma-separated numbers")
	seidelCmd.Flags().Float64("eps", 1e-9, "convergence tolerance")
}

func readMatrix(cmd *cobra.Command) (*matrix.Matrix, error) {
	rows, _ := cmd.Flags().GetStringArray("row")
	if len(rows) == 0 {
		return nil, fmt.Errorf("at least one --row is required")
	}
	data := make([][]float64, len(rows))
	for i, row := range rows {
		parsed, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("invalid --row %q: %w", row, err)
		}
		data[i] = parsed
	}
	return matrix.FromRows(data), nil
}

func parseRow(row string) ([]float64, error) {
	fields := strings.Split(row, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func printMatrix(m *matrix.Matrix) {
	for r := 0; r < m.Rows; r++ {
		parts := make([]string, m.Cols)
		for c := 0; c < m.Cols; c++ {
			parts[c] = fmt.Sprintf("%.10g", m.At(r, c))
		}
		fmt.Println(strings.Join(parts, "\t"))
	}
}

func printVector(x []float64) {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = fmt.Sprintf("%.10g", v)
	}
	fmt.Println(strings.Join(parts, "\t"))
}
