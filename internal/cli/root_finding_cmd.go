package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/ensargok/numerix/internal/expr"
	"github.com/ensargok/numerix/internal/numeric"
)

var rootGroupCmd = &cobra.Command{
	Use:   "root",
	Short: "Find a root of a function expression.",
}

var bisectionCmd = &cobra.Command{
	Use:   "bisection",
	Short: "Find a root by bisection over [a, b].",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, a, b, eps, err := boundedProblem(cmd)
		if err != nil {
			return err
		}
		root := numeric.Bisection(f, a, b, eps)
		return reportRoot(root)
	},
}

var regulaFalsiCmd = &cobra.Command{
	Use:   "falsi",
	Short: "Find a root by regula falsi (false position) over [a, b].",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, a, b, eps, err := boundedProblem(cmd)
		if err != nil {
			return err
		}
		root := numeric.RegulaFalsi(f, a, b, eps)
		return reportRoot(root)
	},
}

var newtonCmd = &cobra.Command{
	Use:   "newton",
	Short: "Find a root by Newton-Raphson from an initial guess x0.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fnSrc, _ := cmd.Flags().GetString("fn")
		x0, _ := cmd.Flags().GetFloat64("x0")
		eps, _ := cmd.Flags().GetFloat64("eps")

		f, err := parseFunction(fnSrc)
		if err != nil {
			return err
		}
		root := numeric.NewtonRaphson(f, x0, eps)
		return reportRoot(root)
	},
}

func init() {
	rootCmd.AddCommand(rootGroupCmd)
	rootGroupCmd.AddCommand(bisectionCmd, regulaFalsiCmd, newtonCmd)

	for _, c := range []*cobra.Command{bisectionCmd, regulaFalsiCmd} {
		c.Flags().String("fn", "", "function expression, e.g. \"x^(2)-2\"")
		c.Flags().Float64("a", 0, "lower bracket endpoint")
		c.Flags().Float64("b", 0, "upper bracket endpoint")
		c.Flags().Float64("eps", 1e-9, "convergence tolerance")
		c.MarkFlagRequired("fn")
	}

	newtonCmd.Flags().String("fn", "", "function expression")
	newtonCmd.Flags().Float64("x0", 0, "initial guess")
	newtonCmd.Flags().Float64("eps", 1e-9, "convergence tolerance")
	newtonCmd.MarkFlagRequired("fn")
}

// boundedProblem reads the common --fn/--a/--b/--eps flags shared by
// the bracketing methods and parses the function expression.
func boundedProblem(cmd *cobra.Command) (f expr.Expression, a, b, eps float64, err error) {
	fnSrc, _ := cmd.Flags().GetString("fn")
	a, _ = cmd.Flags().GetFloat64("a")
	b, _ = cmd.Flags().GetFloat64("b")
	eps, _ = cmd.Flags().GetFloat64("eps")

	f, err = parseFunction(fnSrc)
	return f, a, b, eps, err
}

func reportRoot(root float64) error {
	if math.IsNaN(root) {
		return fmt.Errorf("no root found in the interval")
	}
	fmt.Printf("%.10g\n", root)
	return nil
}
