package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/ensargok/numerix/internal/expr"
	"github.com/ensargok/numerix/internal/numeric"
)

var integrateGroupCmd = &cobra.Command{
	Use:   "integrate",
	Short: "Integrate a function expression over [a, b].",
}

var trapezoidCmd = &cobra.Command{
	Use:   "trapezoid",
	Short: "Composite trapezoidal rule.",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, a, b, n, err := quadratureProblem(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("%.10g\n", numeric.Trapezoid(f, a, b, n))
		return nil
	},
}

var simpson13Cmd = &cobra.Command{
	Use:   "simpson13",
	Short: "Composite Simpson 1/3 rule (n must be even).",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, a, b, n, err := quadratureProblem(cmd)
		if err != nil {
			return err
		}
		area := numeric.Simpson13(f, a, b, n)
		if math.IsNaN(area) {
			return fmt.Errorf("simpson13 requires an even number of panels, got %d", n)
		}
		fmt.Printf("%.10g\n", area)
		return nil
	},
}

var simpson38Cmd = &cobra.Command{
	Use:   "simpson38",
	Short: "Composite Simpson 3/8 rule.",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, a, b, n, err := quadratureProblem(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("%.10g\n", numeric.Simpson38(f, a, b, n))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(integrateGroupCmd)
	integrateGroupCmd.AddCommand(trapezoidCmd, simpson13Cmd, simpson38Cmd)

	for _, c := range []*cobra.Command{trapezoidCmd, simpson13Cmd, simpson38Cmd} {
		c.Flags().String("fn", "", "function expression")
		c.Flags().Float64("a", 0, "lower bound")
		c.Flags().Float64("b", 0, "upper bound")
		c.Flags().Int("n", 100, "number of panels")
		c.MarkFlagRequired("fn")
	}
}

func quadratureProblem(cmd *cobra.Command) (f expr.Expression, a, b float64, n int, err error) {
	fnSrc, _ := cmd.Flags().GetString("fn")
	a, _ = cmd.Flags().GetFloat64("a")
	b, _ = cmd.Flags().GetFloat64("b")
	n, _ = cmd.Flags().GetInt("n")

	f, err = parseFunction(fnSrc)
	return f, a, b, n, err
}
