package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ensargok/numerix/internal/expr"
	"github.com/ensargok/numerix/internal/numeric"
)

var diffGroupCmd = &cobra.Command{
	Use:   "diff",
	Short: "Numerically differentiate a function expression at a point.",
}

var forwardDiffCmd = &cobra.Command{
	Use:   "forward",
	Short: "Forward difference (f(x+h)-f(x))/h.",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, x, h, err := differentiationProblem(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("%.10g\n", numeric.ForwardDifference(f, x, h))
		return nil
	},
}

var backwardDiffCmd = &cobra.Command{
	Use:   "backward",
	Short: "Backward difference (f(x)-f(x-h))/h.",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, x, h, err := differentiationProblem(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("%.10g\n", numeric.BackwardDifference(f, x, h))
		return nil
	},
}

var centralDiffCmd = &cobra.Command{
	Use:   "central",
	Short: "Central difference (f(x+h)-f(x-h))/(2h).",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, x, h, err := differentiationProblem(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("%.10g\n", numeric.CentralDifference(f, x, h))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffGroupCmd)
	diffGroupCmd.AddCommand(forwardDiffCmd, backwardDiffCmd, centralDiffCmd)

	for _, c := range []*cobra.Command{forwardDiffCmd, backwardDiffCmd, centralDiffCmd} {
		c.Flags().String("fn", "", "function expression")
		c.Flags().Float64("x", 0, "point to differentiate at")
		c.Flags().Float64("h", 1e-5, "step size")
		c.MarkFlagRequired("fn")
	}
}

func differentiationProblem(cmd *cobra.Command) (f expr.Expression, x, h float64, err error) {
	fnSrc, _ := cmd.Flags().GetString("fn")
	x, _ = cmd.Flags().GetFloat64("x")
	h, _ = cmd.Flags().GetFloat64("h")

	f, err = parseFunction(fnSrc)
	return f, x, h, err
}
