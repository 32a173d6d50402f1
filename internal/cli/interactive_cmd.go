package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ensargok/numerix/internal/expr"
	"github.com/ensargok/numerix/internal/matrix"
	"github.com/ensargok/numerix/internal/numeric"
)

const banner = `
==============================================
   numerix -- numerical analysis workbench
   (ported from the function analyser
    originally written by Ensar Gok)
==============================================`

var menu = []string{
	"Bisection",
	"Regula falsi",
	"Newton-Raphson",
	"Trapezoid integration",
	"Simpson 1/3 integration",
	"Simpson 3/8 integration",
	"Forward difference",
	"Backward difference",
	"Central difference",
	"Matrix determinant",
	"Quit",
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Run the banner-and-menu interactive mode.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(in *os.File, out *os.File) error {
	reader := bufio.NewScanner(in)
	fmt.Fprintln(out, banner)

	for {
		fmt.Fprintln(out)
		for i, item := range menu {
			fmt.Fprintf(out, "%2d) %s\n", i+1, item)
		}
		fmt.Fprint(out, "choose a method: ")
		if !reader.Scan() {
			return nil
		}
		choice, err := strconv.Atoi(trimmed(reader.Text()))
		if err != nil || choice < 1 || choice > len(menu) {
			fmt.Fprintln(out, "not a valid menu entry")
			continue
		}
		if choice == len(menu) {
			return nil
		}
		if err := runInteractiveMethod(choice, reader, out); err != nil {
			fmt.Fprintln(out, "error:", err)
		}
	}
}

func runInteractiveMethod(choice int, reader *bufio.Scanner, out *os.File) error {
	f, err := promptFunction(reader, out)
	if err != nil {
		return err
	}

	switch choice {
	case 1, 2:
		a := promptFloat(reader, out, "a: ")
		b := promptFloat(reader, out, "b: ")
		eps := promptFloat(reader, out, "eps: ")
		var root float64
		if choice == 1 {
			root = numeric.Bisection(f, a, b, eps)
		} else {
			root = numeric.RegulaFalsi(f, a, b, eps)
		}
		return printScalarOrError(out, root, "no root found in the interval")

	case 3:
		x0 := promptFloat(reader, out, "x0: ")
		eps := promptFloat(reader, out, "eps: ")
		root := numeric.NewtonRaphson(f, x0, eps)
		return printScalarOrError(out, root, "no root found")

	case 4, 5, 6:
		a := promptFloat(reader, out, "a: ")
		b := promptFloat(reader, out, "b: ")
		n := int(promptFloat(reader, out, "n: "))
		var area float64
		switch choice {
		case 4:
			area = numeric.Trapezoid(f, a, b, n)
		case 5:
			area = numeric.Simpson13(f, a, b, n)
		case 6:
			area = numeric.Simpson38(f, a, b, n)
		}
		return printScalarOrError(out, area, "simpson13 requires an even n")

	case 7, 8, 9:
		x := promptFloat(reader, out, "x: ")
		h := promptFloat(reader, out, "h: ")
		var d float64
		switch choice {
		case 7:
			d = numeric.ForwardDifference(f, x, h)
		case 8:
			d = numeric.BackwardDifference(f, x, h)
		case 9:
			d = numeric.CentralDifference(f, x, h)
		}
		fmt.Fprintf(out, "= %.10g\n", d)
		return nil

	case 10:
		return runInteractiveDeterminant(reader, out)
	}
	return nil
}

func runInteractiveDeterminant(reader *bufio.Scanner, out *os.File) error {
	fmt.Fprint(out, "matrix size n: ")
	reader.Scan()
	n, err := strconv.Atoi(trimmed(reader.Text()))
	if err != nil || n <= 0 {
		return fmt.Errorf("invalid matrix size")
	}
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			row[j] = promptFloat(reader, out, fmt.Sprintf("[%d][%d]: ", i, j))
		}
		rows[i] = row
	}
	det := matrix.Determinant(matrix.FromRows(rows))
	fmt.Fprintf(out, "determinant = %.10g\n", det)
	return nil
}

func promptFunction(reader *bufio.Scanner, out *os.File) (expr.Expression, error) {
	fmt.Fprint(out, "f(x) = ")
	if !reader.Scan() {
		return nil, fmt.Errorf("no input")
	}
	return parseFunction(trimmed(reader.Text()))
}

func promptFloat(reader *bufio.Scanner, out *os.File, prompt string) float64 {
	fmt.Fprint(out, prompt)
	reader.Scan()
	v, _ := strconv.ParseFloat(trimmed(reader.Text()), 64)
	return v
}

func printScalarOrError(out *os.File, v float64, onNaN string) error {
	if v != v { // NaN
		return fmt.Errorf("%s", onNaN)
	}
	fmt.Fprintf(out, "= %.10g\n", v)
	return nil
}

func trimmed(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t' || s[start] == '\r') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t' || s[end-1] == '\r') {
		end--
	}
	return s[start:end]
}
