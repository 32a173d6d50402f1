// Command numerix is the CLI front end for the numerical-analysis
// workbench: parsing, optimizing and evaluating function expressions
// through root finders, quadratures, differentiation and a dense
// matrix kernel.
package main

import "github.com/ensargok/numerix/internal/cli"

func main() {
	cli.Execute()
}
