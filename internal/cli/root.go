// Package cli wires the numerical-analysis kernels (internal/numeric,
// internal/matrix, internal/batch) into a cobra command tree. Parsing
// and numerics stay free of any cobra/logrus dependency; this package
// is the only place that translates a core-library result into a
// process exit code or a log line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"

	"github.com/ensargok/numerix/internal/diagnostics"
	"github.com/ensargok/numerix/internal/expr"
	"github.com/ensargok/numerix/internal/optimize"
	"github.com/ensargok/numerix/internal/parser"
)

// Version is filled in by the release build; "dev" otherwise.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "numerix",
	Short: "An interactive numerical-analysis workbench.",
	Long: "numerix parses a function expression, optimizes it by constant folding, " +
		"and evaluates it through root finders, quadratures, differentiation and a dense matrix kernel.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "log each parse/optimize step at debug level")
	log.SetFormatter(&log.TextFormatter{FullTimestamp: false})
}

// Execute runs the command tree; it is the sole entry point main.go
// calls.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseFunction parses and optimizes a function-expression flag value.
// On failure it prints a caret diagnostic to stderr and returns an
// error so the calling cobra command exits with status 1.
func parseFunction(src string) (expr.Expression, error) {
	log.WithField("source", src).Debug("parsing function expression")
	e, status := parser.Parse(src)
	if !status.OK() {
		fmt.Fprint(os.Stderr, diagnostics.Format(src, status))
		return nil, fmt.Errorf("parse error: %s", diagnostics.Message(status))
	}
	optimized := optimize.Optimize(e)
	log.WithField("optimized", expr.String(optimized)).Debug("optimized function expression")
	return optimized, nil
}
