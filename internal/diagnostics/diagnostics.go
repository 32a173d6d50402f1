// Package diagnostics renders a parser.Status failure as a Rust-like
// caret diagnostic: a colored header naming the problem, a location
// line, the offending source line, and a caret pointing at the exact
// byte the parser stopped at.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/ensargok/numerix/internal/parser"
)

var (
	errorLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	dim         = color.New(color.Faint).SprintFunc()
	caretColor  = color.New(color.FgRed, color.Bold).SprintFunc()
	sourceLabel = "input"
)

// Message returns the human-readable reason for a failing status,
// independent of any source text — this is what the CLI layer logs
// and what a non-interactive caller can use without formatting.
func Message(status parser.Status) string {
	switch status.Code {
	case parser.StatusUnexpectedCharacter:
		return "unexpected character"
	case parser.StatusExpectedCharacter:
		return fmt.Sprintf("expected '%c'", status.Expected)
	default:
		return "unknown parse error"
	}
}

// Format renders a full caret diagnostic for a parse failure against
// the original source text. Calling it with an OK status returns an
// empty string.
func Format(source string, status parser.Status) string {
	if status.OK() {
		return ""
	}

	column := status.Position + 1
	lineWidth := 3

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", errorLabel("error"), Message(status))
	fmt.Fprintf(&b, "%s %s %s:1:%d\n", strings.Repeat(" ", lineWidth), dim("-->"), sourceLabel, column)
	fmt.Fprintf(&b, "%s %s\n", strings.Repeat(" ", lineWidth), dim("│"))
	fmt.Fprintf(&b, "%*d %s %s\n", lineWidth, 1, dim("│"), source)
	marker := strings.Repeat(" ", max(0, status.Position)) + caretColor("^")
	fmt.Fprintf(&b, "%s %s %s\n", strings.Repeat(" ", lineWidth), dim("│"), marker)
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
