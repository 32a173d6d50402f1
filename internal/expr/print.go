package expr

import (
	"strconv"
	"strings"
)

// String renders e as infix text. The rendering is deliberately the
// textual mirror of the grammar in the parser package: SumChain emits
// parenthesized signed concatenation, MulChain emits factors separated
// by '*'/'/', Power emits "base^(exp)", Logarithm emits
// "log_(base)(arg)", and every other variant emits its own notation.
// Re-parsing the result yields a structurally equivalent tree up to
// chain collapsing.
func String(e Expression) string {
	var b strings.Builder
	writeExpression(&b, e)
	return b.String()
}

func writeExpression(b *strings.Builder, e Expression) {
	switch n := e.(type) {
	case *Constant:
		b.WriteString(formatNumber(n.Value))
	case *Variable:
		b.WriteString("x")
	case *SumChain:
		writeSumChain(b, n)
	case *MulChain:
		writeMulChain(b, n)
	case *Power:
		writeBase(b, n.Base)
		b.WriteString("^(")
		writeExpression(b, n.Exponent)
		b.WriteString(")")
	case *Logarithm:
		b.WriteString("log_(")
		writeExpression(b, n.Base)
		b.WriteString(")(")
		writeExpression(b, n.Argument)
		b.WriteString(")")
	case *Trig:
		b.WriteString(n.Op.String())
		b.WriteString("(")
		writeExpression(b, n.Argument)
		b.WriteString(")")
	case *InverseTrig:
		b.WriteString(n.Op.String())
		b.WriteString("(")
		writeExpression(b, n.Argument)
		b.WriteString(")")
	default:
		panic("expr: String on unhandled Expression variant")
	}
}

// writeBase prints a Power base or a MulChain factor, parenthesizing
// it when its bare text would not re-parse back into that same
// operand: a negative Constant (a leading '-' binds looser than '^',
// '*' and '/') or a MulChain (which, unlike SumChain, does not
// parenthesize itself). Every other variant already prints as a
// single atom.
func writeBase(b *strings.Builder, base Expression) {
	if needsBaseParens(base) {
		b.WriteString("(")
		writeExpression(b, base)
		b.WriteString(")")
		return
	}
	writeExpression(b, base)
}

func needsBaseParens(e Expression) bool {
	switch n := e.(type) {
	case *Constant:
		return n.Value < 0
	case *MulChain:
		return true
	default:
		return false
	}
}

func writeSumChain(b *strings.Builder, n *SumChain) {
	if len(n.Terms) == 0 {
		b.WriteString("0")
		return
	}
	b.WriteString("(")
	for i, term := range n.Terms {
		positive, magnitude := signedTerm(term)
		if i == 0 {
			if !positive {
				b.WriteString("-")
			}
		} else if positive {
			b.WriteString("+")
		} else {
			b.WriteString("-")
		}
		writeExpression(b, magnitude)
	}
	b.WriteString(")")
}

// signedTerm folds a negative-constant term's sign into the chain's
// own sign flag, so printing never emits an adjacent "+-" or "--" and
// the term re-parses as a plain positive Constant.
func signedTerm(term SumTerm) (positive bool, magnitude Expression) {
	if c, ok := term.Term.(*Constant); ok && c.Value < 0 {
		return !term.Positive, NewConstant(-c.Value)
	}
	return term.Positive, term.Term
}

func writeMulChain(b *strings.Builder, n *MulChain) {
	if len(n.Factors) == 0 {
		b.WriteString("1")
		return
	}
	for i, factor := range n.Factors {
		if i > 0 {
			if factor.Divided {
				b.WriteString("/")
			} else {
				b.WriteString("*")
			}
		}
		writeBase(b, factor.Factor)
	}
}

// formatNumber renders v without exponential notation so the result
// always re-parses under the decimal-literal grammar.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
