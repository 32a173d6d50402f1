// Package parser turns the textual function grammar (spec.md §4.2)
// into an *expr.Expression tree. Unlike the analyser this was
// distilled from, it never rewrites its input: the Lexer produces an
// immutable token stream, and implicit multiplication ("2x" meaning
// "2*x") is detected by the parser noticing that it is about to start
// a new atom while the previous one is still pending, rather than by
// splicing a synthetic '*' byte into the source.
package parser

import (
	"math"
	"strconv"

	"github.com/ensargok/numerix/internal/expr"
)

// Parser consumes a token stream with one token of lookahead.
type Parser struct {
	lex    *Lexer
	tok    Token
	status Status
}

// New returns a Parser positioned at the first token of input.
func New(input string) *Parser {
	p := &Parser{lex: NewLexer(input)}
	p.tok = p.lex.Next()
	return p
}

// Parse parses a complete expression from input and requires that the
// entire input be consumed; trailing garbage after a well-formed
// expression is reported as an unexpected character.
func Parse(input string) (expr.Expression, Status) {
	p := New(input)
	result := p.parseExpression()
	if !p.status.OK() {
		return nil, p.status
	}
	if p.tok.Kind != EOF {
		return nil, unexpected(p.tok.Pos)
	}
	return result, ok()
}

func (p *Parser) advance() {
	if !p.status.OK() {
		return
	}
	p.tok = p.lex.Next()
}

func (p *Parser) fail(s Status) {
	if p.status.OK() {
		p.status = s
	}
}

// parseExpression implements the chain-assembly algorithm: it keeps a
// MulChain under construction for the current term, a pending factor
// not yet pushed into it, that factor's isDivided flag, and the
// isPositive flag the finished term will carry into the enclosing
// SumChain. '+' and '-' flush the pending factor and the current
// MulChain into the SumChain and start a new term; seeing an
// atom-starting token while a factor is already pending flushes that
// factor as an implicitly-multiplied one instead of erroring.
//
// A '+' or '-' encountered while the current term is still completely
// empty (no pending factor, no factors pushed yet) is read as that
// term's unary sign rather than a chain separator — this is what lets
// "-5+x" and, symmetrically, the optimizer's own negative-constant
// output round-trip back through the parser; the grammar the analyser
// was distilled from has no such production and aborts on a leading
// '-'.
func (p *Parser) parseExpression() expr.Expression {
	sum := expr.NewSumChain()
	mul := expr.NewMulChain()
	var arg expr.Expression
	argAvailable := false
	isDivided := false
	isPositive := true

	freshTerm := func() bool { return !argAvailable && len(mul.Factors) == 0 }

	flushFactor := func() {
		if argAvailable {
			mul.AddFactor(arg, isDivided)
			arg = nil
			argAvailable = false
			isDivided = false
		}
	}

	flushTerm := func() {
		flushFactor()
		sum.AddTerm(collapseMul(mul), isPositive)
		mul = expr.NewMulChain()
	}

	for p.status.OK() {
		switch p.tok.Kind {
		case EOF, RPAREN:
			flushTerm()
			return collapseSum(sum)

		case PLUS, MINUS:
			if freshTerm() {
				if p.tok.Kind == MINUS {
					isPositive = !isPositive
				}
				p.advance()
				continue
			}
			flushTerm()
			isPositive = p.tok.Kind == PLUS
			p.advance()
			continue

		case STAR, SLASH:
			if !argAvailable {
				p.fail(unexpected(p.tok.Pos))
				return nil
			}
			mul.AddFactor(arg, isDivided)
			arg = nil
			argAvailable = false
			isDivided = p.tok.Kind == SLASH
			p.advance()
			continue

		case CARET:
			p.advance()
			if !p.status.OK() {
				return nil
			}
			exponent := p.parseParens()
			if !p.status.OK() {
				return nil
			}
			arg = expr.NewPower(arg, exponent)
			argAvailable = true
			continue

		default:
			if !p.tok.Kind.isAtomStart() {
				p.fail(unexpected(p.tok.Pos))
				return nil
			}
			flushFactor()
			arg = p.parseAtom()
			if !p.status.OK() {
				return nil
			}
			argAvailable = true
			continue
		}
	}
	return nil
}

// parseAtom parses a single leaf or function-call atom. The current
// token is known to be atom-starting on entry.
func (p *Parser) parseAtom() expr.Expression {
	switch p.tok.Kind {
	case NUMBER:
		v := parseFloat(p.tok.Lexeme)
		p.advance()
		return expr.NewConstant(v)

	case X:
		p.advance()
		return expr.NewVariable()

	case E:
		p.advance()
		return expr.NewConstant(math.E)

	case PI:
		p.advance()
		return expr.NewConstant(math.Pi)

	case SIN, COS, TAN, CSC, SEC, COT:
		op := trigKindOf(p.tok.Kind)
		p.advance()
		arg := p.parseParens()
		if !p.status.OK() {
			return nil
		}
		return expr.NewTrig(op, arg)

	case ASIN, ACOS, ATAN, ACSC, ASEC, ACOT:
		op := inverseTrigKindOf(p.tok.Kind)
		p.advance()
		arg := p.parseParens()
		if !p.status.OK() {
			return nil
		}
		return expr.NewInverseTrig(op, arg)

	case LOG:
		p.advance()
		if p.tok.Kind != UNDERSCORE {
			p.fail(expected('_', p.tok.Pos))
			return nil
		}
		p.advance()
		base := p.parseParens()
		if !p.status.OK() {
			return nil
		}
		value := p.parseParens()
		if !p.status.OK() {
			return nil
		}
		return expr.NewLogarithm(base, value)

	case LN:
		p.advance()
		value := p.parseParens()
		if !p.status.OK() {
			return nil
		}
		return expr.NewLogarithm(expr.NewConstant(math.E), value)

	case LPAREN:
		return p.parseParens()

	default:
		p.fail(unexpected(p.tok.Pos))
		return nil
	}
}

// parseParens requires the current token to be '(', parses the
// expression it encloses, and consumes the matching ')'.
func (p *Parser) parseParens() expr.Expression {
	if p.tok.Kind != LPAREN {
		p.fail(expected('(', p.tok.Pos))
		return nil
	}
	p.advance()
	inner := p.parseExpression()
	if !p.status.OK() {
		return nil
	}
	if p.tok.Kind != RPAREN {
		p.fail(expected(')', p.tok.Pos))
		return nil
	}
	p.advance()
	return inner
}

// collapseMul unwraps a MulChain with exactly one factor, releasing
// the chain wrapper; a MulChain with zero factors is left as-is and
// evaluates to its multiplicative identity, 1.
func collapseMul(m *expr.MulChain) expr.Expression {
	if len(m.Factors) == 1 {
		return m.Factors[0].Factor
	}
	return m
}

// collapseSum unwraps a SumChain with exactly one term, but only when
// that term is positive: a lone negative term must stay wrapped in a
// one-element SumChain so its sign is not lost, which is what makes a
// leading unary minus printable and re-parseable.
func collapseSum(s *expr.SumChain) expr.Expression {
	if len(s.Terms) == 1 && s.Terms[0].Positive {
		return s.Terms[0].Term
	}
	return s
}

func trigKindOf(k TokenKind) expr.TrigKind {
	switch k {
	case SIN:
		return expr.Sin
	case COS:
		return expr.Cos
	case TAN:
		return expr.Tan
	case CSC:
		return expr.Csc
	case SEC:
		return expr.Sec
	case COT:
		return expr.Cot
	default:
		panic("parser: trigKindOf on non-trig token")
	}
}

func inverseTrigKindOf(k TokenKind) expr.InverseTrigKind {
	switch k {
	case ASIN:
		return expr.Asin
	case ACOS:
		return expr.Acos
	case ATAN:
		return expr.Atan
	case ACSC:
		return expr.Acsc
	case ASEC:
		return expr.Asec
	case ACOT:
		return expr.Acot
	default:
		panic("parser: inverseTrigKindOf on non-inverse-trig token")
	}
}

// parseFloat converts a NUMBER lexeme. The grammar guarantees the
// lexeme is a valid decimal literal, so a conversion failure can only
// mean the lexer and this function have drifted out of sync.
func parseFloat(lexeme string) float64 {
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		panic("parser: lexer produced an invalid NUMBER lexeme: " + lexeme)
	}
	return v
}
