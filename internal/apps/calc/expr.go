// Package calc implements a four-function calculator: an expression
// evaluator for + - * / and parentheses, a display buffer state machine, and
// a terminal front end with a clickable keypad.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Evaluation errors. Returned errors wrap one of these.
var (
	ErrEmpty          = errors.New("empty expression")
	ErrSyntax         = errors.New("syntax error")
	ErrDivisionByZero = errors.New("division by zero")
	ErrRange          = errors.New("result out of range")
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokOp
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return strconv.Quote(t.text)
}

// tokenize splits an expression into numbers, operators and parentheses.
// Whitespace is ignored.
func tokenize(src string) ([]token, error) {
	var toks []token

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '+' || c == '-' || c == '*' || c == '/':
			toks = append(toks, token{kind: tokOp, text: string(c), pos: i})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		case isDigit(c) || c == '.':
			start, dots, digits := i, 0, 0
			for i < len(src) && (isDigit(src[i]) || src[i] == '.') {
				if src[i] == '.' {
					dots++
				} else {
					digits++
				}
				i++
			}
			if dots > 1 || digits == 0 {
				return nil, fmt.Errorf("calc: malformed number %q at %d: %w", src[start:i], start, ErrSyntax)
			}
			// Exponent suffix, as Format writes for very large or small values
			if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
				j := i + 1
				if j < len(src) && (src[j] == '+' || src[j] == '-') {
					j++
				}
				if j >= len(src) || !isDigit(src[j]) {
					return nil, fmt.Errorf("calc: malformed number %q at %d: %w", src[start:j], start, ErrSyntax)
				}
				for j < len(src) && isDigit(src[j]) {
					j++
				}
				i = j
			}
			toks = append(toks, token{kind: tokNumber, text: src[start:i], pos: start})
		default:
			return nil, fmt.Errorf("calc: unexpected character %q at %d: %w", c, i, ErrSyntax)
		}
	}

	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parser is a recursive-descent evaluator over:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | primary
//	primary = number | "(" expr ")"
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expr() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.text != "+" && t.text != "-") {
			return left, nil
		}
		p.next()
		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if t.text == "+" {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *parser) term() (float64, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.text != "*" && t.text != "/") {
			return left, nil
		}
		p.next()
		right, err := p.unary()
		if err != nil {
			return 0, err
		}
		if t.text == "*" {
			left *= right
			continue
		}
		if right == 0 {
			return 0, fmt.Errorf("calc: divide at %d: %w", t.pos, ErrDivisionByZero)
		}
		left /= right
	}
}

func (p *parser) unary() (float64, error) {
	t := p.peek()
	if t.kind == tokOp && (t.text == "+" || t.text == "-") {
		p.next()
		v, err := p.unary()
		if err != nil {
			return 0, err
		}
		if t.text == "-" {
			return -v, nil
		}
		return v, nil
	}
	return p.primary()
}

func (p *parser) primary() (float64, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return 0, fmt.Errorf("calc: number %s at %d: %w", t, t.pos, ErrRange)
		}
		return v, nil

	case tokLParen:
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return 0, fmt.Errorf("calc: expected \")\" at %d, got %s: %w", closing.pos, closing, ErrSyntax)
		}
		return v, nil

	default:
		return 0, fmt.Errorf("calc: unexpected %s at %d: %w", t, t.pos, ErrSyntax)
	}
}

// Eval evaluates an arithmetic expression with the usual precedence:
// unary signs bind tightest, then * and /, then + and -.
func Eval(src string) (float64, error) {
	if strings.TrimSpace(src) == "" {
		return 0, fmt.Errorf("calc: %w", ErrEmpty)
	}

	toks, err := tokenize(src)
	if err != nil {
		return 0, err
	}

	p := &parser{toks: toks}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return 0, fmt.Errorf("calc: unexpected %s at %d: %w", t, t.pos, ErrSyntax)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("calc: %w", ErrRange)
	}
	return v, nil
}

// Format renders v as the shortest decimal that reads back to the same
// value. Exponent notation is used only for very large or very small
// magnitudes.
func Format(v float64) string {
	if v == 0 {
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
