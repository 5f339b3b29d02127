// Package mathcheck recomputes the answer of an arithmetic prompt from its
// text so generated and authored questions can be checked independently.
package mathcheck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ErrNotComputable is returned for text that is not a closed arithmetic
// expression.
var ErrNotComputable = errors.New("not computable")

// Evaluate computes an integer arithmetic expression exactly. It accepts
// + - * × / ÷ % mod ^ and parentheses. Intermediate values may be
// fractions; the final value must be a whole number.
func Evaluate(expr string) (int, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return 0, err
	}
	p := &parser{toks: toks}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.toks) {
		return 0, fmt.Errorf("%w: unexpected %q", ErrNotComputable, p.toks[p.pos].text)
	}
	if !v.isInt() {
		return 0, fmt.Errorf("result %s is not a whole number", v)
	}
	return int(v.n), nil
}

// EvaluatePrompt evaluates a prompt of the form "<expr> = ?".
func EvaluatePrompt(text string) (int, error) {
	lhs, ok := strings.CutSuffix(strings.TrimSpace(text), "?")
	if !ok {
		return 0, fmt.Errorf("%w: missing '?'", ErrNotComputable)
	}
	lhs, ok = strings.CutSuffix(strings.TrimSpace(lhs), "=")
	if !ok {
		return 0, fmt.Errorf("%w: missing '='", ErrNotComputable)
	}
	return Evaluate(lhs)
}

var linearRe = regexp.MustCompile(`^\s*(-?\d+)x\s*([+-])\s*(\d+)\s*=\s*(-?\d+)\s*,\s*x\s*=\s*\?\s*$`)

// SolveLinear solves a prompt of the form "px + q = r, x = ?" (or
// "px - q = r, x = ?") and returns x. The solution must be a whole number.
func SolveLinear(text string) (int, error) {
	m := linearRe.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("%w: not a linear equation", ErrNotComputable)
	}
	p, _ := strconv.ParseInt(m[1], 10, 64)
	q, _ := strconv.ParseInt(m[3], 10, 64)
	r, _ := strconv.ParseInt(m[4], 10, 64)
	if m[2] == "-" {
		q = -q
	}
	x, err := newRat(r-q, p)
	if err != nil {
		return 0, err
	}
	if !x.isInt() {
		return 0, fmt.Errorf("solution %s is not a whole number", x)
	}
	return int(x.n), nil
}

type tokenKind int

const (
	tokNum tokenKind = iota
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	num  int64
}

func tokenize(s string) ([]token, error) {
	var out []token
	rs := []rune(s)
	for i := 0; i < len(rs); {
		c := rs[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case unicode.IsDigit(c):
			j := i
			for j < len(rs) && unicode.IsDigit(rs[j]) {
				j++
			}
			n, err := strconv.ParseInt(string(rs[i:j]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrNotComputable, err)
			}
			out = append(out, token{kind: tokNum, text: string(rs[i:j]), num: n})
			i = j
		case c == '(':
			out = append(out, token{kind: tokLParen, text: "("})
			i++
		case c == ')':
			out = append(out, token{kind: tokRParen, text: ")"})
			i++
		case strings.ContainsRune("+-*/%^×÷", c):
			out = append(out, token{kind: tokOp, text: normalizeOp(string(c))})
			i++
		case strings.HasPrefix(string(rs[i:]), "mod"):
			out = append(out, token{kind: tokOp, text: "%"})
			i += 3
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrNotComputable, string(c))
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrNotComputable)
	}
	return out, nil
}

func normalizeOp(op string) string {
	switch op {
	case "×":
		return "*"
	case "÷":
		return "/"
	default:
		return op
	}
}

// parser is a recursive-descent evaluator:
//
//	expr   = term { ("+" | "-") term }
//	term   = unary { ("*" | "/" | "%") unary }
//	unary  = "-" unary | power
//	power  = atom [ "^" unary ]
//	atom   = number | "(" expr ")"
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peekOp(ops ...string) (string, bool) {
	if p.pos >= len(p.toks) || p.toks[p.pos].kind != tokOp {
		return "", false
	}
	for _, op := range ops {
		if p.toks[p.pos].text == op {
			return op, true
		}
	}
	return "", false
}

func (p *parser) expr() (rat, error) {
	left, err := p.term()
	if err != nil {
		return rat{}, err
	}
	for {
		op, ok := p.peekOp("+", "-")
		if !ok {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return rat{}, err
		}
		if op == "+" {
			left = left.add(right)
		} else {
			left = left.sub(right)
		}
	}
}

func (p *parser) term() (rat, error) {
	left, err := p.unary()
	if err != nil {
		return rat{}, err
	}
	for {
		op, ok := p.peekOp("*", "/", "%")
		if !ok {
			return left, nil
		}
		p.pos++
		right, err := p.unary()
		if err != nil {
			return rat{}, err
		}
		switch op {
		case "*":
			left = left.mul(right)
		case "/":
			if left, err = left.div(right); err != nil {
				return rat{}, err
			}
		case "%":
			if left, err = left.mod(right); err != nil {
				return rat{}, err
			}
		}
	}
}

func (p *parser) unary() (rat, error) {
	if _, ok := p.peekOp("-"); ok {
		p.pos++
		v, err := p.unary()
		if err != nil {
			return rat{}, err
		}
		return rat{n: -v.n, d: v.d}, nil
	}
	return p.power()
}

func (p *parser) power() (rat, error) {
	base, err := p.atom()
	if err != nil {
		return rat{}, err
	}
	if _, ok := p.peekOp("^"); !ok {
		return base, nil
	}
	p.pos++
	exp, err := p.unary()
	if err != nil {
		return rat{}, err
	}
	return base.pow(exp)
}

func (p *parser) atom() (rat, error) {
	if p.pos >= len(p.toks) {
		return rat{}, fmt.Errorf("%w: unexpected end of expression", ErrNotComputable)
	}
	t := p.toks[p.pos]
	switch t.kind {
	case tokNum:
		p.pos++
		return whole(t.num), nil
	case tokLParen:
		p.pos++
		v, err := p.expr()
		if err != nil {
			return rat{}, err
		}
		if p.pos >= len(p.toks) || p.toks[p.pos].kind != tokRParen {
			return rat{}, fmt.Errorf("%w: missing ')'", ErrNotComputable)
		}
		p.pos++
		return v, nil
	default:
		return rat{}, fmt.Errorf("%w: unexpected %q", ErrNotComputable, t.text)
	}
}
