// internal/mathexpr/mathexpr.go
// Package mathexpr implements a narrow algebraic expression normalizer for
// answer equivalence checking. Expressions over literals, variables and
// + - * / ^ are parsed, expanded into a canonical polynomial with rational
// coefficients, and compared structurally. It is deliberately not a computer
// algebra system: anything beyond polynomial shapes (division by a variable
// expression, symbolic exponents) is a parse/normalize error, which callers
// treat as "no opinion" rather than a mismatch.
package mathexpr

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
	"unicode"
)

// maxExponent bounds integer powers so malformed input cannot force an
// enormous expansion.
const maxExponent = 16

// Equivalent reports whether two expressions normalize to the same
// canonical polynomial.
func Equivalent(a, b string) (bool, error) {
	pa, err := Normalize(a)
	if err != nil {
		return false, err
	}
	pb, err := Normalize(b)
	if err != nil {
		return false, err
	}
	return pa.Equal(pb), nil
}

// Normalize parses an expression and reduces it to canonical form.
func Normalize(input string) (Polynomial, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	poly, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, fmt.Errorf("mathexpr: unexpected token %q", p.peek().text)
	}
	return poly.compact(), nil
}

// Polynomial maps canonical monomial keys (e.g. "", "x", "x^2*y") to
// rational coefficients. Zero coefficients are never stored.
type Polynomial map[string]*big.Rat

// Equal reports structural equality of two canonical polynomials.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p) != len(q) {
		return false
	}
	for key, coeff := range p {
		other, ok := q[key]
		if !ok || coeff.Cmp(other) != 0 {
			return false
		}
	}
	return true
}

// String renders the polynomial with monomials in sorted key order.
func (p Polynomial) String() string {
	if len(p) == 0 {
		return "0"
	}
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var parts []string
	for _, key := range keys {
		if key == "" {
			parts = append(parts, p[key].RatString())
			continue
		}
		parts = append(parts, p[key].RatString()+"*"+key)
	}
	return strings.Join(parts, " + ")
}

func (p Polynomial) compact() Polynomial {
	out := Polynomial{}
	for key, coeff := range p {
		if coeff.Sign() != 0 {
			out[key] = coeff
		}
	}
	return out
}

// constant returns the constant value and true when the polynomial has no
// variable terms.
func (p Polynomial) constant() (*big.Rat, bool) {
	switch len(p) {
	case 0:
		return new(big.Rat), true
	case 1:
		if coeff, ok := p[""]; ok {
			return coeff, true
		}
	}
	return nil, false
}

func constPoly(r *big.Rat) Polynomial {
	out := Polynomial{}
	if r.Sign() != 0 {
		out[""] = r
	}
	return out
}

func varPoly(name string) Polynomial {
	return Polynomial{name: big.NewRat(1, 1)}
}

func (p Polynomial) add(q Polynomial) Polynomial {
	out := Polynomial{}
	for key, coeff := range p {
		out[key] = new(big.Rat).Set(coeff)
	}
	for key, coeff := range q {
		if existing, ok := out[key]; ok {
			existing.Add(existing, coeff)
		} else {
			out[key] = new(big.Rat).Set(coeff)
		}
	}
	return out.compact()
}

func (p Polynomial) neg() Polynomial {
	out := Polynomial{}
	for key, coeff := range p {
		out[key] = new(big.Rat).Neg(coeff)
	}
	return out
}

func (p Polynomial) sub(q Polynomial) Polynomial {
	return p.add(q.neg())
}

func (p Polynomial) mul(q Polynomial) Polynomial {
	out := Polynomial{}
	for ka, ca := range p {
		for kb, cb := range q {
			key := mulMonomials(ka, kb)
			coeff := new(big.Rat).Mul(ca, cb)
			if existing, ok := out[key]; ok {
				existing.Add(existing, coeff)
			} else {
				out[key] = coeff
			}
		}
	}
	return out.compact()
}

// div supports division by a nonzero constant only; dividing by a variable
// expression is outside the normalizer's scope.
func (p Polynomial) div(q Polynomial) (Polynomial, error) {
	value, ok := q.constant()
	if !ok {
		return nil, fmt.Errorf("mathexpr: division by non-constant expression")
	}
	if value.Sign() == 0 {
		return nil, fmt.Errorf("mathexpr: division by zero")
	}
	inv := new(big.Rat).Inv(value)
	return p.mul(constPoly(inv)), nil
}

// pow raises p to an integer power. Negative exponents are allowed for
// constant bases only.
func (p Polynomial) pow(q Polynomial) (Polynomial, error) {
	value, ok := q.constant()
	if !ok {
		return nil, fmt.Errorf("mathexpr: non-constant exponent")
	}
	if !value.IsInt() {
		return nil, fmt.Errorf("mathexpr: non-integer exponent %s", value.RatString())
	}
	exp := value.Num().Int64()
	if exp < 0 {
		base, isConst := p.constant()
		if !isConst {
			return nil, fmt.Errorf("mathexpr: negative exponent on variable expression")
		}
		if base.Sign() == 0 {
			return nil, fmt.Errorf("mathexpr: zero raised to negative exponent")
		}
		inverted := constPoly(new(big.Rat).Inv(base))
		return inverted.pow(constPoly(new(big.Rat).SetInt64(-exp)))
	}
	if exp > maxExponent {
		return nil, fmt.Errorf("mathexpr: exponent %d exceeds limit", exp)
	}
	result := constPoly(big.NewRat(1, 1))
	for i := int64(0); i < exp; i++ {
		result = result.mul(p)
	}
	return result, nil
}

// mulMonomials merges two canonical monomial keys, summing exponents.
func mulMonomials(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	exps := map[string]int{}
	for _, key := range []string{a, b} {
		for _, factor := range strings.Split(key, "*") {
			name := factor
			exp := 1
			if idx := strings.Index(factor, "^"); idx >= 0 {
				name = factor[:idx]
				fmt.Sscanf(factor[idx+1:], "%d", &exp)
			}
			exps[name] += exp
		}
	}
	names := make([]string, 0, len(exps))
	for name := range exps {
		names = append(names, name)
	}
	sort.Strings(names)
	var parts []string
	for _, name := range names {
		if exps[name] == 1 {
			parts = append(parts, name)
		} else {
			parts = append(parts, fmt.Sprintf("%s^%d", name, exps[name]))
		}
	}
	return strings.Join(parts, "*")
}

// --- lexer ---

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
}

func tokenize(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r) || (r == '.' && i+1 < len(runes) && unicode.IsDigit(runes[i+1])):
			start := i
			seenDot := false
			for i < len(runes) && (unicode.IsDigit(runes[i]) || (runes[i] == '.' && !seenDot)) {
				if runes[i] == '.' {
					seenDot = true
				}
				i++
			}
			tokens = append(tokens, token{tokNumber, string(runes[start:i])})
		case unicode.IsLetter(r):
			// Variables are single letters. Longer runs are words, not
			// algebra, and rejecting them keeps prose answers from
			// parsing as variable products.
			if i+1 < len(runes) && unicode.IsLetter(runes[i+1]) {
				return nil, fmt.Errorf("mathexpr: unexpected word starting at %q", string(r))
			}
			tokens = append(tokens, token{tokIdent, string(r)})
			i++
		case r == '+' || r == '-' || r == '*' || r == '/' || r == '^':
			tokens = append(tokens, token{tokOp, string(r)})
			i++
		case r == '(':
			tokens = append(tokens, token{tokLParen, "("})
			i++
		case r == ')':
			tokens = append(tokens, token{tokRParen, ")"})
			i++
		default:
			return nil, fmt.Errorf("mathexpr: unexpected character %q", string(r))
		}
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("mathexpr: empty expression")
	}
	return tokens, nil
}

// --- parser ---

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) atEnd() bool   { return p.pos >= len(p.tokens) }
func (p *parser) peek() token   { return p.tokens[p.pos] }
func (p *parser) advance() token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func (p *parser) parseExpr() (Polynomial, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for !p.atEnd() && p.peek().kind == tokOp && (p.peek().text == "+" || p.peek().text == "-") {
		op := p.advance().text
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op == "+" {
			left = left.add(right)
		} else {
			left = left.sub(right)
		}
	}
	return left, nil
}

func (p *parser) parseTerm() (Polynomial, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for !p.atEnd() {
		tok := p.peek()
		switch {
		case tok.kind == tokOp && (tok.text == "*" || tok.text == "/"):
			op := p.advance().text
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			if op == "*" {
				left = left.mul(right)
			} else {
				left, err = left.div(right)
				if err != nil {
					return nil, err
				}
			}
		case tok.kind == tokNumber || tok.kind == tokIdent || tok.kind == tokLParen:
			// Implicit multiplication: 2x, 2(x+1), (x+1)(x-1).
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = left.mul(right)
		default:
			return left, nil
		}
	}
	return left, nil
}

func (p *parser) parseUnary() (Polynomial, error) {
	negate := false
	for !p.atEnd() && p.peek().kind == tokOp && (p.peek().text == "+" || p.peek().text == "-") {
		if p.advance().text == "-" {
			negate = !negate
		}
	}
	poly, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	if negate {
		poly = poly.neg()
	}
	return poly, nil
}

func (p *parser) parsePower() (Polynomial, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() && p.peek().kind == tokOp && p.peek().text == "^" {
		p.advance()
		// Right associative: x^2^3 == x^(2^3).
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return base.pow(exp)
	}
	return base, nil
}

func (p *parser) parseAtom() (Polynomial, error) {
	if p.atEnd() {
		return nil, fmt.Errorf("mathexpr: unexpected end of expression")
	}
	tok := p.advance()
	switch tok.kind {
	case tokNumber:
		value, ok := new(big.Rat).SetString(tok.text)
		if !ok {
			return nil, fmt.Errorf("mathexpr: invalid number %q", tok.text)
		}
		return constPoly(value), nil
	case tokIdent:
		return varPoly(tok.text), nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.atEnd() || p.peek().kind != tokRParen {
			return nil, fmt.Errorf("mathexpr: missing closing parenthesis")
		}
		p.advance()
		return inner, nil
	default:
		return nil, fmt.Errorf("mathexpr: unexpected token %q", tok.text)
	}
}
