package parse

import (
	"strings"

	"github.com/inoxlang/rson/internal/value"
)

// parseValue dispatches on the lookahead: the structural productions (string, array, object) are checked
// before numbers and literals because the two latter consume tokens greedily.
func (p *parser) parseValue() (value.Value, error) {
	if p.end {
		return nil, p.unexpectedEOF(EXPECTED_VALUE_DESC)
	}

	switch {
	case p.peekIs(QUOTATION_MARK):
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return s, nil
	case p.peekIs(BEGIN_ARRAY):
		arr, err := p.parseArray()
		if err != nil {
			return nil, err
		}
		return arr, nil
	case p.peekIs(BEGIN_OBJECT):
		obj, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		return obj, nil
	case isDecDigit(p.look):
		n, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return lit, nil
	}
}

// parseLiteral reads a maximal run of token characters and matches it against null, true and false.
func (p *parser) parseLiteral() (value.Literal, error) {
	start := p.pos

	var token strings.Builder
	for !p.end && isTokenChar(p.look) {
		token.WriteRune(p.look)
		if err := p.advance(); err != nil {
			return 0, err
		}
	}

	if token.Len() == 0 {
		//structural character in value position
		return 0, &SyntaxError{Expected: EXPECTED_VALUE_DESC, Found: p.look, AtEOF: p.end, Pos: p.pos}
	}

	var lit value.Literal

	switch token.String() {
	case "null":
		lit = value.Null
	case "true":
		lit = value.True
	case "false":
		lit = value.False
	default:
		return 0, &UnexpectedLiteralError{Token: token.String(), Pos: start}
	}

	return lit, p.eatSpace()
}

// parseNumber reads a run of ASCII digits, signs, fractions and exponents are not supported.
func (p *parser) parseNumber() (value.Number, error) {
	if p.end || !isDecDigit(p.look) {
		return value.Number{}, &IntegerExpectedError{Found: p.look, AtEOF: p.end, Pos: p.pos}
	}

	var digits strings.Builder
	for !p.end && isDecDigit(p.look) {
		digits.WriteRune(p.look)
		if err := p.advance(); err != nil {
			return value.Number{}, err
		}
	}

	n, err := value.NewNumber(digits.String())
	if err != nil {
		return value.Number{}, err
	}

	return n, p.eatSpace()
}
