package parse

import (
	"github.com/inoxlang/rson/internal/commonfmt"
	"github.com/inoxlang/rson/internal/value"
)

func (p *parser) parseObject() (value.Object, error) {
	if err := p.openContainer(ObjectContainer); err != nil {
		return value.Object{}, err
	}
	defer p.closeContainer()

	if err := p.expect(BEGIN_OBJECT); err != nil {
		return value.Object{}, err
	}

	var members value.ObjectBuilder

	if p.peekIs(END_OBJECT) {
		return members.Build(), p.expect(END_OBJECT)
	}

	for {
		if p.end {
			return value.Object{}, p.unexpectedEOF(EXPECTED_KEY_DESC)
		}

		if !p.peekIs(QUOTATION_MARK) {
			return value.Object{}, &TypeError{Found: p.look, Pos: p.pos}
		}

		keyPos := p.pos
		key, err := p.parseString()
		if err != nil {
			return value.Object{}, err
		}

		if err := p.expect(NAME_SEPARATOR); err != nil {
			return value.Object{}, err
		}

		memberValue, err := p.parseValue()
		if err != nil {
			return value.Object{}, err
		}

		if overwritten := members.Set(string(key), memberValue); overwritten {
			p.logger.Debug().Str("key", string(key)).Stringer("position", keyPos).Msg("duplicate key, the last value is kept")
		}

		if !p.peekIs(VALUE_SEPARATOR) {
			break
		}

		if err := p.expect(VALUE_SEPARATOR); err != nil {
			return value.Object{}, err
		}

		if p.peekIs(END_OBJECT) {
			if p.disallowTrailingComma {
				return value.Object{}, &SyntaxError{Expected: EXPECTED_KEY_DESC, Found: p.look, Pos: p.pos}
			}
			break
		}
	}

	if !p.end && p.look != END_OBJECT {
		return value.Object{}, &SyntaxError{Expected: expectedAfterMember(END_OBJECT), Found: p.look, Pos: p.pos}
	}

	if err := p.expect(END_OBJECT); err != nil {
		return value.Object{}, err
	}

	return members.Build(), nil
}

func (p *parser) parseArray() (value.Array, error) {
	if err := p.openContainer(ArrayContainer); err != nil {
		return value.Array{}, err
	}
	defer p.closeContainer()

	if err := p.expect(BEGIN_ARRAY); err != nil {
		return value.Array{}, err
	}

	var elements value.ArrayBuilder

	if p.peekIs(END_ARRAY) {
		return elements.Build(), p.expect(END_ARRAY)
	}

	for {
		elem, err := p.parseValue()
		if err != nil {
			return value.Array{}, err
		}

		elements.Append(elem)

		if !p.peekIs(VALUE_SEPARATOR) {
			break
		}

		if err := p.expect(VALUE_SEPARATOR); err != nil {
			return value.Array{}, err
		}

		if p.peekIs(END_ARRAY) {
			if p.disallowTrailingComma {
				return value.Array{}, &SyntaxError{Expected: EXPECTED_VALUE_DESC, Found: p.look, Pos: p.pos}
			}
			break
		}
	}

	if !p.end && p.look != END_ARRAY {
		return value.Array{}, &SyntaxError{Expected: expectedAfterMember(END_ARRAY), Found: p.look, Pos: p.pos}
	}

	if err := p.expect(END_ARRAY); err != nil {
		return value.Array{}, err
	}

	return elements.Build(), nil
}

// expectedAfterMember returns a description of what can follow an array element or object member.
func expectedAfterMember(closing rune) string {
	return commonfmt.FmtRune(VALUE_SEPARATOR) + " or " + commonfmt.FmtRune(closing)
}
