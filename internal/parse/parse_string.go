package parse

import (
	"strings"

	"github.com/inoxlang/rson/internal/commonfmt"
	"github.com/inoxlang/rson/internal/value"
)

// parseString parses a quoted string, the characters between the quotation marks are copied verbatim:
// there are no escape sequences, a backslash is a regular character.
func (p *parser) parseString() (value.String, error) {
	start := p.pos

	if !p.peekIs(QUOTATION_MARK) {
		if p.end {
			return "", p.unexpectedEOF(commonfmt.FmtRune(QUOTATION_MARK))
		}
		return "", &SyntaxError{Expected: commonfmt.FmtRune(QUOTATION_MARK), Found: p.look, Pos: p.pos}
	}

	//the whitespace following the opening quotation mark is part of the content.
	if err := p.advance(); err != nil {
		return "", err
	}

	var content strings.Builder

	for {
		if p.end {
			return "", &UnterminatedStringError{Pos: start}
		}
		if p.look == QUOTATION_MARK {
			break
		}
		content.WriteRune(p.look)
		if err := p.advance(); err != nil {
			return "", err
		}
	}

	if err := p.expect(QUOTATION_MARK); err != nil {
		return "", err
	}

	return value.String(content.String()), nil
}
