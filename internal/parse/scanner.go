package parse

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/inoxlang/rson/internal/commonfmt"
)

type runeSource = io.RuneReader

// advance reads the next character into the lookahead, end is set if the source is exhausted.
func (p *parser) advance() error {
	if err := p.checkContext(); err != nil {
		return fmt.Errorf("parsing interrupted at %s: %w", p.pos, err)
	}

	if p.end {
		return nil
	}

	if p.started {
		p.pos = p.pos.after(p.look)
	}
	p.started = true

	r, size, err := p.src.ReadRune()
	if err != nil {
		p.look = 0
		if errors.Is(err, io.EOF) {
			p.end = true
			return nil
		}
		return fmt.Errorf("failed to read source at %s: %w", p.pos, err)
	}

	if r == utf8.RuneError && size == 1 {
		return &EncodingError{Encoding: p.encoding, Pos: p.pos}
	}

	p.look = r
	return nil
}

// eatSpace skips space, tab, line feed and carriage return characters.
func (p *parser) eatSpace() error {
	for !p.end && isSpace(p.look) {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

// peekIs reports whether the lookahead is c, nothing is consumed.
func (p *parser) peekIs(c rune) bool {
	return !p.end && p.look == c
}

// expect consumes the structural character c and the whitespace following it.
func (p *parser) expect(c rune) error {
	if p.end {
		return p.unexpectedEOF(commonfmt.FmtRune(c))
	}

	if p.look != c {
		return &SyntaxError{Expected: commonfmt.FmtRune(c), Found: p.look, Pos: p.pos}
	}

	if err := p.advance(); err != nil {
		return err
	}
	return p.eatSpace()
}

// unexpectedEOF returns the error to report when the input ends while expecting something:
// an UnterminatedContainerError if an array or object is open, a SyntaxError otherwise.
func (p *parser) unexpectedEOF(expected string) error {
	if len(p.containers) > 0 {
		innermost := p.containers[len(p.containers)-1]
		return &UnterminatedContainerError{Container: innermost.kind, Pos: innermost.pos}
	}
	return &SyntaxError{Expected: expected, AtEOF: true, Pos: p.pos}
}

func (p *parser) openContainer(kind ContainerKind) error {
	if len(p.containers) >= p.maxDepth {
		return &NestingTooDeepError{MaxDepth: p.maxDepth, Pos: p.pos}
	}
	p.containers = append(p.containers, openContainer{kind: kind, pos: p.pos})
	return nil
}

func (p *parser) closeContainer() {
	p.containers = p.containers[:len(p.containers)-1]
}
