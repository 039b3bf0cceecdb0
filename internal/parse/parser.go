package parse

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inoxlang/rson/internal/value"
)

const (
	DEFAULT_MAX_DEPTH     = 1000
	DEFAULT_NO_CHECK_FUEL = 10_000
)

// A parser parses a single document with one character of lookahead, there is no lexer.
// A parser cannot be reused and should not be shared between goroutines.
type parser struct {
	src  runeSource
	look rune //lookahead character, not set if end is true
	end  bool
	pos  Position //position of the lookahead character

	started bool //true after the first read

	encoding              Encoding
	maxDepth              int
	disallowTrailingComma bool
	requireEOF            bool

	//open arrays and objects, innermost last.
	containers []openContainer

	noCheckFuel          int //-1 if infinite fuel
	remainingNoCheckFuel int //refueled after each context check.
	context              context.Context

	logger zerolog.Logger
}

type openContainer struct {
	kind ContainerKind
	pos  Position
}

type ParserOptions struct {
	//Defaults to UTF8.
	Encoding Encoding

	//Maximum number of nested arrays and objects, defaults to DEFAULT_MAX_DEPTH if <= 0.
	MaxDepth int

	//Makes the parser reject a value separator directly followed by a closing delimiter.
	DisallowTrailingComma bool

	//Makes the parser check that only whitespace follows the root value.
	RequireEOF bool

	//The context is checked each time the 'no check fuel' is empty, it is not checked if nil.
	Context context.Context

	//Number of characters read between two context checks, defaults to DEFAULT_NO_CHECK_FUEL if <= 0.
	NoCheckFuel int

	//This option is ignored if Context is nil.
	Timeout time.Duration

	//Defaults to a disabled logger.
	Logger *zerolog.Logger
}

func newParser(src runeSource, opts ...ParserOptions) (*parser, context.CancelFunc) {
	p := &parser{
		src:                  src,
		pos:                  startPosition,
		maxDepth:             DEFAULT_MAX_DEPTH,
		noCheckFuel:          -1,
		remainingNoCheckFuel: -1,
		logger:               zerolog.Nop(),
	}

	cancel := context.CancelFunc(func() {})

	if len(opts) > 0 {
		opt := opts[0]

		p.encoding = opt.Encoding
		p.disallowTrailingComma = opt.DisallowTrailingComma
		p.requireEOF = opt.RequireEOF

		if opt.MaxDepth > 0 {
			p.maxDepth = opt.MaxDepth
		}

		if opt.Context != nil {
			p.context = opt.Context
			if opt.Timeout > 0 {
				p.context, cancel = context.WithTimeout(opt.Context, opt.Timeout)
			}

			p.noCheckFuel = DEFAULT_NO_CHECK_FUEL
			if opt.NoCheckFuel > 0 {
				p.noCheckFuel = opt.NoCheckFuel
			}
			p.remainingNoCheckFuel = p.noCheckFuel
		}

		if opt.Logger != nil {
			p.logger = *opt.Logger
		}
	}

	return p, cancel
}

// checkContext returns the context's error if the context is done, the context is only checked when the fuel is empty.
func (p *parser) checkContext() error {
	if p.noCheckFuel == -1 {
		return nil
	}

	p.remainingNoCheckFuel--

	if p.remainingNoCheckFuel == 0 {
		p.remainingNoCheckFuel = p.noCheckFuel
		select {
		case <-p.context.Done():
			return p.context.Err()
		default:
		}
	}
	return nil
}

// parseDocument parses a single value preceded by optional whitespace.
func (p *parser) parseDocument() (value.Value, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	if err := p.eatSpace(); err != nil {
		return nil, err
	}

	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	if p.requireEOF && !p.end {
		return nil, &TrailingDataError{Found: p.look, Pos: p.pos}
	}

	return v, nil
}
