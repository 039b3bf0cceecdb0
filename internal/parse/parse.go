package parse

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/inoxlang/rson/internal/value"
)

// Parse reads a single value from r. Any grammar violation makes the whole parse fail, the returned error
// is then a ParsingError. Read errors are wrapped. By default the characters following the value and its
// trailing whitespace are not validated, see ParserOptions.RequireEOF.
func Parse(r io.Reader, opts ...ParserOptions) (result value.Value, resultErr error) {
	encoding := UTF8
	if len(opts) > 0 {
		encoding = opts[0].Encoding
	}

	p, cancel := newParser(newRuneSource(r, encoding), opts...)
	defer cancel()

	start := time.Now()
	p.logger.Debug().Stringer("encoding", p.encoding).Int("max-depth", p.maxDepth).Msg("start parsing")

	result, resultErr = p.parseDocument()

	if resultErr != nil {
		p.logger.Debug().Err(resultErr).Msg("parsing failed")
		return nil, resultErr
	}

	p.logger.Debug().
		Stringer("kind", result.Kind()).
		Int64("characters", p.pos.Offset).
		Dur("duration", time.Since(start)).
		Msg("parsing done")

	return result, nil
}

func ParseString(s string, opts ...ParserOptions) (value.Value, error) {
	return Parse(strings.NewReader(s), opts...)
}

func ParseBytes(b []byte, opts ...ParserOptions) (value.Value, error) {
	return Parse(bytes.NewReader(b), opts...)
}

// MustParse is like ParseString but panics on error, it is intended for tests and examples.
func MustParse(s string, opts ...ParserOptions) value.Value {
	v, err := ParseString(s, opts...)
	if err != nil {
		panic(err)
	}
	return v
}
