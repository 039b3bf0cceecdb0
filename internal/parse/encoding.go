package parse

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/charmap"
)

// Encoding is the character encoding of a source.
type Encoding int

const (
	// UTF8 decodes variable-width UTF-8, invalid sequences are errors.
	UTF8 Encoding = iota

	// Latin1 maps each byte to a single character (ISO 8859-1).
	Latin1
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case Latin1:
		return "latin-1"
	default:
		return "unknown-encoding"
	}
}

// ParseEncoding returns the encoding named s ("utf-8", "utf8", "latin-1", "latin1", "iso-8859-1").
func ParseEncoding(s string) (Encoding, bool) {
	switch s {
	case "utf-8", "utf8", "UTF-8":
		return UTF8, true
	case "latin-1", "latin1", "iso-8859-1", "ISO-8859-1":
		return Latin1, true
	default:
		return 0, false
	}
}

// newRuneSource returns a buffered rune reader decoding r, the output of the Latin-1 decoder is always valid UTF-8.
func newRuneSource(r io.Reader, encoding Encoding) io.RuneReader {
	if encoding == Latin1 {
		return bufio.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	}

	if buffered, ok := r.(*bufio.Reader); ok {
		return buffered
	}
	return bufio.NewReader(r)
}
