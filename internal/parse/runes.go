package parse

const (
	BEGIN_OBJECT    = '{'
	END_OBJECT      = '}'
	BEGIN_ARRAY     = '['
	END_ARRAY       = ']'
	NAME_SEPARATOR  = ':'
	VALUE_SEPARATOR = ','
	QUOTATION_MARK  = '"'
)

func isDecDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isSpace reports whether r is a whitespace character of the grammar.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// IsStructural reports whether r is a character with a fixed grammatical meaning.
func IsStructural(r rune) bool {
	switch r {
	case BEGIN_OBJECT, END_OBJECT, BEGIN_ARRAY, END_ARRAY, NAME_SEPARATOR, VALUE_SEPARATOR, QUOTATION_MARK:
		return true
	default:
		return false
	}
}

// isTokenChar reports whether r can be part of a bare-word token.
func isTokenChar(r rune) bool {
	return !IsStructural(r) && !isSpace(r)
}
