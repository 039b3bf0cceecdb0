package commonfmt

import (
	"strconv"
	"unicode"
)

const (
	END_OF_INPUT = "end of input"
)

var (
	QUOTED_BELL_RUNE   = "'\\b'"
	QUOTED_FFEED_RUNE  = "'\\f'"
	QUOTED_NL_RUNE     = "'\\n'"
	QUOTED_CR_RUNE     = "'\\r'"
	QUOTED_TAB_RUNE    = "'\\t'"
	QUOTED_VTAB_RUNE   = "'\\v'"
	QUOTED_SQUOTE_RUNE = "'\\''"
	QUOTED_ASLASH_RUNE = "'\\\\'"
)

// FmtRune formats r between single quotes, control characters are escaped.
func FmtRune(r rune) string {
	switch r {
	case '\b':
		return QUOTED_BELL_RUNE
	case '\f':
		return QUOTED_FFEED_RUNE
	case '\n':
		return QUOTED_NL_RUNE
	case '\r':
		return QUOTED_CR_RUNE
	case '\t':
		return QUOTED_TAB_RUNE
	case '\v':
		return QUOTED_VTAB_RUNE
	case '\'':
		return QUOTED_SQUOTE_RUNE
	case '\\':
		return QUOTED_ASLASH_RUNE
	}

	if !unicode.IsPrint(r) {
		return strconv.QuoteRuneToASCII(r)
	}
	return "'" + string(r) + "'"
}

// FmtFoundRune formats the character found by a scanner, or "end of input" if atEOF is true.
func FmtFoundRune(r rune, atEOF bool) string {
	if atEOF {
		return END_OF_INPUT
	}
	return FmtRune(r)
}
