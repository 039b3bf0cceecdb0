package parse

import "strconv"

// Position is the location of a character in the decoded input.
type Position struct {
	Offset int64 `json:"offset"` //rune index
	Line   int   `json:"line"`   //1-based
	Column int   `json:"column"` //1-based, in runes
}

var startPosition = Position{Offset: 0, Line: 1, Column: 1}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// after returns the position of the character following r.
func (p Position) after(r rune) Position {
	p.Offset++
	if r == '\n' {
		p.Line++
		p.Column = 1
	} else {
		p.Column++
	}
	return p
}
