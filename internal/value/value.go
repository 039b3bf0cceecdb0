package value

import (
	"errors"
	"math/big"
	"strconv"
)

var (
	ErrInvalidNumber = errors.New("a number should be a non-empty sequence of ASCII digits")
)

// A Value is the result of parsing a document. The implementations are Literal, Number, String,
// Array and Object, no other type can implement Value.
// Values are immutable once built.
type Value interface {
	Kind() Kind

	//prevents types from other packages to implement Value.
	value()
}

type Kind uint8

const (
	LiteralKind Kind = iota + 1
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case LiteralKind:
		return "literal"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	default:
		return "invalid"
	}
}

// A Literal is one of the three keyword values: null, true or false.
type Literal uint8

const (
	Null Literal = iota + 1
	False
	True
)

func Bool(b bool) Literal {
	if b {
		return True
	}
	return False
}

func (Literal) Kind() Kind { return LiteralKind }
func (Literal) value()     {}

func (l Literal) IsNull() bool {
	return l == Null
}

// Bool returns the boolean held by the literal, ok is false if the literal is null.
func (l Literal) Bool() (b bool, ok bool) {
	switch l {
	case True:
		return true, true
	case False:
		return false, true
	default:
		return false, false
	}
}

func (l Literal) String() string {
	switch l {
	case Null:
		return "null"
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "invalid-literal"
	}
}

// A Number holds the raw digits of an unsigned integer, no numeric conversion is performed.
type Number struct {
	digits string
}

func NewNumber(digits string) (Number, error) {
	if !IsDigitSequence(digits) {
		return Number{}, ErrInvalidNumber
	}
	return Number{digits: digits}, nil
}

func MustNumber(digits string) Number {
	n, err := NewNumber(digits)
	if err != nil {
		panic(err)
	}
	return n
}

func (Number) Kind() Kind { return NumberKind }
func (Number) value()     {}

func (n Number) Digits() string {
	return n.digits
}

func (n Number) String() string {
	return n.digits
}

// Int64 converts the digits, an error is returned if the number does not fit in an int64.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(n.digits, 10, 64)
}

func (n Number) BigInt() *big.Int {
	i, ok := new(big.Int).SetString(n.digits, 10)
	if !ok {
		//not possible if the invariant holds.
		panic(ErrInvalidNumber)
	}
	return i
}

func IsDigitSequence(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// A String is the verbatim text found between two quotation marks.
type String string

func (String) Kind() Kind { return StringKind }
func (String) value()     {}
