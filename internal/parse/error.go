package parse

import (
	"fmt"

	"github.com/inoxlang/rson/internal/commonfmt"
)

type ErrorKind string

const (
	SyntaxErrorKind                ErrorKind = "syntax"
	TypeErrorKind                  ErrorKind = "type"
	UnexpectedLiteralErrorKind     ErrorKind = "unexpected-literal"
	IntegerExpectedErrorKind       ErrorKind = "integer-expected"
	UnterminatedStringErrorKind    ErrorKind = "unterminated-string"
	UnterminatedContainerErrorKind ErrorKind = "unterminated-container"
	NestingTooDeepErrorKind        ErrorKind = "nesting-too-deep"
	EncodingErrorKind              ErrorKind = "encoding"
	TrailingDataErrorKind          ErrorKind = "trailing-data"
)

const (
	EXPECTED_VALUE_DESC = "value"
	EXPECTED_KEY_DESC   = "string key"
)

// ParsingError is implemented by all the errors caused by an invalid input.
type ParsingError interface {
	error
	Kind() ErrorKind
	Position() Position
}

var (
	_ = []ParsingError{
		(*SyntaxError)(nil), (*TypeError)(nil), (*UnexpectedLiteralError)(nil), (*IntegerExpectedError)(nil),
		(*UnterminatedStringError)(nil), (*UnterminatedContainerError)(nil), (*NestingTooDeepError)(nil),
		(*EncodingError)(nil), (*TrailingDataError)(nil),
	}
)

// A SyntaxError is returned when a structural character or a value was expected but something else was found.
type SyntaxError struct {
	Expected string //description of what was expected, for example "':'" or "value"
	Found    rune   //not set if AtEOF is true
	AtEOF    bool
	Pos      Position
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("%s: expected %s but found %s", err.Pos, err.Expected, commonfmt.FmtFoundRune(err.Found, err.AtEOF))
}

func (err *SyntaxError) Kind() ErrorKind    { return SyntaxErrorKind }
func (err *SyntaxError) Position() Position { return err.Pos }

// A TypeError is returned when an object member's key is not a string.
type TypeError struct {
	Found rune
	Pos   Position
}

func (err *TypeError) Error() string {
	return fmt.Sprintf("%s: object keys must be strings, found %s", err.Pos, commonfmt.FmtRune(err.Found))
}

func (err *TypeError) Kind() ErrorKind    { return TypeErrorKind }
func (err *TypeError) Position() Position { return err.Pos }

// An UnexpectedLiteralError is returned when a bare-word token is not null, true or false.
type UnexpectedLiteralError struct {
	Token string
	Pos   Position
}

func (err *UnexpectedLiteralError) Error() string {
	return fmt.Sprintf("%s: unexpected literal %q, expected null, true or false", err.Pos, err.Token)
}

func (err *UnexpectedLiteralError) Kind() ErrorKind    { return UnexpectedLiteralErrorKind }
func (err *UnexpectedLiteralError) Position() Position { return err.Pos }

type IntegerExpectedError struct {
	Found rune
	AtEOF bool
	Pos   Position
}

func (err *IntegerExpectedError) Error() string {
	return fmt.Sprintf("%s: expected an integer but found %s", err.Pos, commonfmt.FmtFoundRune(err.Found, err.AtEOF))
}

func (err *IntegerExpectedError) Kind() ErrorKind    { return IntegerExpectedErrorKind }
func (err *IntegerExpectedError) Position() Position { return err.Pos }

// An UnterminatedStringError is returned when the input ends before the closing quotation mark of a string.
type UnterminatedStringError struct {
	Pos Position //position of the opening quotation mark
}

func (err *UnterminatedStringError) Error() string {
	return fmt.Sprintf("%s: unterminated string", err.Pos)
}

func (err *UnterminatedStringError) Kind() ErrorKind    { return UnterminatedStringErrorKind }
func (err *UnterminatedStringError) Position() Position { return err.Pos }

type ContainerKind string

const (
	ArrayContainer  ContainerKind = "array"
	ObjectContainer ContainerKind = "object"
)

// An UnterminatedContainerError is returned when the input ends while an array or an object is open.
type UnterminatedContainerError struct {
	Container ContainerKind
	Pos       Position //position of the opening delimiter
}

func (err *UnterminatedContainerError) Error() string {
	return fmt.Sprintf("%s: unterminated %s", err.Pos, err.Container)
}

func (err *UnterminatedContainerError) Kind() ErrorKind    { return UnterminatedContainerErrorKind }
func (err *UnterminatedContainerError) Position() Position { return err.Pos }

type NestingTooDeepError struct {
	MaxDepth int
	Pos      Position
}

func (err *NestingTooDeepError) Error() string {
	return fmt.Sprintf("%s: maximum nesting depth (%d) exceeded", err.Pos, err.MaxDepth)
}

func (err *NestingTooDeepError) Kind() ErrorKind    { return NestingTooDeepErrorKind }
func (err *NestingTooDeepError) Position() Position { return err.Pos }

// An EncodingError is returned when the input is not valid in the configured encoding.
type EncodingError struct {
	Encoding Encoding
	Pos      Position
}

func (err *EncodingError) Error() string {
	return fmt.Sprintf("%s: invalid %s byte sequence", err.Pos, err.Encoding)
}

func (err *EncodingError) Kind() ErrorKind    { return EncodingErrorKind }
func (err *EncodingError) Position() Position { return err.Pos }

// A TrailingDataError is returned when RequireEOF is set and a non-space character follows the root value.
type TrailingDataError struct {
	Found rune
	Pos   Position
}

func (err *TrailingDataError) Error() string {
	return fmt.Sprintf("%s: unexpected %s after the end of the value", err.Pos, commonfmt.FmtRune(err.Found))
}

func (err *TrailingDataError) Kind() ErrorKind    { return TrailingDataErrorKind }
func (err *TrailingDataError) Position() Position { return err.Pos }
