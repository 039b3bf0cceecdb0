package prettyprint

import "github.com/muesli/termenv"

var (
	DEFAULT_DARKMODE_PRINT_COLORS = PrettyPrintColors{
		Literal:   GetFullColorSequence(termenv.ANSIBlue, false),
		Number:    GetFullColorSequence(termenv.ANSIBrightGreen, false),
		String:    GetFullColorSequence(termenv.ANSI256Color(209), false),
		Key:       GetFullColorSequence(termenv.ANSIBrightCyan, false),
		Delimiter: GetFullColorSequence(termenv.ANSIWhite, false),

		DiscreteColor: GetFullColorSequence(termenv.ANSIBrightBlack, false),
		SuccessColor:  GetFullColorSequence(termenv.ANSIBrightGreen, false),
		WarnColor:     GetFullColorSequence(termenv.ANSIYellow, false),
		ErrorColor:    GetFullColorSequence(termenv.ANSIRed, false),
	}

	DEFAULT_LIGHTMODE_PRINT_COLORS = PrettyPrintColors{
		Literal:   GetFullColorSequence(termenv.ANSI256Color(21), false),
		Number:    GetFullColorSequence(termenv.ANSI256Color(28), false),
		String:    GetFullColorSequence(termenv.ANSI256Color(88), false),
		Key:       GetFullColorSequence(termenv.ANSI256Color(27), false),
		Delimiter: GetFullColorSequence(termenv.ANSIBlack, false),

		DiscreteColor: GetFullColorSequence(termenv.ANSIBrightBlack, false),
		SuccessColor:  GetFullColorSequence(termenv.ANSI256Color(28), false),
		WarnColor:     GetFullColorSequence(termenv.ANSI256Color(130), false),
		ErrorColor:    GetFullColorSequence(termenv.ANSI256Color(160), false),
	}
)

type PrettyPrintColors struct {
	//values
	Literal, Number, String, Key, Delimiter,

	//diagnostics
	DiscreteColor, SuccessColor, WarnColor, ErrorColor []byte
}

type PrettyPrintConfig struct {
	//Containers deeper than MaxDepth are printed as [...] or {...}, there is no limit if MaxDepth <= 0.
	MaxDepth int

	Colorize bool
	Colors   *PrettyPrintColors

	//If true the value is printed on a single line without insignificant whitespace.
	Compact bool

	//Indentation unit, defaults to two spaces. Ignored if Compact is true.
	Indent []byte

	//If true object keys are printed in natural order ("a2" before "a10") instead of byte order.
	NaturalKeyOrder bool
}

func GetFullColorSequence(color termenv.Color, bg bool) []byte {
	var b = []byte(termenv.CSI)
	b = append(b, []byte(color.Sequence(bg))...)
	b = append(b, 'm')
	return b
}
