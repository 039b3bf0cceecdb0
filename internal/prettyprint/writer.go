package prettyprint

import (
	"bufio"

	"github.com/inoxlang/rson/internal/utils"
	"github.com/muesli/termenv"
)

var (
	ANSI_RESET_SEQUENCE = []byte(termenv.CSI + termenv.ResetSeq + "m")

	DEFAULT_INDENT = []byte{' ', ' '}

	THREE_DOTS = []byte{'.', '.', '.'}
)

// PrettyPrintWriter wraps a buffered writer, its methods panic on write errors.
// The zero depth corresponds to the root value.
type PrettyPrintWriter struct {
	writer *bufio.Writer

	Depth int
}

func NewWriter(writer *bufio.Writer) PrettyPrintWriter {
	return PrettyPrintWriter{
		writer: writer,
	}
}

func (w PrettyPrintWriter) WriteString(str string) {
	utils.Must(w.writer.Write(utils.StringAsBytes(str)))
}

func (w PrettyPrintWriter) WriteBytes(b []byte) {
	utils.Must(w.writer.Write(b))
}

func (w PrettyPrintWriter) WriteManyBytes(b ...[]byte) {
	utils.MustWriteMany(w.writer, b...)
}

func (w PrettyPrintWriter) WriteByte(b byte) {
	utils.PanicIfErr(w.writer.WriteByte(b))
}

// WriteColored writes s surrounded by color and a reset sequence, s is written as is if color is nil.
func (w PrettyPrintWriter) WriteColored(color []byte, s string) {
	if color == nil {
		w.WriteString(s)
		return
	}
	w.WriteManyBytes(color, utils.StringAsBytes(s), ANSI_RESET_SEQUENCE)
}

// WriteNewlineIndent writes a line feed followed by depth times the indentation unit.
func (w PrettyPrintWriter) WriteNewlineIndent(indent []byte) {
	w.WriteByte('\n')
	for i := 0; i < w.Depth; i++ {
		w.WriteBytes(indent)
	}
}

func (w PrettyPrintWriter) IncrDepth() PrettyPrintWriter {
	new := w
	new.Depth++
	return new
}

func (w PrettyPrintWriter) Flush() error {
	return w.writer.Flush()
}
