package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/inoxlang/rson/internal/parse"
	"github.com/inoxlang/rson/internal/prettyprint"
	"github.com/inoxlang/rson/internal/utils"
)

// A diagnostic is the result of checking a single file.
type diagnostic struct {
	File     string          `json:"file"`
	Valid    bool            `json:"valid"`
	Kind     parse.ErrorKind `json:"kind,omitempty"`
	Message  string          `json:"message,omitempty"`
	Position *parse.Position `json:"position,omitempty"`

	content  []byte
	encoding parse.Encoding
}

func newDiagnostic(path string, err error, content []byte, encoding parse.Encoding) diagnostic {
	d := diagnostic{
		File:     path,
		Valid:    err == nil,
		content:  content,
		encoding: encoding,
	}

	if err == nil {
		return d
	}

	d.Message = err.Error()

	var parsingErr parse.ParsingError
	if errors.As(err, &parsingErr) {
		pos := parsingErr.Position()
		d.Kind = parsingErr.Kind()
		d.Position = &pos
	}
	return d
}

func (d diagnostic) isParsingError() bool {
	return d.Position != nil
}

func (env *cliEnv) color(get func(c *prettyprint.PrettyPrintColors) []byte) []byte {
	if !env.colorize || env.colors == nil {
		return nil
	}
	return get(env.colors)
}

func (env *cliEnv) printColored(w io.Writer, color []byte, s string) {
	if color == nil {
		fmt.Fprint(w, s)
		return
	}
	utils.MustWriteMany(w, color, []byte(s), prettyprint.ANSI_RESET_SEQUENCE)
}

// printDiagnostic prints a line per file, parsing errors are followed by an excerpt of the offending line.
func (env *cliEnv) printDiagnostic(w io.Writer, d diagnostic) {
	switch {
	case d.Valid:
		env.printColored(w, env.color(func(c *prettyprint.PrettyPrintColors) []byte { return c.DiscreteColor }), d.File+": ")
		env.printColored(w, env.color(func(c *prettyprint.PrettyPrintColors) []byte { return c.SuccessColor }), "ok")
		fmt.Fprintln(w)
	case d.isParsingError():
		env.printColored(w, env.color(func(c *prettyprint.PrettyPrintColors) []byte { return c.DiscreteColor }), d.File+":")
		env.printColored(w, env.color(func(c *prettyprint.PrettyPrintColors) []byte { return c.ErrorColor }), d.Message)
		fmt.Fprintln(w)
		writeExcerpt(w, d.content, d.encoding, *d.Position)
	default:
		env.printColored(w, env.color(func(c *prettyprint.PrettyPrintColors) []byte { return c.ErrorColor }), d.Message)
		fmt.Fprintln(w)
	}
}

// writeExcerpt writes the line at pos and a caret under the column of pos.
func writeExcerpt(w io.Writer, content []byte, encoding parse.Encoding, pos parse.Position) {
	if encoding == parse.Latin1 {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
		if err != nil {
			return
		}
		content = decoded
	}

	lines := strings.Split(string(content), "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return
	}

	line := strings.TrimRight(lines[pos.Line-1], "\r")
	gutterWidth := utils.CountDigits(pos.Line)

	var caretIndent strings.Builder
	column := 1
	for _, r := range line {
		if column >= pos.Column {
			break
		}
		if r == '\t' {
			caretIndent.WriteByte('\t')
		} else {
			caretIndent.WriteByte(' ')
		}
		column++
	}

	fmt.Fprintf(w, " %d | %s\n", pos.Line, line)
	fmt.Fprintf(w, " %s | %s^\n", strings.Repeat(" ", gutterWidth), caretIndent.String())
}
