package prettyprint

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/inoxlang/rson/internal/utils"
	"github.com/inoxlang/rson/internal/value"
)

var (
	ErrUnrepresentableString = errors.New("string containing a quotation mark cannot be represented")

	CANONICAL_CONFIG = &PrettyPrintConfig{Compact: true}
)

// Print writes a textual representation of v to w. The output without colors is accepted by the parser and
// parses to a value equal to v. Nothing is written if a key or a string of v contains a quotation mark.
func Print(w io.Writer, v value.Value, config *PrettyPrintConfig) (finalErr error) {
	if config == nil {
		config = &PrettyPrintConfig{}
	}

	if err := checkRepresentable(v); err != nil {
		return err
	}

	p := printer{
		config: config,
		indent: config.Indent,
	}
	if p.indent == nil {
		p.indent = DEFAULT_INDENT
	}
	if config.Colorize {
		p.colors = config.Colors
		if p.colors == nil {
			p.colors = &DEFAULT_DARKMODE_PRINT_COLORS
		}
	}

	writer := NewWriter(bufio.NewWriter(w))

	defer func() {
		if e := recover(); e != nil {
			finalErr = utils.ConvertPanicValueToError(e)
		}
	}()

	p.print(writer, v)
	return writer.Flush()
}

// Canonical returns the compact rendering of v, two equal values have the same canonical rendering.
func Canonical(v value.Value) (string, error) {
	var buf strings.Builder
	if err := Print(&buf, v, CANONICAL_CONFIG); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// checkRepresentable returns an error wrapping ErrUnrepresentableString if a string or a key of v contains a quotation mark.
func checkRepresentable(v value.Value) error {
	return value.Walk(v, func(node, _ value.Value, path []any, _ bool) (value.TraversalAction, error) {
		switch node := node.(type) {
		case value.String:
			if strings.ContainsRune(string(node), '"') {
				return value.StopTraversal, fmt.Errorf("%w: %s", ErrUnrepresentableString, value.FormatPath(path))
			}
		case value.Object:
			for _, key := range node.Keys() {
				if strings.ContainsRune(key, '"') {
					return value.StopTraversal, fmt.Errorf("%w: key %q of %s", ErrUnrepresentableString, key, value.FormatPath(path))
				}
			}
		}
		return value.ContinueTraversal, nil
	}, nil)
}

type printer struct {
	config *PrettyPrintConfig
	indent []byte
	colors *PrettyPrintColors //nil if colorization is disabled
}

func (p printer) color(get func(*PrettyPrintColors) []byte) []byte {
	if p.colors == nil {
		return nil
	}
	return get(p.colors)
}

func (p printer) print(w PrettyPrintWriter, v value.Value) {
	switch val := v.(type) {
	case value.Literal:
		w.WriteColored(p.color(func(c *PrettyPrintColors) []byte { return c.Literal }), val.String())
	case value.Number:
		w.WriteColored(p.color(func(c *PrettyPrintColors) []byte { return c.Number }), val.Digits())
	case value.String:
		w.WriteColored(p.color(func(c *PrettyPrintColors) []byte { return c.String }), `"`+string(val)+`"`)
	case value.Array:
		p.printArray(w, val)
	case value.Object:
		p.printObject(w, val)
	default:
		panic(fmt.Errorf("cannot print value of type %T", v))
	}
}

func (p printer) delimiter(w PrettyPrintWriter, s string) {
	w.WriteColored(p.color(func(c *PrettyPrintColors) []byte { return c.Delimiter }), s)
}

func (p printer) depthExceeded(w PrettyPrintWriter) bool {
	return p.config.MaxDepth > 0 && w.Depth >= p.config.MaxDepth
}

func (p printer) printArray(w PrettyPrintWriter, arr value.Array) {
	p.delimiter(w, "[")

	if arr.Len() == 0 {
		p.delimiter(w, "]")
		return
	}

	if p.depthExceeded(w) {
		w.WriteBytes(THREE_DOTS)
		p.delimiter(w, "]")
		return
	}

	inner := w.IncrDepth()

	arr.ForEach(func(i int, elem value.Value) bool {
		if i > 0 {
			p.delimiter(w, ",")
		}
		if !p.config.Compact {
			inner.WriteNewlineIndent(p.indent)
		}
		p.print(inner, elem)
		return true
	})

	if !p.config.Compact {
		w.WriteNewlineIndent(p.indent)
	}
	p.delimiter(w, "]")
}

func (p printer) printObject(w PrettyPrintWriter, obj value.Object) {
	p.delimiter(w, "{")

	if obj.Len() == 0 {
		p.delimiter(w, "}")
		return
	}

	if p.depthExceeded(w) {
		w.WriteBytes(THREE_DOTS)
		p.delimiter(w, "}")
		return
	}

	inner := w.IncrDepth()
	keyColor := p.color(func(c *PrettyPrintColors) []byte { return c.Key })

	for i, key := range p.keys(obj) {
		if i > 0 {
			p.delimiter(w, ",")
		}
		if !p.config.Compact {
			inner.WriteNewlineIndent(p.indent)
		}

		inner.WriteColored(keyColor, `"`+key+`"`)
		p.delimiter(inner, ":")
		if !p.config.Compact {
			inner.WriteByte(' ')
		}

		memberValue, _ := obj.Get(key)
		p.print(inner, memberValue)
	}

	if !p.config.Compact {
		w.WriteNewlineIndent(p.indent)
	}
	p.delimiter(w, "}")
}

// keys returns the keys of obj in printing order.
func (p printer) keys(obj value.Object) []string {
	keys := obj.Keys()
	if p.config.NaturalKeyOrder {
		sort.SliceStable(keys, func(i, j int) bool {
			return natural.Less(keys[i], keys[j])
		})
	}
	return keys
}
