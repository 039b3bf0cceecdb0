package config

import (
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/inoxlang/rson/internal/prettyprint"
)

var (
	FORCE_COLOR           bool
	TRUECOLOR_COLORTERM   bool
	TERM_256COLOR_CAPABLE bool
	NO_COLOR              bool
	SHOULD_COLORIZE       bool
)

func init() {
	support := DetectColorSupport(os.LookupEnv)

	FORCE_COLOR = support.ForceColor
	TRUECOLOR_COLORTERM = support.TrueColor
	TERM_256COLOR_CAPABLE = support.Term256Color
	NO_COLOR = support.NoColor
	SHOULD_COLORIZE = support.ShouldColorize()
}

// ColorSupport is the color configuration of the environment.
type ColorSupport struct {
	ForceColor   bool //FORCE_COLOR
	NoColor      bool //NO_COLOR
	TrueColor    bool //COLORTERM=truecolor
	Term256Color bool //TERM=*256color*
}

// DetectColorSupport reads the FORCE_COLOR, NO_COLOR, COLORTERM and TERM environment variables.
func DetectColorSupport(lookupEnv func(string) (string, bool)) ColorSupport {
	var support ColorSupport

	if s, ok := lookupEnv("FORCE_COLOR"); ok {
		support.ForceColor = isEnabledFlag(s)
	}

	if s, ok := lookupEnv("NO_COLOR"); ok {
		support.NoColor = isEnabledFlag(s)
	}

	colorterm, _ := lookupEnv("COLORTERM")
	support.TrueColor = colorterm == "truecolor"

	term, _ := lookupEnv("TERM")
	support.Term256Color = strings.Contains(term, "256color")

	return support
}

func (s ColorSupport) ShouldColorize() bool {
	return !s.NoColor && (s.ForceColor || s.TrueColor || s.Term256Color)
}

func isEnabledFlag(s string) bool {
	return len(s) != 0 && s != "false" && s != "0"
}

// Colors returns the palette matching the terminal's background, the background is queried with termenv.
func Colors() *prettyprint.PrettyPrintColors {
	return ColorsForBackground(termenv.HasDarkBackground())
}

func ColorsForBackground(dark bool) *prettyprint.PrettyPrintColors {
	if dark {
		return &prettyprint.DEFAULT_DARKMODE_PRINT_COLORS
	}
	return &prettyprint.DEFAULT_LIGHTMODE_PRINT_COLORS
}
