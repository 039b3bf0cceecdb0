package main

import (
	"os"
	"strconv"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var (
	predictDataFiles = predict.Files("*")
	completer        = CreateCompleter(func(c *Completer) *complete.Command {
		switchPredictor := complete.PredictFunc(c.predictFileAfterSwitch)

		return &complete.Command{
			Sub: map[string]*complete.Command{
				PARSE_SUBCMD: {
					Flags: map[string]complete.Predictor{
						"json":      switchPredictor,
						"compact":   switchPredictor,
						"natural":   switchPredictor,
						"strict":    switchPredictor,
						"indent":    predict.Set{"2", "4"},
						"encoding":  predict.Set{"utf-8", "latin-1"},
						"max-depth": predict.Nothing,
					},
					Args: predictDataFiles,
				},
				CHECK_SUBCMD: {
					Flags: map[string]complete.Predictor{
						"json":      switchPredictor,
						"watch":     switchPredictor,
						"strict":    switchPredictor,
						"encoding":  predict.Set{"utf-8", "latin-1"},
						"max-depth": predict.Nothing,
					},
					Args: predictDataFiles,
				},
				QUERY_SUBCMD: {
					Flags: map[string]complete.Predictor{
						"r":        switchPredictor,
						"encoding": predict.Set{"utf-8", "latin-1"},
					},
					Args: predictDataFiles,
				},
				HELP_SUBCMD: {
					Args: predict.Set(SUBCOMMANDS),
				},
				INSTALL_COMPLETIONS_SUBCMD:   {},
				UNINSTALL_COMPLETIONS_SUBCMD: {},
			},
		}
	})
)

type Completer struct {
	*complete.Command
	currentCompLine  string
	currentCompPoint int
}

func CreateCompleter(create func(c *Completer) *complete.Command) *Completer {
	c := &Completer{}
	c.Command = create(c)
	return c
}

// Complete reads the line being completed from the environment and completes it, it does nothing if the program
// is not called by the shell's completion mechanism.
func (c *Completer) Complete(name string) {
	c.currentCompLine = os.Getenv("COMP_LINE")
	c.currentCompPoint, _ = strconv.Atoi(os.Getenv("COMP_POINT")) //ignore error because .Complete will also check the value

	if c.currentCompPoint > len(c.currentCompLine) || c.currentCompPoint < 0 {
		c.currentCompPoint = len(c.currentCompLine)
	}

	c.Command.Complete(name)
}

func (c *Completer) beforeCursorPoint() string {
	return c.currentCompLine[:c.currentCompPoint]
}

func (c *Completer) predictFileAfterSwitch(prefix string) (results []string) {
	s := c.beforeCursorPoint()
	if s == "" {
		return
	}

	switch s[len(s)-1] {
	case '=':
		//The flag is a switch, it does not accept any value.
		return
	default:
		return predictDataFiles.Predict(prefix)
	}
}
