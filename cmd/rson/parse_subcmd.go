package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/inoxlang/rson/internal/prettyprint"
	"github.com/inoxlang/rson/internal/value"
)

func ParseFile(mainSubCommand string, mainSubCommandArgs []string, env *cliEnv) (exitCode int) {
	flags := flag.NewFlagSet(mainSubCommand, flag.ContinueOnError)
	flags.SetOutput(env.errW)

	var jsonOutput, compact, naturalKeyOrder bool
	var indent int
	var pflags parserFlags

	flags.BoolVar(&jsonOutput, "json", false, "print the value as JSON")
	flags.BoolVar(&compact, "compact", false, "print the value on a single line")
	flags.IntVar(&indent, "indent", env.config.Indent, "number of spaces per indentation level")
	flags.BoolVar(&naturalKeyOrder, "natural", env.config.NaturalKeyOrder, "print object keys in natural order (a2 before a10)")
	pflags.register(flags, env.config)

	if showHelp(flags, mainSubCommandArgs, env.outW) {
		return 0
	}

	paths, err := parseFlags(flags, mainSubCommandArgs)
	if err != nil {
		return ERROR_STATUS_CODE
	}

	if len(paths) != 1 {
		fmt.Fprintf(env.errW, "expected a single file path, got %d arguments\n", len(paths))
		return ERROR_STATUS_CODE
	}

	if indent < 0 {
		fmt.Fprintf(env.errW, "-indent should not be negative, got %d\n", indent)
		return ERROR_STATUS_CODE
	}

	opts, err := pflags.options(env, mainSubCommand)
	if err != nil {
		fmt.Fprintln(env.errW, err)
		return ERROR_STATUS_CODE
	}

	path := paths[0]
	v, content, err := parseFile(context.Background(), path, opts)
	if err != nil {
		env.printDiagnostic(env.errW, newDiagnostic(path, err, content, opts.Encoding))
		return ERROR_STATUS_CODE
	}

	indentUnit := strings.Repeat(" ", indent)

	if jsonOutput {
		var b []byte
		if compact {
			b, err = json.MarshalNoEscape(value.ToAny(v))
		} else {
			b, err = json.MarshalIndent(value.ToAny(v), "", indentUnit)
		}

		if err != nil {
			fmt.Fprintln(env.errW, err)
			return ERROR_STATUS_CODE
		}

		fmt.Fprintf(env.outW, "%s\n", b)
		return 0
	}

	ppConfig := env.config.PrettyPrintConfig(env.colorize, env.colors)
	ppConfig.Compact = compact
	ppConfig.Indent = []byte(indentUnit)
	ppConfig.NaturalKeyOrder = naturalKeyOrder

	if err := prettyprint.Print(env.outW, v, ppConfig); err != nil {
		fmt.Fprintln(env.errW, err)
		return ERROR_STATUS_CODE
	}
	fmt.Fprintln(env.outW)

	return 0
}
