package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/inoxlang/rson/internal/value"
)

func QueryFile(mainSubCommand string, mainSubCommandArgs []string, env *cliEnv) (exitCode int) {
	flags := flag.NewFlagSet(mainSubCommand, flag.ContinueOnError)
	flags.SetOutput(env.errW)

	var rawStrings bool
	var pflags parserFlags

	flags.BoolVar(&rawStrings, "r", false, "print strings without quotation marks")
	pflags.register(flags, env.config)

	if showHelp(flags, mainSubCommandArgs, env.outW) {
		return 0
	}

	args, err := parseFlags(flags, mainSubCommandArgs)
	if err != nil {
		return ERROR_STATUS_CODE
	}

	if len(args) != 2 {
		fmt.Fprintln(env.errW, "expected a file path and a query path")
		return ERROR_STATUS_CODE
	}

	path, queryPath := args[0], args[1]

	opts, err := pflags.options(env, mainSubCommand)
	if err != nil {
		fmt.Fprintln(env.errW, err)
		return ERROR_STATUS_CODE
	}

	v, content, err := parseFile(context.Background(), path, opts)
	if err != nil {
		env.printDiagnostic(env.errW, newDiagnostic(path, err, content, opts.Encoding))
		return ERROR_STATUS_CODE
	}

	jsonDoc, err := json.MarshalNoEscape(value.ToAny(v))
	if err != nil {
		fmt.Fprintln(env.errW, err)
		return ERROR_STATUS_CODE
	}

	result := gjson.GetBytes(jsonDoc, queryPath)
	if !result.Exists() {
		fmt.Fprintf(env.errW, "no value at path %q\n", queryPath)
		return ERROR_STATUS_CODE
	}

	if rawStrings && result.Type == gjson.String {
		fmt.Fprintln(env.outW, result.String())
	} else {
		fmt.Fprintln(env.outW, result.Raw)
	}

	return 0
}
