package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"slices"
	"syscall"

	"github.com/goccy/go-json"

	"github.com/inoxlang/rson/internal/parse"
	"github.com/inoxlang/rson/internal/source"
	"github.com/inoxlang/rson/internal/utils"
)

func CheckFiles(mainSubCommand string, mainSubCommandArgs []string, env *cliEnv) (exitCode int) {
	flags := flag.NewFlagSet(mainSubCommand, flag.ContinueOnError)
	flags.SetOutput(env.errW)

	var jsonOutput, watch bool
	var pflags parserFlags

	flags.BoolVar(&jsonOutput, "json", false, "print the diagnostics as a JSON array")
	flags.BoolVar(&watch, "watch", false, "check the files again each time they are written, until interrupted")
	pflags.register(flags, env.config)

	if showHelp(flags, mainSubCommandArgs, env.outW) {
		return 0
	}

	paths, err := parseFlags(flags, mainSubCommandArgs)
	if err != nil {
		return ERROR_STATUS_CODE
	}

	if len(paths) == 0 {
		fmt.Fprintln(env.errW, "missing file path")
		return ERROR_STATUS_CODE
	}

	opts, err := pflags.options(env, mainSubCommand)
	if err != nil {
		fmt.Fprintln(env.errW, err)
		return ERROR_STATUS_CODE
	}

	if !watch {
		if !checkAll(context.Background(), paths, opts, jsonOutput, env) {
			return ERROR_STATUS_CODE
		}
		return 0
	}

	if slices.Contains(paths, source.STDIN_PATH) {
		fmt.Fprintln(env.errW, ErrCannotWatchStdin)
		return ERROR_STATUS_CODE
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	checkAll(ctx, paths, opts, jsonOutput, env)

	err = watchFiles(ctx, paths, env.subLogger("watch"), func() {
		if !jsonOutput {
			utils.PrintSmallLineSeparator(env.outW)
		}
		checkAll(ctx, paths, opts, jsonOutput, env)
	})

	if err != nil {
		fmt.Fprintln(env.errW, err)
		return ERROR_STATUS_CODE
	}
	return 0
}

// checkAll parses the files and prints a diagnostic for each of them, it returns true if all files are valid.
func checkAll(ctx context.Context, paths []string, opts parse.ParserOptions, jsonOutput bool, env *cliEnv) bool {
	diagnostics := make([]diagnostic, 0, len(paths))
	var errs []error

	for _, path := range paths {
		_, content, err := parseFile(ctx, path, opts)
		d := newDiagnostic(path, err, content, opts.Encoding)
		diagnostics = append(diagnostics, d)

		if err != nil {
			errs = append(errs, err)
		}

		if !jsonOutput {
			env.printDiagnostic(env.outW, d)
		}
	}

	if jsonOutput {
		fmt.Fprintf(env.outW, "%s\n", utils.Must(json.MarshalNoEscape(diagnostics)))
	}

	if err := utils.CombineErrorsWithPrefixMessage(fmt.Sprintf("%d/%d file(s) are invalid", len(errs), len(paths)), errs...); err != nil {
		env.logger.Debug().Err(err).Send()
		return false
	}
	return true
}
