package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"unicode"

	"github.com/posener/complete/v2/install"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/inoxlang/rson/internal/config"
	"github.com/inoxlang/rson/internal/prettyprint"
	"github.com/inoxlang/rson/internal/utils"
)

const (
	ERROR_STATUS_CODE = 1

	COMMAND_NAME = "rson"

	SOURCE_LOG_FIELD_NAME = "src"
)

func main() {
	//handle completions
	completer.Complete(COMMAND_NAME)

	statusCode := _main(os.Args, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

// cliEnv contains what the subcommands share.
type cliEnv struct {
	outW, errW io.Writer
	config     config.Config
	colorize   bool
	colors     *prettyprint.PrettyPrintColors
	logger     zerolog.Logger
}

func _main(args []string, outW io.Writer, errW io.Writer) (statusCode int) {
	mainSubCommand := HELP_SUBCMD
	var mainSubCommandArgs []string

	if len(args) > 1 {
		mainSubCommand = args[1]
		mainSubCommandArgs = args[2:]
	}

	//if the command has the shape help <subcommand> ... we modify the arguments to ask the subcommand to print its help message.
	if mainSubCommand == HELP_SUBCMD && len(mainSubCommandArgs) > 0 && mainSubCommandArgs[0] != "" && unicode.IsLetter(rune(mainSubCommandArgs[0][0])) {
		mainSubCommand = mainSubCommandArgs[0]
		mainSubCommandArgs = []string{"-h"}
	}

	if slices.Contains(HELP_SUBCMD_EQUIVALENTS, mainSubCommand) {
		mainSubCommand = HELP_SUBCMD
	}

	//unknown command
	if !slices.Contains(SUBCOMMANDS, mainSubCommand) {
		fmt.Fprintf(errW, "unknown command '%s'", mainSubCommand)

		closest, _, ok := utils.FindClosestString(context.Background(), SUBCOMMANDS, mainSubCommand, 2)
		if ok {
			fmt.Fprintf(errW, ", did you mean '%s' ?\n", closest)
		} else {
			fmt.Fprint(errW, "\n"+RSON_CMD_HELP)
		}
		return ERROR_STATUS_CODE
	}

	switch mainSubCommand {
	case HELP_SUBCMD:
		fmt.Fprint(outW, RSON_CMD_HELP)
		return 0
	case INSTALL_COMPLETIONS_SUBCMD:
		err := install.Install(COMMAND_NAME)
		if err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintln(outW, "installed")
		return 0
	case UNINSTALL_COMPLETIONS_SUBCMD:
		err := install.Uninstall(COMMAND_NAME)
		if err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintln(outW, "uninstalled")
		return 0
	}

	env, ok := newCliEnv(outW, errW)
	if !ok {
		return ERROR_STATUS_CODE
	}

	switch mainSubCommand {
	case PARSE_SUBCMD:
		return ParseFile(mainSubCommand, mainSubCommandArgs, env)
	case CHECK_SUBCMD:
		return CheckFiles(mainSubCommand, mainSubCommandArgs, env)
	case QUERY_SUBCMD:
		return QueryFile(mainSubCommand, mainSubCommandArgs, env)
	default:
		fmt.Fprintf(errW, "unknown command '%s'\n", mainSubCommand)
		return ERROR_STATUS_CODE
	}
}

// newCliEnv loads the configuration and creates the logger, errors are printed to errW.
func newCliEnv(outW, errW io.Writer) (*cliEnv, bool) {
	cfg, path, err := config.Load()
	if err != nil {
		fmt.Fprintln(errW, err)
		return nil, false
	}

	env := &cliEnv{
		outW:     outW,
		errW:     errW,
		config:   cfg,
		colorize: config.SHOULD_COLORIZE && isTerminal(outW),
	}

	if env.colorize {
		env.colors = config.Colors()
	}

	env.logger = newLogger(errW, cfg.Level(), config.SHOULD_COLORIZE && isTerminal(errW))

	if path != "" {
		env.logger.Debug().Str("path", path).Msg("configuration loaded")
	}

	return env, true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
