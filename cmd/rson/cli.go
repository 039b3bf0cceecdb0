package main

import (
	"flag"
	"fmt"
	"io"
	"slices"
)

const (
	PARSE_SUBCMD                 = "parse"
	CHECK_SUBCMD                 = "check"
	QUERY_SUBCMD                 = "query"
	INSTALL_COMPLETIONS_SUBCMD   = "install-completions"
	UNINSTALL_COMPLETIONS_SUBCMD = "uninstall-completions"
	HELP_SUBCMD                  = "help"
)

var (
	SUBCOMMANDS = []string{
		PARSE_SUBCMD, CHECK_SUBCMD, QUERY_SUBCMD, INSTALL_COMPLETIONS_SUBCMD, UNINSTALL_COMPLETIONS_SUBCMD, HELP_SUBCMD,
	}

	HELP_SUBCMD_EQUIVALENTS = []string{"--help", "-help", "-h"}

	CLI_SUBCOMMAND_DESCRIPTIONS = [][2]string{
		{PARSE_SUBCMD, "parse a file and print the value"},
		{CHECK_SUBCMD, "check that files are valid, the diagnostics are printed to stdout"},
		{QUERY_SUBCMD, "parse a file and print the value at a path (gjson syntax: a.b.0)"},
		{INSTALL_COMPLETIONS_SUBCMD, "install CLI completions by adding the completion command to the detected rc file (supported shells are bash, zsh and fish)"},
		{UNINSTALL_COMPLETIONS_SUBCMD, "uninstall CLI completions by removing the completion command from the detected rc file"},
		{HELP_SUBCMD, "show the general help or command-specific help"},
	}

	CLI_SUBCOMMAND_DESCRIPTION_MAP = map[string]string{}

	RSON_CMD_HELP = "usage: rson <command> [options] [arguments]\n\ncommands:\n"
)

func init() {
	for _, entry := range CLI_SUBCOMMAND_DESCRIPTIONS {
		cmd, desc := entry[0], entry[1]
		CLI_SUBCOMMAND_DESCRIPTION_MAP[cmd] = desc
		RSON_CMD_HELP += "\t" + cmd + " - " + desc + "\n"
	}
	RSON_CMD_HELP += "\nType `rson help <command>` to get command-specific help.\n" +
		"The path '-' designates the standard input, gzip and zstd files are decompressed.\n"
}

// parseFlags parses the flags in args and returns the positional arguments, unlike flag.Parse
// it does not stop at the first positional argument.
func parseFlags(flags *flag.FlagSet, args []string) ([]string, error) {
	var positional []string

	for {
		if err := flags.Parse(args); err != nil {
			return nil, err
		}

		args = flags.Args()
		if len(args) == 0 {
			return positional, nil
		}

		positional = append(positional, args[0])
		args = args[1:]
	}
}

func showHelp(flags *flag.FlagSet, args []string, out io.Writer) bool {
	//only show help
	if slices.Contains(args, "-h") || slices.Contains(args, "--help") {

		cmd := flags.Name()
		if desc, ok := CLI_SUBCOMMAND_DESCRIPTION_MAP[cmd]; ok {
			fmt.Fprintln(out, desc)
		}

		flags.SetOutput(out)
		fmt.Fprint(out, "\noptions:\n")
		flags.PrintDefaults()

		return true
	}

	return false
}
