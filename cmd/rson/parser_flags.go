package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/inoxlang/rson/internal/config"
	"github.com/inoxlang/rson/internal/parse"
	"github.com/inoxlang/rson/internal/source"
	"github.com/inoxlang/rson/internal/value"
)

// parserFlags are the flags shared by the subcommands that parse files, their defaults come from the configuration.
type parserFlags struct {
	encoding string
	maxDepth int
	strict   bool
}

func (f *parserFlags) register(flags *flag.FlagSet, cfg config.Config) {
	flags.StringVar(&f.encoding, "encoding", cfg.Encoding, "character encoding of the input: utf-8 or latin-1")
	flags.IntVar(&f.maxDepth, "max-depth", cfg.MaxDepth, "maximum nesting depth of arrays and objects")
	flags.BoolVar(&f.strict, "strict", cfg.RequireEOF && cfg.DisallowTrailingComma, "reject trailing commas and any character after the value")
}

func (f *parserFlags) options(env *cliEnv, src string) (parse.ParserOptions, error) {
	opts := env.config.ParserOptions()

	encoding, ok := parse.ParseEncoding(f.encoding)
	if !ok {
		return parse.ParserOptions{}, fmt.Errorf("unknown encoding %q", f.encoding)
	}
	if f.maxDepth <= 0 {
		return parse.ParserOptions{}, fmt.Errorf("-max-depth should be positive, got %d", f.maxDepth)
	}

	opts.Encoding = encoding
	opts.MaxDepth = f.maxDepth
	if f.strict {
		opts.RequireEOF = true
		opts.DisallowTrailingComma = true
	}

	logger := env.subLogger(src)
	opts.Logger = &logger

	return opts, nil
}

// parseFile reads and parses the file at path, the decompressed content is returned in order to print excerpts.
func parseFile(ctx context.Context, path string, opts parse.ParserOptions) (value.Value, []byte, error) {
	r, err := source.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	opts.Context = ctx
	v, err := parse.ParseBytes(content, opts)
	return v, content, err
}
