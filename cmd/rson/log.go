package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

func newLogger(w io.Writer, level zerolog.Level, colorize bool) zerolog.Logger {
	out := w
	if colorize {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func (env *cliEnv) subLogger(src string) zerolog.Logger {
	return env.logger.With().Str(SOURCE_LOG_FIELD_NAME, src).Logger()
}
