package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"

	"github.com/inoxlang/rson/internal/parse"
	"github.com/inoxlang/rson/internal/prettyprint"
)

const (
	APP_NAME            = "rson"
	CONFIG_FILE_NAME    = "config.yaml"
	CONFIG_FILE_RELPATH = APP_NAME + "/" + CONFIG_FILE_NAME

	DEFAULT_INDENT    = 2
	MAX_INDENT        = 16
	DEFAULT_LOG_LEVEL = "warn"
)

// Config holds the user preferences, command-line flags take precedence over it.
type Config struct {
	MaxDepth              int    `yaml:"max-depth"`
	Encoding              string `yaml:"encoding"`
	DisallowTrailingComma bool   `yaml:"disallow-trailing-comma"`
	RequireEOF            bool   `yaml:"require-eof"`
	Indent                int    `yaml:"indent"`
	NaturalKeyOrder       bool   `yaml:"natural-key-order"`
	LogLevel              string `yaml:"log-level"`
}

func Default() Config {
	return Config{
		MaxDepth: parse.DEFAULT_MAX_DEPTH,
		Encoding: parse.UTF8.String(),
		Indent:   DEFAULT_INDENT,
		LogLevel: DEFAULT_LOG_LEVEL,
	}
}

// Load searches for the configuration file in the XDG config directories and decodes it.
// The default configuration and an empty path are returned if there is no file.
func Load() (cfg Config, path string, err error) {
	path, err = xdg.SearchConfigFile(CONFIG_FILE_RELPATH)
	if err != nil {
		return Default(), "", nil
	}

	cfg, err = LoadFile(path)
	return cfg, path, err
}

func LoadFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg, err := Decode(content)
	if err != nil {
		return Config{}, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}
	return cfg, nil
}

// Decode decodes a YAML configuration, missing fields keep their default value.
func Decode(content []byte) (Config, error) {
	cfg := Default()

	if len(bytes.TrimSpace(content)) == 0 {
		return cfg, nil
	}

	if err := yaml.UnmarshalWithOptions(content, &cfg, yaml.DisallowUnknownField()); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if c.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("max-depth should be positive, got %d", c.MaxDepth))
	}

	if _, ok := parse.ParseEncoding(c.Encoding); !ok {
		errs = append(errs, fmt.Errorf("unknown encoding %q", c.Encoding))
	}

	if c.Indent < 1 || c.Indent > MAX_INDENT {
		errs = append(errs, fmt.Errorf("indent should be in the range [1, %d], got %d", MAX_INDENT, c.Indent))
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log-level: %w", err))
	}

	return errors.Join(errs...)
}

// ParserOptions returns the parser options corresponding to c, an unknown encoding is replaced with UTF-8.
func (c Config) ParserOptions() parse.ParserOptions {
	encoding, ok := parse.ParseEncoding(c.Encoding)
	if !ok {
		encoding = parse.UTF8
	}

	return parse.ParserOptions{
		Encoding:              encoding,
		MaxDepth:              c.MaxDepth,
		DisallowTrailingComma: c.DisallowTrailingComma,
		RequireEOF:            c.RequireEOF,
	}
}

func (c Config) PrettyPrintConfig(colorize bool, colors *prettyprint.PrettyPrintColors) *prettyprint.PrettyPrintConfig {
	indent := c.Indent
	if indent <= 0 {
		indent = DEFAULT_INDENT
	}

	return &prettyprint.PrettyPrintConfig{
		Colorize:        colorize,
		Colors:          colors,
		Indent:          []byte(strings.Repeat(" ", indent)),
		NaturalKeyOrder: c.NaturalKeyOrder,
	}
}

// Level returns the log level, zerolog.WarnLevel is returned if the level is invalid.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return level
}
