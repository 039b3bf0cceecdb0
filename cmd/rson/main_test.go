package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	GPU_FILE           = "testdata/gpu.rson"
	MISSING_COLON_FILE = "testdata/missing_colon.rson"
)

func TestMain(m *testing.M) {
	//isolate the tests from the user's configuration
	configHome, err := os.MkdirTemp("", "rson-config-home")
	if err != nil {
		panic(err)
	}

	os.Setenv("XDG_CONFIG_HOME", configHome)
	os.Setenv("XDG_CONFIG_DIRS", configHome)
	xdg.Reload()

	code := m.Run()
	os.RemoveAll(configHome)
	os.Exit(code)
}

func runCLI(args ...string) (exitCode int, stdout, stderr string) {
	outW := bytes.NewBuffer(nil)
	errW := bytes.NewBuffer(nil)
	exitCode = _main(append([]string{COMMAND_NAME}, args...), outW, errW)
	return exitCode, outW.String(), errW.String()
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestHelp(t *testing.T) {
	for _, args := range [][]string{nil, {"help"}, {"--help"}, {"-h"}} {
		exitCode, stdout, _ := runCLI(args...)
		assert.Equal(t, 0, exitCode)
		assert.Contains(t, stdout, "commands:")
		assert.Contains(t, stdout, PARSE_SUBCMD+" - ")
	}

	t.Run("command-specific help", func(t *testing.T) {
		exitCode, stdout, _ := runCLI("help", "check")
		assert.Equal(t, 0, exitCode)
		assert.Contains(t, stdout, CLI_SUBCOMMAND_DESCRIPTION_MAP[CHECK_SUBCMD])
		assert.Contains(t, stdout, "-watch")
	})
}

func TestUnknownCommand(t *testing.T) {
	exitCode, _, stderr := runCLI("pars", GPU_FILE)
	assert.Equal(t, ERROR_STATUS_CODE, exitCode)
	assert.Equal(t, "unknown command 'pars', did you mean 'parse' ?\n", stderr)

	exitCode, _, stderr = runCLI("xxxxxxxx")
	assert.Equal(t, ERROR_STATUS_CODE, exitCode)
	assert.Contains(t, stderr, "commands:")
}

func TestParseSubcommand(t *testing.T) {
	path := writeFile(t, "doc.rson", `{"b": [1, true], "a": "x"}`)

	t.Run("indented", func(t *testing.T) {
		exitCode, stdout, stderr := runCLI("parse", path)
		require.Equal(t, 0, exitCode, stderr)
		assert.Equal(t, "{\n  \"a\": \"x\",\n  \"b\": [\n    1,\n    true\n  ]\n}\n", stdout)
	})

	t.Run("flags after the path", func(t *testing.T) {
		exitCode, stdout, _ := runCLI("parse", path, "-compact")
		require.Equal(t, 0, exitCode)
		assert.Equal(t, `{"a":"x","b":[1,true]}`+"\n", stdout)
	})

	t.Run("custom indentation", func(t *testing.T) {
		exitCode, stdout, _ := runCLI("parse", "-indent", "4", path)
		require.Equal(t, 0, exitCode)
		assert.Equal(t, "{\n    \"a\": \"x\",\n    \"b\": [\n        1,\n        true\n    ]\n}\n", stdout)
	})

	t.Run("json", func(t *testing.T) {
		exitCode, stdout, _ := runCLI("parse", "-json", "-compact", path)
		require.Equal(t, 0, exitCode)
		assert.JSONEq(t, `{"a":"x","b":[1,true]}`, stdout)
	})

	t.Run("natural key order", func(t *testing.T) {
		path := writeFile(t, "keys.rson", `{"a10": 1, "a2": 2}`)

		exitCode, stdout, _ := runCLI("parse", "-compact", "-natural", path)
		require.Equal(t, 0, exitCode)
		assert.Equal(t, `{"a2":2,"a10":1}`+"\n", stdout)
	})

	t.Run("gzip file", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		w := gzip.NewWriter(buf)
		_, err := w.Write([]byte(`[null]`))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		path := writeFile(t, "doc.rson.gz", buf.String())

		exitCode, stdout, _ := runCLI("parse", "-compact", path)
		require.Equal(t, 0, exitCode)
		assert.Equal(t, "[null]\n", stdout)
	})

	t.Run("strict", func(t *testing.T) {
		path := writeFile(t, "trailing.rson", `[1,] x`)

		exitCode, _, _ := runCLI("parse", path)
		assert.Equal(t, 0, exitCode)

		exitCode, _, stderr := runCLI("parse", "-strict", path)
		assert.Equal(t, ERROR_STATUS_CODE, exitCode)
		assert.Contains(t, stderr, "expected value but found ']'")
	})

	t.Run("invalid file", func(t *testing.T) {
		exitCode, stdout, stderr := runCLI("parse", MISSING_COLON_FILE)
		assert.Equal(t, ERROR_STATUS_CODE, exitCode)
		assert.Empty(t, stdout)
		assert.Equal(t, MISSING_COLON_FILE+":2:7: expected ':' but found '1'\n"+
			" 2 |   \"a\" 1}\n"+
			"   |       ^\n", stderr)
	})

	t.Run("missing file", func(t *testing.T) {
		exitCode, _, stderr := runCLI("parse", filepath.Join(t.TempDir(), "missing.rson"))
		assert.Equal(t, ERROR_STATUS_CODE, exitCode)
		assert.Contains(t, stderr, "no such file or directory")
	})

	t.Run("wrong number of arguments", func(t *testing.T) {
		exitCode, _, stderr := runCLI("parse")
		assert.Equal(t, ERROR_STATUS_CODE, exitCode)
		assert.Contains(t, stderr, "expected a single file path")
	})

	t.Run("unknown encoding", func(t *testing.T) {
		exitCode, _, stderr := runCLI("parse", "-encoding", "utf-16", path)
		assert.Equal(t, ERROR_STATUS_CODE, exitCode)
		assert.Contains(t, stderr, `unknown encoding "utf-16"`)
	})
}

func TestCheckSubcommand(t *testing.T) {
	t.Run("valid and invalid files", func(t *testing.T) {
		exitCode, stdout, _ := runCLI("check", GPU_FILE, MISSING_COLON_FILE)
		assert.Equal(t, ERROR_STATUS_CODE, exitCode)
		assert.Contains(t, stdout, GPU_FILE+": ok\n")
		assert.Contains(t, stdout, MISSING_COLON_FILE+":2:7: expected ':' but found '1'\n")
	})

	t.Run("valid files", func(t *testing.T) {
		exitCode, stdout, _ := runCLI("check", GPU_FILE)
		assert.Equal(t, 0, exitCode)
		assert.Equal(t, GPU_FILE+": ok\n", stdout)
	})

	t.Run("json", func(t *testing.T) {
		exitCode, stdout, _ := runCLI("check", "-json", GPU_FILE, MISSING_COLON_FILE)
		assert.Equal(t, ERROR_STATUS_CODE, exitCode)

		var diagnostics []map[string]any
		require.NoError(t, json.Unmarshal([]byte(stdout), &diagnostics))
		require.Len(t, diagnostics, 2)

		assert.Equal(t, map[string]any{"file": GPU_FILE, "valid": true}, diagnostics[0])

		assert.Equal(t, MISSING_COLON_FILE, diagnostics[1]["file"])
		assert.Equal(t, false, diagnostics[1]["valid"])
		assert.Equal(t, "syntax", diagnostics[1]["kind"])
		assert.Equal(t, map[string]any{"offset": 8.0, "line": 2.0, "column": 7.0}, diagnostics[1]["position"])
	})

	t.Run("latin-1", func(t *testing.T) {
		path := writeFile(t, "latin1.rson", "{\"caf\xe9\": 1}")

		exitCode, _, _ := runCLI("check", path)
		assert.Equal(t, ERROR_STATUS_CODE, exitCode)

		exitCode, _, _ = runCLI("check", "-encoding", "latin-1", path)
		assert.Equal(t, 0, exitCode)
	})

	t.Run("max depth", func(t *testing.T) {
		exitCode, stdout, _ := runCLI("check", "-max-depth", "1", GPU_FILE)
		assert.Equal(t, ERROR_STATUS_CODE, exitCode)
		assert.Contains(t, stdout, "maximum nesting depth (1) exceeded")
	})

	t.Run("watching the standard input", func(t *testing.T) {
		exitCode, _, stderr := runCLI("check", "-watch", "-json", GPU_FILE, "-")
		assert.Equal(t, ERROR_STATUS_CODE, exitCode)
		assert.Contains(t, stderr, ErrCannotWatchStdin.Error())
	})
}

func TestQuerySubcommand(t *testing.T) {
	testCases := []struct {
		args     []string
		expected string
	}{
		{[]string{GPU_FILE, "GPUDetail.RamType"}, `"DDR6"`},
		{[]string{"-r", GPU_FILE, "GPUDetail.RamType"}, "DDR6"},
		{[]string{GPU_FILE, "Array.2"}, "true"},
		{[]string{GPU_FILE, "Id"}, "93638382"},
		{[]string{GPU_FILE, "Array.#"}, "5"},
	}

	for _, testCase := range testCases {
		exitCode, stdout, stderr := runCLI(append([]string{"query"}, testCase.args...)...)
		require.Equal(t, 0, exitCode, stderr)
		assert.Equal(t, testCase.expected+"\n", stdout)
	}

	t.Run("no value", func(t *testing.T) {
		exitCode, _, stderr := runCLI("query", GPU_FILE, "GPUDetail.Missing")
		assert.Equal(t, ERROR_STATUS_CODE, exitCode)
		assert.Equal(t, "no value at path \"GPUDetail.Missing\"\n", stderr)
	})

	t.Run("invalid file", func(t *testing.T) {
		exitCode, _, stderr := runCLI("query", MISSING_COLON_FILE, "a")
		assert.Equal(t, ERROR_STATUS_CODE, exitCode)
		assert.Contains(t, stderr, "expected ':'")
	})
}
