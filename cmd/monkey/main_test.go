package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monkey/internal/driver"
)

type cmdResult struct {
	stdout, stderr string
	err            error
}

func execute(t *testing.T, stdin string, args ...string) cmdResult {
	t.Helper()
	root, a := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--color", "off"}, args...))
	err := root.Execute()
	a.shutdown(&errOut)
	return cmdResult{stdout: out.String(), stderr: errOut.String(), err: err}
}

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func TestRootStartsParseREPL(t *testing.T) {
	res := execute(t, "1 + 2 * 3\nlet x = ;\n")
	require.NoError(t, res.err)
	assert.Equal(t, "> (1 + (2 * 3))\n> ERROR: no prefix parse function for Semicolon\n> ", res.stdout)
}

func TestREPLEvalMode(t *testing.T) {
	res := execute(t, "let a = 5;\na * 2\n", "repl", "--mode", "eval")
	require.NoError(t, res.err)
	assert.Equal(t, "> null\n> 10\n> ", res.stdout)
}

func TestREPLPromptFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeSource(t, dir, "monkey.toml", "[repl]\nprompt = \">> \"\n")
	res := execute(t, "x\n", "--config", cfg, "repl")
	require.NoError(t, res.err)
	assert.Equal(t, ">> x\n>> ", res.stdout)
}

func TestREPLRejectsBadMode(t *testing.T) {
	res := execute(t, "", "repl", "--mode", "compile")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid repl mode")
}

func TestTokenizeJSON(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.mon", "let x = 5;")
	res := execute(t, "", "tokenize", "--format", "json", path)
	require.NoError(t, res.err)

	var tokens []struct{ Kind, Text string }
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &tokens))
	require.Len(t, tokens, 6)
	assert.Equal(t, "Let", tokens[0].Kind)
	assert.Equal(t, "Eof", tokens[5].Kind)
}

func TestTokenizeReportsIllegal(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.mon", "let @ = 1;")
	res := execute(t, "", "tokenize", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Illegal")
	assert.Contains(t, res.stderr, "WARNING LEX1001")
}

func TestParseFormats(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.mon", "let x = 1 + 2 * 3;")

	res := execute(t, "", "parse", path)
	require.NoError(t, res.err)
	assert.Equal(t, "let x = (1 + (2 * 3));\n", res.stdout)

	res = execute(t, "", "parse", "--format", "tree", path)
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "Program\n└─ LetStatement x\n"), res.stdout)

	res = execute(t, "", "parse", "--format", "dump", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "InfixExpression")

	res = execute(t, "", "parse", "--format", "xml", path)
	require.Error(t, res.err)
}

func TestParseStdin(t *testing.T) {
	res := execute(t, "let y = -a * b;", "parse", "-")
	require.NoError(t, res.err)
	assert.Equal(t, "let y = ((-a) * b);\n", res.stdout)

	res = execute(t, "let = 1;", "parse", "-")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "<stdin>")
}

func TestDiagnosticLimitNote(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.mon", "let @ = 1;")
	res := execute(t, "", "--max-diagnostics", "1", "tokenize", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "note: stopped after 1 diagnostics")
}

func TestParseSyntaxError(t *testing.T) {
	path := writeSource(t, t.TempDir(), "bad.mon", "let = 5;")
	res := execute(t, "", "parse", path)
	require.Error(t, res.err)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "ERROR SYN2001: expected next token to be Ident, got Assign instead")
}

func TestFmtStdoutAndWrite(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.mon", "let f = fn(x){ if (x > 1) { x } else { 1 } }\nf(2)")

	res := execute(t, "", "fmt", "--indent", "2", path)
	require.NoError(t, res.err)
	want := "let f = fn(x) {\n  if (x > 1) {\n    x;\n  } else {\n    1;\n  };\n};\nf(2);\n"
	assert.Equal(t, want, res.stdout)

	res = execute(t, "", "fmt", "-w", "--indent", "2", path)
	require.NoError(t, res.err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	ok := writeSource(t, dir, "ok.mon", "let double = fn(x) { x * 2 }; double(21)")
	res := execute(t, "", "run", ok)
	require.NoError(t, res.err)
	assert.Equal(t, "42\n", res.stdout)

	bad := writeSource(t, dir, "bad.mon", "5 + true;")
	res = execute(t, "", "run", bad)
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "ERROR: type mismatch: INTEGER + BOOLEAN")
}

func TestCheckDirectory(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "good.mon", "let a = 1; a + 2;")
	writeSource(t, dir, "bad.mon", "let 1 = 2;")

	res := execute(t, "", "check", "--ui", "off", "--no-cache", dir)
	require.Error(t, res.err)
	assert.True(t, errors.Is(res.err, driver.ErrCheckFailed))
	assert.Contains(t, res.stdout, "checked 2 files (2 statements, 0 cached), 1 failed")
	assert.Contains(t, res.stderr, "bad.mon")
}

func TestVersionJSON(t *testing.T) {
	res := execute(t, "", "version", "--format", "json", "--full")
	require.NoError(t, res.err)
	var payload versionPayload
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &payload))
	assert.Equal(t, "monkey", payload.Tool)
	assert.NotEmpty(t, payload.Version)
	assert.NotEmpty(t, payload.GitCommit)
}

func TestResolveTTYMode(t *testing.T) {
	for in, want := range map[string]bool{"": false, "auto": false, "ON": true, "always": true, " off ": false} {
		got, err := resolveTTYMode(in, &bytes.Buffer{})
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := resolveTTYMode("sometimes", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestCheckRejectsBadUIMode(t *testing.T) {
	res := execute(t, "", "check", "--ui", "sometimes", t.TempDir())
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid --ui value")
}

func TestMaxDiagnosticsRange(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.mon", "let x = 1;")
	for _, n := range []string{"-1", "0", "70000"} {
		res := execute(t, "", "--max-diagnostics", n, "parse", path)
		require.Error(t, res.err, n)
		assert.Contains(t, res.err.Error(), "--max-diagnostics must be between 1 and 65535", n)
	}
	res := execute(t, "", "--max-diagnostics", "65535", "parse", path)
	require.NoError(t, res.err)
	assert.Equal(t, "let x = 1;\n", res.stdout)
}

func TestWriteTimings(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.mon", "1")
	res := execute(t, "", "--timings", "parse", path)
	require.NoError(t, res.err)
	for _, phase := range []string{"load", "lex", "parse", "total"} {
		assert.Contains(t, res.stderr, phase)
	}
}

func TestProfilingFlags(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")
	res := execute(t, "", "--cpuprofile", cpu, "--memprofile", mem, "version")
	require.NoError(t, res.err)
	for _, p := range []string{cpu, mem} {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}

func TestCheckJSON(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "bad.mon", "let x = 99999999999999999999;")
	res := execute(t, "", "check", "--ui", "off", "--no-cache", "--format", "json", dir)
	require.ErrorIs(t, res.err, driver.ErrCheckFailed)

	var out struct {
		Count       int `json:"count"`
		Diagnostics []struct {
			Severity string `json:"severity"`
			Code     string `json:"code"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "error", out.Diagnostics[0].Severity)
	assert.Equal(t, "SYN2004", out.Diagnostics[0].Code)
}
