package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monkey/internal/diag"
	"monkey/internal/eval"
	"monkey/internal/format"
	"monkey/internal/token"
	"monkey/internal/trace"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestTokenizeReportsIllegal(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.mon", "let x = 5 @ 3;")
	res, err := Tokenize(path, 10)
	require.NoError(t, err)
	require.NotEmpty(t, res.Tokens)
	assert.Equal(t, token.EOF, res.Tokens[len(res.Tokens)-1].Kind)
	require.Equal(t, 1, res.Bag.Len())
	d := res.Bag.Items()[0]
	assert.Equal(t, diag.LexIllegalChar, d.Code)
	assert.Equal(t, diag.SevWarning, d.Severity)
	assert.Equal(t, `illegal character "@"`, d.Message)

	_, err = Tokenize(filepath.Join(t.TempDir(), "missing.mon"), 10)
	assert.Error(t, err)
}

func TestParseSuccessAndFailure(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "ok.mon", "\xEF\xBB\xBFlet x = 1 + 2 * 3;\r\n")
	res, err := Parse(context.Background(), ok, ParseOptions{MaxDiagnostics: 10})
	require.NoError(t, err)
	require.NoError(t, res.Err)
	assert.Equal(t, "let x = (1 + (2 * 3));", res.Canonical)
	assert.False(t, res.Bag.HasErrors())
	names := make([]string, 0, len(res.Timing.Phases))
	for _, p := range res.Timing.Phases {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"load", "lex", "parse"}, names)
	assert.Equal(t, "1 lines", res.Timing.Phases[0].Note)

	bad := writeFile(t, dir, "bad.mon", "let = 1;")
	res, err = Parse(context.Background(), bad, ParseOptions{MaxDiagnostics: 10})
	require.NoError(t, err)
	require.Error(t, res.Err)
	assert.Nil(t, res.Program)
	require.True(t, res.Bag.HasErrors())
	assert.Equal(t, diag.SynUnexpectedToken, res.Bag.Items()[0].Code)
	assert.Equal(t, "failed", res.Timing.Phases[2].Note)
}

func TestParseSourceTraces(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDetail)
	ctx := trace.WithTracer(context.Background(), ring)
	res := ParseSource(ctx, "stdin", []byte("1 + 2"), ParseOptions{MaxDiagnostics: 4})
	require.NoError(t, res.Err)
	assert.Equal(t, "(1 + 2)", res.Canonical)

	var names []string
	for _, ev := range ring.Snapshot() {
		names = append(names, ev.Kind.String()+":"+ev.Name)
	}
	assert.Equal(t, []string{"begin:stdin", "begin:parse", "end:parse", "end:stdin"}, names)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	prog := writeFile(t, dir, "fib.mon", "let fib = fn(n) { if (n < 2) { n } else { fib(n - 1) + fib(n - 2) } };\nfib(10);\n")
	res, err := Run(context.Background(), prog, ParseOptions{MaxDiagnostics: 10})
	require.NoError(t, err)
	require.NotNil(t, res.Value)
	assert.Equal(t, "55", res.Value.Inspect())

	boom := writeFile(t, dir, "boom.mon", "1 / 0")
	res, err = Run(context.Background(), boom, ParseOptions{MaxDiagnostics: 10})
	var rerr *eval.RuntimeError
	require.True(t, errors.As(err, &rerr))
	assert.Nil(t, res.Value)

	syntax := writeFile(t, dir, "syntax.mon", "fn(")
	res, err = Run(context.Background(), syntax, ParseOptions{MaxDiagnostics: 10})
	require.NoError(t, err)
	assert.Error(t, res.Err)
	assert.Nil(t, res.Value)
}

func TestFormatFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "f.mon", "let x=fn(a){a*2};x(4)")
	res, err := FormatFile(path, format.Options{}, false)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, "let x = fn(a) {\n    a * 2;\n};\nx(4);\n", string(res.Output))

	res, err = FormatFile(path, format.Options{}, true)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(res.Output), string(data))

	res, err = FormatFile(path, format.Options{}, true)
	require.NoError(t, err)
	assert.False(t, res.Changed)

	bad := writeFile(t, t.TempDir(), "bad.mon", "let = 1")
	_, err = FormatFile(bad, format.Options{}, false)
	assert.Error(t, err)
}
