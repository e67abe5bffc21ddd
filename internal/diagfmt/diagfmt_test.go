package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"monkey/internal/diag"
	"monkey/internal/lexer"
	"monkey/internal/parser"
)

func TestFormatTokensPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, lexer.Tokenize("let x = 5;")); err != nil {
		t.Fatal(err)
	}
	want := []string{
		`   1: Let        keyword    "let"`,
		`   2: Ident      ident      "x"`,
		`   3: Assign     operator   "="`,
		`   4: Int        literal    "5"`,
		`   5: Semicolon  delimiter  ";"`,
		`   6: Eof`,
	}
	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), strings.Join(want, "\n"))
	}
}

func TestFormatTokensJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, lexer.Tokenize("a")); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].Kind != "Ident" || out[0].Text != "a" || out[1].Kind != "Eof" {
		t.Fatalf("unexpected tokens: %+v", out)
	}
	if out[0].Class != "ident" || out[1].Class != "" {
		t.Fatalf("unexpected classes: %+v", out)
	}
}

func TestTokenClass(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"fn", "keyword"},
		{"true", "keyword"},
		{"42", "literal"},
		{"==", "operator"},
		{"{", "delimiter"},
		{"x", "ident"},
		{"@", "illegal"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := tokenClass(lexer.Tokenize(tt.src)[0]); got != tt.want {
			t.Errorf("%q: class = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestPrettyDiagnostics(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.SynUnexpectedToken, "/work/a.mon", "expected next token to be Ident, got Int instead"))
	bag.Add(diag.New(diag.SevWarning, diag.LexIllegalChar, "", `illegal character "@"`))

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, PrettyOpts{BaseDir: "/work"}); err != nil {
		t.Fatal(err)
	}
	want := "a.mon: ERROR SYN2001: expected next token to be Ident, got Int instead\n" +
		"WARNING LEX1001: illegal character \"@\"\n"
	if buf.String() != want {
		t.Fatalf("got %q\nwant %q", buf.String(), want)
	}
}

func TestJSONDiagnostics(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.SynNoPrefixRule, "x.mon", "no prefix parse function for Rparen"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || out.Diagnostics[0].Severity != "error" || out.Diagnostics[0].Code != "SYN2002" || out.Diagnostics[0].File != "x.mon" {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestFormatASTTree(t *testing.T) {
	prog, err := parser.ParseString("let x = -a * 2;")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatASTTree(&buf, prog, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	want := `Program
└─ LetStatement x
   └─ InfixExpression *
      ├─ PrefixExpression -
      │  └─ Identifier a
      └─ IntegerLiteral 2
`
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFormatASTJSON(t *testing.T) {
	prog, err := parser.ParseString("f(1, true)")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, prog); err != nil {
		t.Fatal(err)
	}
	var root ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatal(err)
	}
	call := root.Children[0].Children[0]
	if call.Type != "CallExpression" || call.Text != "2 args" || len(call.Children) != 3 {
		t.Fatalf("unexpected call node: %+v", call)
	}
	if call.Children[2].Type != "Boolean" || call.Children[2].Text != "true" {
		t.Fatalf("unexpected argument: %+v", call.Children[2])
	}
}

func TestDumpAST(t *testing.T) {
	prog, err := parser.ParseString("let y = 7;")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := DumpAST(&buf, prog); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"LetStatement", `Value: "y"`, "IntegerLiteral"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestNilProgram(t *testing.T) {
	var buf bytes.Buffer
	if FormatASTTree(&buf, nil, PrettyOpts{}) == nil || FormatASTJSON(&buf, nil) == nil || DumpAST(&buf, nil) == nil {
		t.Fatal("expected errors for nil program")
	}
}
