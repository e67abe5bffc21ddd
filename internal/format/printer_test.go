package format

import (
	"strings"
	"testing"

	"monkey/internal/ast"
	"monkey/internal/parser"
)

func formatString(t *testing.T, src string, opt Options) string {
	t.Helper()
	out, err := Source(src, opt)
	if err != nil {
		t.Fatalf("Source(%q): %v", src, err)
	}
	return string(out)
}

func TestFormatStatements(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"let x=5", "let x = 5;\n"},
		{"return   x", "return x;\n"},
		{"1 + 2 * 3", "1 + 2 * 3;\n"},
		{"(1 + 2) * 3", "(1 + 2) * 3;\n"},
		{"a - (b - c)", "a - (b - c);\n"},
		{"(a - b) - c", "a - b - c;\n"},
		{"-(5 + 5)", "-(5 + 5);\n"},
		{"!-a", "!-a;\n"},
		{"-a * b", "-a * b;\n"},
		{"(-f)(x)", "(-f)(x);\n"},
		{"-f(x)", "-f(x);\n"},
		{"3 > 5 == false", "3 > 5 == false;\n"},
		{"a == (b == c)", "a == (b == c);\n"},
		{"add(a, b * (c + d))", "add(a, b * (c + d));\n"},
		{"f(1)(2)", "f(1)(2);\n"},
		{"007", "007;\n"},
		{"3 + 4; -5 * 5", "3 + 4;\n-5 * 5;\n"},
	}
	for _, tt := range tests {
		if got := formatString(t, tt.input, Options{}); got != tt.want {
			t.Errorf("%q:\n got  %q\n want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatBlocks(t *testing.T) {
	src := "let max = fn(a, b) { if (a > b) { return a; } else { b } }; max(1, 2)"
	want := strings.Join([]string{
		"let max = fn(a, b) {",
		"    if (a > b) {",
		"        return a;",
		"    } else {",
		"        b;",
		"    };",
		"};",
		"max(1, 2);",
		"",
	}, "\n")
	if got := formatString(t, src, Options{}); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatEmptyBlocksAndTabs(t *testing.T) {
	if got := formatString(t, "fn() {}", Options{}); got != "fn() {};\n" {
		t.Errorf("empty fn = %q", got)
	}
	got := formatString(t, "if (x) { y }", Options{UseTabs: true})
	if got != "if (x) {\n\ty;\n};\n" {
		t.Errorf("tabs = %q", got)
	}
	got = formatString(t, "if (x) { y }", Options{IndentWidth: 2})
	if got != "if (x) {\n  y;\n};\n" {
		t.Errorf("width 2 = %q", got)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"let x = 5; let y = x * (2 + 3);",
		"3 + 4; -5 * 5",
		"if (x < y) { x } else { y }",
		"if (ok) { 1 }\n(-5)",
		"fn(x) { fn(y) { x + y } }(1)(2)",
		"let f = fn(a, b, c) { return a - (b - c); }; f(1, 2, 3);",
		"!(true == false) != !true",
		"a + add(b * c) + d",
	}
	for _, src := range inputs {
		original, err := parser.ParseString(src)
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		out := Program(original, Options{})
		reparsed, err := parser.ParseString(string(out))
		if err != nil {
			t.Fatalf("%q: formatted output does not parse: %v\n%s", src, err, out)
		}
		if original.String() != reparsed.String() {
			t.Errorf("%q: canonical form changed\n %s\n %s", src, original, reparsed)
		}
		if ast.Count(original) != ast.Count(reparsed) {
			t.Errorf("%q: node count %d != %d", src, ast.Count(original), ast.Count(reparsed))
		}
		if again := Program(reparsed, Options{}); string(again) != string(out) {
			t.Errorf("%q: not idempotent\n%s\n---\n%s", src, out, again)
		}
	}
}

func TestFormatParseError(t *testing.T) {
	if _, err := Source("let = 1", Options{}); err == nil {
		t.Fatal("expected parse error")
	}
	if got := Program(nil, Options{}); len(got) != 0 {
		t.Fatalf("nil program = %q", got)
	}
}
