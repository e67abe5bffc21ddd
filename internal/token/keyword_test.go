package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"fn":     Function,
		"let":    Let,
		"true":   True,
		"false":  False,
		"if":     If,
		"else":   Else,
		"return": Return,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// case matters, and near-misses stay identifiers
	notKw := []string{
		"Fn", "LET", "True", "fun", "lets", "iff", "returns", "x", "_",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
		if k := LookupIdent(s); k != Ident {
			t.Fatalf("LookupIdent(%q) = %v, want Ident", s, k)
		}
	}
}
