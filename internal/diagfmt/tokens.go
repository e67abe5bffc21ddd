package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"monkey/internal/token"
)

type TokenOutput struct {
	Kind  string `json:"kind"`
	Class string `json:"class,omitempty"`
	Text  string `json:"text,omitempty"`
}

// tokenClass groups a token for display. True and False count as keywords.
func tokenClass(tok token.Token) string {
	switch {
	case tok.IsKeyword():
		return "keyword"
	case tok.IsLiteral():
		return "literal"
	case tok.IsOperator():
		return "operator"
	case tok.IsDelimiter():
		return "delimiter"
	case tok.IsIdent():
		return "ident"
	case tok.Is(token.Illegal):
		return "illegal"
	}
	return ""
}

// FormatTokensPretty prints one token per line as an aligned table.
// Widths are measured in terminal cells so wide identifiers line up.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	kindWidth, classWidth, textWidth := 0, 0, 0
	for _, tok := range tokens {
		kindWidth = max(kindWidth, runewidth.StringWidth(tok.Kind.String()))
		classWidth = max(classWidth, len(tokenClass(tok)))
		textWidth = max(textWidth, runewidth.StringWidth(tokenText(tok)))
	}
	for i, tok := range tokens {
		line := fmt.Sprintf("%4d: %s  %s  %s",
			i+1,
			runewidth.FillRight(tok.Kind.String(), kindWidth),
			runewidth.FillRight(tokenClass(tok), classWidth),
			runewidth.FillRight(tokenText(tok), textWidth))
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// tokenText quotes the lexeme without escaping printable unicode.
func tokenText(tok token.Token) string {
	if tok.Text == "" {
		return ""
	}
	return strconv.QuoteToGraphic(tok.Text)
}

// FormatTokensJSON writes the stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{Kind: tok.Kind.String(), Class: tokenClass(tok), Text: tok.Text})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
