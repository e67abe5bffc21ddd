// Package lexer turns monkey source text into a stream of tokens.
//
// The lexer is pull-based: every call to Next scans exactly one token.
// It never fails; characters it does not understand come back as
// token.Illegal and the parser decides what to do with them.
package lexer

import (
	"monkey/internal/token"
)

type Lexer struct {
	cursor Cursor
}

func New(src string) *Lexer {
	return &Lexer{cursor: NewCursor(src)}
}

// Next returns the next significant token.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Text: ""}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		// non-ASCII text only ever continues an identifier
		return lx.scanIllegal()
	case isDec(ch):
		return lx.scanNumber()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Tokenize scans src to the end and returns every token, EOF included.
func Tokenize(src string) []token.Token {
	lx := New(src)
	tokens := make([]token.Token, 0, len(src)/2+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}
