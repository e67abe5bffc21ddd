package lexer

import (
	"monkey/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword scans a maximal identifier run and checks it against the keyword set.
// Token.Text is exactly the source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	if !isIdentStartByte(lx.cursor.Peek()) {
		return lx.scanIllegal()
	}
	lx.cursor.Bump()
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		lx.cursor.Advance(sz2)
	}

	text := lx.cursor.TextFrom(start)
	return token.Token{Kind: token.LookupIdent(text), Text: text}
}

// scanNumber scans a maximal run of decimal digits.
// Conversion to a value is left to the parser.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return token.Token{Kind: token.Int, Text: lx.cursor.TextFrom(start)}
}

// scanIllegal consumes one whole rune (or one invalid byte) as an Illegal token.
func (lx *Lexer) scanIllegal() token.Token {
	start := lx.cursor.Mark()
	_, sz := lx.peekRune()
	if sz == 0 {
		sz = 1
	}
	lx.cursor.Advance(sz)
	return token.Token{Kind: token.Illegal, Text: lx.cursor.TextFrom(start)}
}
