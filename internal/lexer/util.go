package lexer

import (
	"unicode"
	"unicode/utf8"
)

// peekRune decodes the rune under the cursor.
// Invalid UTF-8 yields (RuneError, 1) so the caller always makes progress.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(lx.cursor.Rest())
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// An identifier starts with an ASCII letter or '_' and continues with
// letters and digits only; '_' never continues one.
func isIdentStartByte(b byte) bool {
	return b == '_' || isASCIILetter(b)
}
func isIdentContinueByte(b byte) bool {
	return isASCIILetter(b) || isDec(b)
}
func isIdentContinueRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// try2 consumes two bytes if they match a and b.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
