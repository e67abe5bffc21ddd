package lexer

import (
	"monkey/internal/token"
)

// scanOperatorOrPunct is greedy: two-character operators win over their one-character prefix.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		return token.Token{Kind: k, Text: lx.cursor.TextFrom(start)}
	}

	switch {
	case lx.try2('=', '='):
		return emit(token.Eq)
	case lx.try2('!', '='):
		return emit(token.NotEq)
	}

	switch lx.cursor.Peek() {
	case '=':
		lx.cursor.Bump()
		return emit(token.Assign)
	case '+':
		lx.cursor.Bump()
		return emit(token.Plus)
	case '-':
		lx.cursor.Bump()
		return emit(token.Minus)
	case '!':
		lx.cursor.Bump()
		return emit(token.Bang)
	case '*':
		lx.cursor.Bump()
		return emit(token.Asterisk)
	case '/':
		lx.cursor.Bump()
		return emit(token.Slash)
	case '<':
		lx.cursor.Bump()
		return emit(token.Lt)
	case '>':
		lx.cursor.Bump()
		return emit(token.Gt)
	case ',':
		lx.cursor.Bump()
		return emit(token.Comma)
	case ';':
		lx.cursor.Bump()
		return emit(token.Semicolon)
	case '(':
		lx.cursor.Bump()
		return emit(token.LParen)
	case ')':
		lx.cursor.Bump()
		return emit(token.RParen)
	case '{':
		lx.cursor.Bump()
		return emit(token.LBrace)
	case '}':
		lx.cursor.Bump()
		return emit(token.RBrace)
	default:
		return lx.scanIllegal()
	}
}
