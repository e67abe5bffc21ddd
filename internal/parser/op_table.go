package parser

import "monkey/internal/token"

// Binding power, weakest first.
const (
	precLowest      = iota + 1
	precEquals      // == !=
	precLessGreater // < >
	precSum         // + -
	precProduct     // * /
	precPrefix      // -x !x
	precCall        // f(x)
)

// precedenceOf returns the infix binding power of k, or precLowest for
// tokens that cannot continue an expression.
func precedenceOf(k token.Kind) int {
	switch k {
	case token.Eq, token.NotEq:
		return precEquals
	case token.Lt, token.Gt:
		return precLessGreater
	case token.Plus, token.Minus:
		return precSum
	case token.Asterisk, token.Slash:
		return precProduct
	case token.LParen:
		return precCall
	}
	return precLowest
}
