package format

import "monkey/internal/ast"

// Mirrors the parser's binding powers.
const (
	precLowest = iota + 1
	precEquals
	precLessGreater
	precSum
	precProduct
	precPrefix
	precCall
	precAtom
)

func operatorPrec(op string) int {
	switch op {
	case "==", "!=":
		return precEquals
	case "<", ">":
		return precLessGreater
	case "+", "-":
		return precSum
	case "*", "/":
		return precProduct
	}
	return precLowest
}

// precedence is how tightly e holds together when printed bare.
func precedence(e ast.Expression) int {
	switch e := e.(type) {
	case *ast.InfixExpression:
		return operatorPrec(e.Operator)
	case *ast.PrefixExpression:
		return precPrefix
	case *ast.CallExpression:
		return precCall
	}
	return precAtom
}
