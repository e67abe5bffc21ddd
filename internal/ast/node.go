package ast

// NodeKind is the discriminant of a syntax tree node.
type NodeKind uint8

const (
	// KindProgram is the root of a parsed source.
	KindProgram NodeKind = iota
	// KindLetStatement binds a name to a value.
	KindLetStatement
	// KindIdentifier is a name reference.
	KindIdentifier
	// KindReturnStatement returns a value.
	KindReturnStatement
	// KindExpressionStatement wraps a bare expression.
	KindExpressionStatement
	// KindIntegerLiteral is a signed 64-bit integer.
	KindIntegerLiteral
	// KindPrefixExpression is a unary operation.
	KindPrefixExpression
	// KindInfixExpression is a binary operation.
	KindInfixExpression
	// KindBoolean is true or false.
	KindBoolean
	// KindIfExpression is a conditional.
	KindIfExpression
	// KindBlockStatement is a braced statement list.
	KindBlockStatement
	// KindFunctionLiteral is an anonymous function.
	KindFunctionLiteral
	// KindCallExpression is a function application.
	KindCallExpression
)

var nodeKindNames = [...]string{
	KindProgram:             "Program",
	KindLetStatement:        "LetStatement",
	KindIdentifier:          "Identifier",
	KindReturnStatement:     "ReturnStatement",
	KindExpressionStatement: "ExpressionStatement",
	KindIntegerLiteral:      "IntegerLiteral",
	KindPrefixExpression:    "PrefixExpression",
	KindInfixExpression:     "InfixExpression",
	KindBoolean:             "Boolean",
	KindIfExpression:        "IfExpression",
	KindBlockStatement:      "BlockStatement",
	KindFunctionLiteral:     "FunctionLiteral",
	KindCallExpression:      "CallExpression",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// IsStatement reports whether nodes of this kind implement Statement.
func (k NodeKind) IsStatement() bool {
	switch k {
	case KindLetStatement, KindReturnStatement, KindExpressionStatement, KindBlockStatement:
		return true
	default:
		return false
	}
}

// IsExpression reports whether nodes of this kind implement Expression.
func (k NodeKind) IsExpression() bool {
	switch k {
	case KindIdentifier, KindIntegerLiteral, KindPrefixExpression, KindInfixExpression,
		KindBoolean, KindIfExpression, KindFunctionLiteral, KindCallExpression:
		return true
	default:
		return false
	}
}

// Node is implemented by every syntax tree node.
type Node interface {
	// Kind reports the concrete node kind.
	Kind() NodeKind
	// TokenLiteral is the text of the token that introduced the node.
	TokenLiteral() string
	// String renders the node in canonical form.
	String() string
}

// Statement is a node that can appear in a statement list.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}
