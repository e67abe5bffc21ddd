package ast

import (
	"strconv"
	"strings"

	"monkey/internal/token"
)

// Identifier is a name.
type Identifier struct {
	Token token.Token // the Ident token
	Value string
}

func (e *Identifier) expressionNode()      {}
func (e *Identifier) Kind() NodeKind       { return KindIdentifier }
func (e *Identifier) TokenLiteral() string { return e.Token.Text }
func (e *Identifier) String() string       { return e.Value }

// IntegerLiteral is a signed 64-bit integer constant.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (e *IntegerLiteral) expressionNode()      {}
func (e *IntegerLiteral) Kind() NodeKind       { return KindIntegerLiteral }
func (e *IntegerLiteral) TokenLiteral() string { return e.Token.Text }
func (e *IntegerLiteral) String() string       { return strconv.FormatInt(e.Value, 10) }

// Boolean is `true` or `false`.
type Boolean struct {
	Token token.Token
	Value bool
}

func (e *Boolean) expressionNode()      {}
func (e *Boolean) Kind() NodeKind       { return KindBoolean }
func (e *Boolean) TokenLiteral() string { return e.Token.Text }
func (e *Boolean) String() string       { return e.Token.Text }

// PrefixExpression is `<op><right>`, rendered `(<op><right>)`.
type PrefixExpression struct {
	Token    token.Token // the operator token
	Operator string
	Right    Expression
}

func (e *PrefixExpression) expressionNode()      {}
func (e *PrefixExpression) Kind() NodeKind       { return KindPrefixExpression }
func (e *PrefixExpression) TokenLiteral() string { return e.Token.Text }
func (e *PrefixExpression) String() string {
	return "(" + e.Operator + e.Right.String() + ")"
}

// InfixExpression is `<left> <op> <right>`, rendered `(<left> <op> <right>)`.
type InfixExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (e *InfixExpression) expressionNode()      {}
func (e *InfixExpression) Kind() NodeKind       { return KindInfixExpression }
func (e *InfixExpression) TokenLiteral() string { return e.Token.Text }
func (e *InfixExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

// IfExpression is `if (<cond>) <block> [else <block>]`. Alternative may be nil.
type IfExpression struct {
	Token       token.Token // the 'if' token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (e *IfExpression) expressionNode()      {}
func (e *IfExpression) Kind() NodeKind       { return KindIfExpression }
func (e *IfExpression) TokenLiteral() string { return e.Token.Text }
func (e *IfExpression) String() string {
	var sb strings.Builder
	sb.WriteString("if ")
	sb.WriteString(parenthesized(e.Condition))
	sb.WriteByte(' ')
	sb.WriteString(e.Consequence.String())
	if e.Alternative != nil {
		sb.WriteString(" else ")
		sb.WriteString(e.Alternative.String())
	}
	return sb.String()
}

// FunctionLiteral is `fn(<params>) <block>`.
type FunctionLiteral struct {
	Token      token.Token // the 'fn' token
	Parameters []*Identifier
	Body       *BlockStatement
}

func (e *FunctionLiteral) expressionNode()      {}
func (e *FunctionLiteral) Kind() NodeKind       { return KindFunctionLiteral }
func (e *FunctionLiteral) TokenLiteral() string { return e.Token.Text }
func (e *FunctionLiteral) String() string {
	params := make([]string, len(e.Parameters))
	for i, p := range e.Parameters {
		params[i] = p.String()
	}
	return e.TokenLiteral() + "(" + strings.Join(params, ", ") + ") " + e.Body.String()
}

// CallExpression is `<function>(<args>)`.
type CallExpression struct {
	Token     token.Token // the '(' token
	Function  Expression  // Identifier or FunctionLiteral, or any expression producing one
	Arguments []Expression
}

func (e *CallExpression) expressionNode()      {}
func (e *CallExpression) Kind() NodeKind       { return KindCallExpression }
func (e *CallExpression) TokenLiteral() string { return e.Token.Text }
func (e *CallExpression) String() string {
	args := make([]string, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = a.String()
	}
	return e.Function.String() + "(" + strings.Join(args, ", ") + ")"
}

// parenthesized renders e so that it reads back as a grouped expression.
// Prefix and infix nodes already carry their own parentheses.
func parenthesized(e Expression) string {
	switch e.(type) {
	case *PrefixExpression, *InfixExpression:
		return e.String()
	default:
		return "(" + e.String() + ")"
	}
}
