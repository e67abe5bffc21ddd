package ast

import (
	"strings"

	"monkey/internal/token"
)

// LetStatement binds Name to Value: `let <name> = <value>;`.
type LetStatement struct {
	Token token.Token // the 'let' token
	Name  *Identifier
	Value Expression
}

func (s *LetStatement) statementNode()       {}
func (s *LetStatement) Kind() NodeKind       { return KindLetStatement }
func (s *LetStatement) TokenLiteral() string { return s.Token.Text }
func (s *LetStatement) String() string {
	var sb strings.Builder
	sb.WriteString(s.TokenLiteral())
	sb.WriteByte(' ')
	sb.WriteString(s.Name.String())
	sb.WriteString(" = ")
	sb.WriteString(s.Value.String())
	sb.WriteByte(';')
	return sb.String()
}

// ReturnStatement is `return <value>;`.
type ReturnStatement struct {
	Token       token.Token // the 'return' token
	ReturnValue Expression
}

func (s *ReturnStatement) statementNode()       {}
func (s *ReturnStatement) Kind() NodeKind       { return KindReturnStatement }
func (s *ReturnStatement) TokenLiteral() string { return s.Token.Text }
func (s *ReturnStatement) String() string {
	return s.TokenLiteral() + " " + s.ReturnValue.String() + ";"
}

// ExpressionStatement is an expression used as a statement.
type ExpressionStatement struct {
	Token      token.Token // first token of the expression
	Expression Expression
}

func (s *ExpressionStatement) statementNode()       {}
func (s *ExpressionStatement) Kind() NodeKind       { return KindExpressionStatement }
func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Text }
func (s *ExpressionStatement) String() string       { return s.Expression.String() }

// BlockStatement is a braced statement list, used as the body of if and fn.
type BlockStatement struct {
	Token      token.Token // the '{' token
	Statements []Statement
}

func (b *BlockStatement) statementNode()       {}
func (b *BlockStatement) Kind() NodeKind       { return KindBlockStatement }
func (b *BlockStatement) TokenLiteral() string { return b.Token.Text }
func (b *BlockStatement) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for _, s := range b.Statements {
		sb.WriteString(s.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
