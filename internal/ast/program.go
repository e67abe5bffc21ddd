package ast

import (
	"strings"
)

// Program is the root node: the ordered top-level statements of a source.
type Program struct {
	Statements []Statement
}

func (p *Program) Kind() NodeKind { return KindProgram }

// TokenLiteral returns the literal of the first statement, or "" for an empty program.
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
	}
	return sb.String()
}
