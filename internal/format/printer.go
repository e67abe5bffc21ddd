package format

import (
	"errors"
	"strconv"

	"monkey/internal/ast"
	"monkey/internal/parser"
)

type Options struct {
	IndentWidth int  // spaces per level; 0 means 4
	UseTabs     bool // indent with tabs instead of spaces
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	return o
}

type printer struct {
	w *Writer
}

// Program renders p as source. A nil or empty program renders as nothing.
func Program(p *ast.Program, opt Options) []byte {
	pr := printer{w: NewWriter(opt)}
	if p == nil {
		return pr.w.Bytes()
	}
	for _, stmt := range p.Statements {
		pr.stmt(stmt)
		pr.w.Newline()
	}
	return pr.w.Bytes()
}

// Source parses src and formats the result; parse errors are returned as is.
func Source(src string, opt Options) ([]byte, error) {
	program, err := parser.ParseString(src)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, errors.New("format: nil program")
	}
	return Program(program, opt), nil
}

func (pr *printer) stmt(s ast.Statement) {
	switch s := s.(type) {
	case *ast.LetStatement:
		pr.w.WriteString("let ")
		pr.w.WriteString(s.Name.Value)
		pr.w.WriteString(" = ")
		pr.expr(s.Value, precLowest)
	case *ast.ReturnStatement:
		pr.w.WriteString("return ")
		pr.expr(s.ReturnValue, precLowest)
	case *ast.ExpressionStatement:
		pr.expr(s.Expression, precLowest)
	case *ast.BlockStatement:
		pr.block(s)
	}
	// always terminate: a statement after `}` could otherwise continue it
	_ = pr.w.WriteByte(';')
}

func (pr *printer) block(b *ast.BlockStatement) {
	if b == nil || len(b.Statements) == 0 {
		pr.w.WriteString("{}")
		return
	}
	pr.w.WriteString("{\n")
	pr.w.IndentPush()
	for _, s := range b.Statements {
		pr.stmt(s)
		pr.w.Newline()
	}
	pr.w.IndentPop()
	_ = pr.w.WriteByte('}')
}

// expr prints e, parenthesising it when it binds looser than ctx.
func (pr *printer) expr(e ast.Expression, ctx int) {
	if precedence(e) < ctx {
		_ = pr.w.WriteByte('(')
		pr.expr(e, precLowest)
		_ = pr.w.WriteByte(')')
		return
	}
	switch e := e.(type) {
	case *ast.Identifier:
		pr.w.WriteString(e.Value)
	case *ast.IntegerLiteral:
		if e.Token.Text != "" {
			pr.w.WriteString(e.Token.Text)
		} else {
			pr.w.WriteString(strconv.FormatInt(e.Value, 10))
		}
	case *ast.Boolean:
		pr.w.WriteString(strconv.FormatBool(e.Value))
	case *ast.PrefixExpression:
		pr.w.WriteString(e.Operator)
		pr.expr(e.Right, precPrefix)
	case *ast.InfixExpression:
		prec := operatorPrec(e.Operator)
		pr.expr(e.Left, prec)
		pr.w.WriteString(" " + e.Operator + " ")
		// right operands of equal strength need parens to stay right-nested
		pr.expr(e.Right, prec+1)
	case *ast.IfExpression:
		pr.w.WriteString("if (")
		pr.expr(e.Condition, precLowest)
		pr.w.WriteString(") ")
		pr.block(e.Consequence)
		if e.Alternative != nil {
			pr.w.WriteString(" else ")
			pr.block(e.Alternative)
		}
	case *ast.FunctionLiteral:
		pr.w.WriteString("fn(")
		for i, p := range e.Parameters {
			if i > 0 {
				pr.w.WriteString(", ")
			}
			pr.w.WriteString(p.Value)
		}
		pr.w.WriteString(") ")
		pr.block(e.Body)
	case *ast.CallExpression:
		pr.expr(e.Function, precCall)
		_ = pr.w.WriteByte('(')
		for i, a := range e.Arguments {
			if i > 0 {
				pr.w.WriteString(", ")
			}
			pr.expr(a, precLowest)
		}
		_ = pr.w.WriteByte(')')
	}
}
