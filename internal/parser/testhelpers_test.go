package parser

import (
	"testing"

	"monkey/internal/ast"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString(%q): unexpected error: %v", src, err)
	}
	if program == nil {
		t.Fatalf("ParseString(%q): nil program", src)
	}
	return program
}

// singleExpr parses src and returns the expression of its only statement.
func singleExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	program := parseOK(t, src)
	if len(program.Statements) != 1 {
		t.Fatalf("%q: got %d statements, want 1", src, len(program.Statements))
	}
	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("%q: statement is %T, want *ast.ExpressionStatement", src, program.Statements[0])
	}
	return stmt.Expression
}

func checkLiteral(t *testing.T, expr ast.Expression, want any) {
	t.Helper()
	switch v := want.(type) {
	case int:
		lit, ok := expr.(*ast.IntegerLiteral)
		if !ok {
			t.Fatalf("expr is %T, want *ast.IntegerLiteral", expr)
		}
		if lit.Value != int64(v) {
			t.Errorf("integer = %d, want %d", lit.Value, v)
		}
	case string:
		id, ok := expr.(*ast.Identifier)
		if !ok {
			t.Fatalf("expr is %T, want *ast.Identifier", expr)
		}
		if id.Value != v || id.TokenLiteral() != v {
			t.Errorf("identifier = %q/%q, want %q", id.Value, id.TokenLiteral(), v)
		}
	case bool:
		b, ok := expr.(*ast.Boolean)
		if !ok {
			t.Fatalf("expr is %T, want *ast.Boolean", expr)
		}
		if b.Value != v {
			t.Errorf("boolean = %v, want %v", b.Value, v)
		}
	default:
		t.Fatalf("unsupported literal %T", want)
	}
}

func checkInfix(t *testing.T, expr ast.Expression, left any, op string, right any) {
	t.Helper()
	infix, ok := expr.(*ast.InfixExpression)
	if !ok {
		t.Fatalf("expr is %T, want *ast.InfixExpression", expr)
	}
	checkLiteral(t, infix.Left, left)
	if infix.Operator != op {
		t.Errorf("operator = %q, want %q", infix.Operator, op)
	}
	checkLiteral(t, infix.Right, right)
}
