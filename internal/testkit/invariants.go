// Package testkit holds structural checks shared by parser, formatter and
// fuzz tests.
package testkit

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"monkey/internal/ast"
	"monkey/internal/format"
	"monkey/internal/parser"
	"monkey/internal/token"
)

// CheckASTInvariants walks a parsed program and verifies:
// 1) no statement, expression or let name is nil
// 2) each node carries the token that introduced it
// 3) literal values agree with their token text
func CheckASTInvariants(program *ast.Program) error {
	if program == nil {
		return fmt.Errorf("nil program")
	}
	var err error
	ast.Inspect(program, func(n ast.Node) bool {
		if err != nil {
			return false
		}
		err = checkNode(n)
		return err == nil
	})
	return err
}

func checkNode(n ast.Node) error {
	for i, child := range ast.Children(n) {
		if isNil(child) {
			return fmt.Errorf("%s: child %d is nil", n.Kind(), i)
		}
	}
	switch n := n.(type) {
	case *ast.Program:
		for _, s := range n.Statements {
			if !s.Kind().IsStatement() {
				return fmt.Errorf("program holds %s, not a statement", s.Kind())
			}
		}
	case *ast.ExpressionStatement:
		if !n.Expression.Kind().IsExpression() {
			return fmt.Errorf("expression statement holds %s", n.Expression.Kind())
		}
	case *ast.LetStatement:
		return expectToken(n, n.Token, token.Let)
	case *ast.ReturnStatement:
		return expectToken(n, n.Token, token.Return)
	case *ast.BlockStatement:
		return expectToken(n, n.Token, token.LBrace)
	case *ast.Identifier:
		if n.Value != n.Token.Text {
			return fmt.Errorf("identifier value %q differs from token %q", n.Value, n.Token.Text)
		}
		return expectToken(n, n.Token, token.Ident)
	case *ast.IntegerLiteral:
		if _, err := safecast.Conv[uint64](n.Value); err != nil {
			return fmt.Errorf("integer literal %d is negative: %w", n.Value, err)
		}
		if want := strconv.FormatInt(n.Value, 10); trimZeros(n.Token.Text) != want {
			return fmt.Errorf("integer literal value %s differs from token %q", want, n.Token.Text)
		}
		return expectToken(n, n.Token, token.Int)
	case *ast.Boolean:
		want := token.False
		if n.Value {
			want = token.True
		}
		return expectToken(n, n.Token, want)
	case *ast.PrefixExpression:
		if n.Operator != "!" && n.Operator != "-" {
			return fmt.Errorf("unexpected prefix operator %q", n.Operator)
		}
		if n.Operator != n.Token.Text {
			return fmt.Errorf("prefix operator %q differs from token %q", n.Operator, n.Token.Text)
		}
	case *ast.InfixExpression:
		if n.Operator != n.Token.Text {
			return fmt.Errorf("infix operator %q differs from token %q", n.Operator, n.Token.Text)
		}
	case *ast.IfExpression:
		return expectToken(n, n.Token, token.If)
	case *ast.FunctionLiteral:
		return expectToken(n, n.Token, token.Function)
	case *ast.CallExpression:
		return expectToken(n, n.Token, token.LParen)
	}
	return nil
}

func expectToken(n ast.Node, tok token.Token, want token.Kind) error {
	if tok.Kind != want {
		return fmt.Errorf("%s carries %s token, want %s", n.Kind(), tok.Kind, want)
	}
	return nil
}

func trimZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}

// isNil catches typed nil pointers stored in a Node interface.
func isNil(n ast.Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *ast.Identifier:
		return v == nil
	case *ast.BlockStatement:
		return v == nil
	}
	return false
}

// CheckFormatRoundTrip formats program, parses the output back and
// requires the same canonical form. Formatting the result a second time
// must not change it.
func CheckFormatRoundTrip(program *ast.Program) error {
	opt := format.Options{}
	first := format.Program(program, opt)
	again, err := parser.ParseString(string(first))
	if err != nil {
		return fmt.Errorf("formatted output does not parse: %w\n%s", err, first)
	}
	if got, want := again.String(), program.String(); got != want {
		return fmt.Errorf("round trip changed the tree:\n got: %s\nwant: %s", got, want)
	}
	if second := format.Program(again, opt); string(second) != string(first) {
		return fmt.Errorf("formatting is not idempotent:\n%s\n---\n%s", first, second)
	}
	return nil
}
