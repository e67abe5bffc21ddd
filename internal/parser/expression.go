package parser

import (
	"strconv"

	"monkey/internal/ast"
	"monkey/internal/token"
)

// parseExpression is the precedence-climbing core. It starts with cur on the
// first token of the expression and leaves cur on its last token.
func (p *Parser) parseExpression(minPrec int) (ast.Expression, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for !p.peekIs(token.Semicolon) && minPrec < precedenceOf(p.peek.Kind) {
		p.next()
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parsePrefix() (ast.Expression, error) {
	switch p.cur.Kind {
	case token.Ident:
		return &ast.Identifier{Token: p.cur, Value: p.cur.Text}, nil
	case token.Int:
		return p.parseIntegerLiteral()
	case token.True, token.False:
		return &ast.Boolean{Token: p.cur, Value: p.cur.Is(token.True)}, nil
	case token.Bang, token.Minus:
		return p.parsePrefixExpression()
	case token.LParen:
		return p.parseGroupedExpression()
	case token.If:
		return p.parseIfExpression()
	case token.Function:
		return p.parseFunctionLiteral()
	}
	return nil, &Error{Kind: MissingPrefixRule, Found: p.cur.Kind, Literal: p.cur.Text}
}

func (p *Parser) parseInfix(left ast.Expression) (ast.Expression, error) {
	switch p.cur.Kind {
	case token.Plus, token.Minus, token.Asterisk, token.Slash,
		token.Eq, token.NotEq, token.Lt, token.Gt:
		return p.parseInfixExpression(left)
	case token.LParen:
		return p.parseCallExpression(left)
	}
	return nil, &Error{Kind: MissingInfixRule, Found: p.cur.Kind, Literal: p.cur.Text}
}

func (p *Parser) parseIntegerLiteral() (ast.Expression, error) {
	value, err := strconv.ParseInt(p.cur.Text, 10, 64)
	if err != nil {
		return nil, &Error{Kind: InvalidInteger, Found: p.cur.Kind, Literal: p.cur.Text}
	}
	return &ast.IntegerLiteral{Token: p.cur, Value: value}, nil
}

func (p *Parser) parsePrefixExpression() (ast.Expression, error) {
	expr := &ast.PrefixExpression{Token: p.cur, Operator: p.cur.Text}
	p.next()
	right, err := p.parseExpression(precPrefix)
	if err != nil {
		return nil, err
	}
	expr.Right = right
	return expr, nil
}

// parseInfixExpression binds the right operand at the operator's own level,
// which makes every binary operator left-associative.
func (p *Parser) parseInfixExpression(left ast.Expression) (ast.Expression, error) {
	expr := &ast.InfixExpression{Token: p.cur, Left: left, Operator: p.cur.Text}
	prec := precedenceOf(p.cur.Kind)
	p.next()
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	expr.Right = right
	return expr, nil
}

func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	p.next()
	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RParen); err != nil {
		return nil, err
	}
	return expr, nil
}

// if (<cond>) { ... } [else { ... }]
func (p *Parser) parseIfExpression() (ast.Expression, error) {
	expr := &ast.IfExpression{Token: p.cur}
	if err := p.expectPeek(token.LParen); err != nil {
		return nil, err
	}
	p.next()
	cond, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	expr.Condition = cond
	if err := p.expectPeek(token.RParen); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LBrace); err != nil {
		return nil, err
	}
	if expr.Consequence, err = p.parseBlockStatement(); err != nil {
		return nil, err
	}
	if p.peekIs(token.Else) {
		p.next()
		if err := p.expectPeek(token.LBrace); err != nil {
			return nil, err
		}
		if expr.Alternative, err = p.parseBlockStatement(); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

// fn(<params>) { ... }
func (p *Parser) parseFunctionLiteral() (ast.Expression, error) {
	lit := &ast.FunctionLiteral{Token: p.cur}
	if err := p.expectPeek(token.LParen); err != nil {
		return nil, err
	}
	params, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}
	lit.Parameters = params
	if err := p.expectPeek(token.LBrace); err != nil {
		return nil, err
	}
	if lit.Body, err = p.parseBlockStatement(); err != nil {
		return nil, err
	}
	return lit, nil
}

// parseFunctionParameters starts on '(' and ends on ')'.
func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, error) {
	params := []*ast.Identifier{}
	if p.peekIs(token.RParen) {
		p.next()
		return params, nil
	}
	if err := p.expectPeek(token.Ident); err != nil {
		return nil, err
	}
	params = append(params, &ast.Identifier{Token: p.cur, Value: p.cur.Text})
	for p.peekIs(token.Comma) {
		p.next()
		if err := p.expectPeek(token.Ident); err != nil {
			return nil, err
		}
		params = append(params, &ast.Identifier{Token: p.cur, Value: p.cur.Text})
	}
	if err := p.expectPeek(token.RParen); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseCallExpression(fn ast.Expression) (ast.Expression, error) {
	call := &ast.CallExpression{Token: p.cur, Function: fn}
	args, err := p.parseCallArguments()
	if err != nil {
		return nil, err
	}
	call.Arguments = args
	return call, nil
}

// parseCallArguments starts on '(' and ends on ')'.
func (p *Parser) parseCallArguments() ([]ast.Expression, error) {
	args := []ast.Expression{}
	if p.peekIs(token.RParen) {
		p.next()
		return args, nil
	}
	p.next()
	arg, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	args = append(args, arg)
	for p.peekIs(token.Comma) {
		p.next()
		p.next()
		if arg, err = p.parseExpression(precLowest); err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if err := p.expectPeek(token.RParen); err != nil {
		return nil, err
	}
	return args, nil
}
