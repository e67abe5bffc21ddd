package parser

import (
	"monkey/internal/ast"
	"monkey/internal/token"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Kind {
	case token.Let:
		return p.parseLetStatement()
	case token.Return:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// let <ident> = <expr> [;]
func (p *Parser) parseLetStatement() (*ast.LetStatement, error) {
	stmt := &ast.LetStatement{Token: p.cur}
	if err := p.expectPeek(token.Ident); err != nil {
		return nil, err
	}
	stmt.Name = &ast.Identifier{Token: p.cur, Value: p.cur.Text}
	if err := p.expectPeek(token.Assign); err != nil {
		return nil, err
	}
	p.next()
	value, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	stmt.Value = value
	p.skipSemicolon()
	return stmt, nil
}

func (p *Parser) parseReturnStatement() (*ast.ReturnStatement, error) {
	stmt := &ast.ReturnStatement{Token: p.cur}
	p.next()
	value, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	stmt.ReturnValue = value
	p.skipSemicolon()
	return stmt, nil
}

func (p *Parser) parseExpressionStatement() (*ast.ExpressionStatement, error) {
	stmt := &ast.ExpressionStatement{Token: p.cur}
	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	stmt.Expression = expr
	p.skipSemicolon()
	return stmt, nil
}

// parseBlockStatement starts on '{' and stops on the matching '}' or EOF.
func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	block := &ast.BlockStatement{Token: p.cur, Statements: []ast.Statement{}}
	p.next()
	for !p.cur.Is(token.RBrace) && !p.cur.Is(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		p.next()
	}
	return block, nil
}
