package parser

import "monkey/internal/token"

// next shifts the window by one token.
func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lx.Next()
}

func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

// expectPeek advances when peek is k and fails otherwise.
func (p *Parser) expectPeek(k token.Kind) error {
	if !p.peekIs(k) {
		return &Error{Kind: UnexpectedToken, Expected: k, Found: p.peek.Kind, Literal: p.peek.Text}
	}
	p.next()
	return nil
}

// skipSemicolon consumes an optional trailing ';'.
func (p *Parser) skipSemicolon() {
	if p.peekIs(token.Semicolon) {
		p.next()
	}
}
