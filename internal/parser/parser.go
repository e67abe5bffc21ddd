// Package parser builds an ast.Program from a lexer token stream using
// precedence climbing over a two-token window.
//
// The first structural violation aborts the parse: ParseProgram returns a
// nil program and a *Error describing what was expected and what was found.
package parser

import (
	"errors"
	"strconv"

	"monkey/internal/ast"
	"monkey/internal/diag"
	"monkey/internal/lexer"
	"monkey/internal/token"
	"monkey/internal/trace"
)

type Parser struct {
	lx   *lexer.Lexer
	cur  token.Token
	peek token.Token

	tracer   trace.Tracer
	reporter diag.Reporter
	path     string
	span     uint64
}

// Option configures a Parser.
type Option func(*Parser)

// WithTracer emits a pass span for the program and a node point per statement.
func WithTracer(t trace.Tracer) Option {
	return func(p *Parser) {
		if t != nil {
			p.tracer = t
		}
	}
}

// WithReporter forwards the aborting error to r as a diagnostic for path.
func WithReporter(r diag.Reporter, path string) Option {
	return func(p *Parser) {
		p.reporter = r
		p.path = path
	}
}

// New primes the cur/peek window from lx.
func New(lx *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{lx: lx, tracer: trace.Nop}
	for _, opt := range opts {
		opt(p)
	}
	p.next()
	p.next()
	return p
}

// ParseString parses src in one call.
func ParseString(src string, opts ...Option) (*ast.Program, error) {
	return New(lexer.New(src), opts...).ParseProgram()
}

// ParseProgram consumes statements until EOF.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	span := trace.Begin(p.tracer, trace.ScopePass, "parse", 0)
	p.span = span.ID()

	program := &ast.Program{Statements: []ast.Statement{}}
	for !p.cur.Is(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			span.End(err.Error())
			p.report(err)
			return nil, err
		}
		trace.Point(p.tracer, trace.ScopeNode, stmt.Kind().String(), stmt.String())
		program.Statements = append(program.Statements, stmt)
		p.next()
	}
	span.WithExtra("stmts", strconv.Itoa(len(program.Statements))).End("")
	return program, nil
}

func (p *Parser) report(err error) {
	if p.reporter == nil {
		return
	}
	var perr *Error
	if errors.As(err, &perr) {
		diag.ReportError(p.reporter, perr.Kind.Code(), p.path, perr.Error())
	}
}
