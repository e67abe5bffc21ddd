package driver

import (
	"context"
	"fmt"
	"strconv"

	"monkey/internal/ast"
	"monkey/internal/diag"
	"monkey/internal/lexer"
	"monkey/internal/observ"
	"monkey/internal/parser"
	"monkey/internal/source"
	"monkey/internal/trace"
)

type ParseOptions struct {
	MaxDiagnostics int
}

type ParseResult struct {
	FileSet   *source.FileSet
	File      *source.File
	Program   *ast.Program // nil when Err is set
	Canonical string
	Bag       *diag.Bag
	Err       error // the parse error, also recorded in Bag
	Timing    observ.Report
}

// Parse loads and parses path. A syntax error is not a Go error: it is
// returned in ParseResult.Err and Bag. Only I/O failures return an error.
func Parse(ctx context.Context, path string, opts ParseOptions) (*ParseResult, error) {
	timer := observ.NewTimer()
	fs := source.NewFileSet()

	idx := timer.Begin("load")
	fileID, err := fs.Load(path)
	if err != nil {
		timer.End(idx, "failed")
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	timer.End(idx, strconv.Itoa(fs.Get(fileID).LineCount())+" lines")
	res := parseFile(ctx, fs.Get(fileID), opts.MaxDiagnostics, timer)
	res.FileSet = fs
	return res, nil
}

// ParseSource parses in-memory content registered under name.
func ParseSource(ctx context.Context, name string, content []byte, opts ParseOptions) *ParseResult {
	fs := source.NewFileSet()
	res := parseFile(ctx, fs.Get(fs.AddVirtual(name, content)), opts.MaxDiagnostics, observ.NewTimer())
	res.FileSet = fs
	return res
}

func parseFile(ctx context.Context, file *source.File, maxDiagnostics int, timer *observ.Timer) *ParseResult {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, file.Path, trace.CurrentSpan(ctx))
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	text := file.Text()

	idx := timer.Begin("lex")
	illegal := reportIllegal(reporter, file.Path, lexer.Tokenize(text))
	timer.End(idx, strconv.Itoa(illegal)+" illegal")

	var program *ast.Program
	err := timer.Track("parse", func() error {
		var err error
		program, err = parser.ParseString(text,
			parser.WithTracer(tracer),
			parser.WithReporter(reporter, file.Path),
		)
		return err
	})

	res := &ParseResult{File: file, Program: program, Bag: bag, Err: err}
	if err != nil {
		trace.Error(tracer, trace.ScopeFile, file.Path, err)
		span.End("error")
	} else {
		res.Canonical = program.String()
		span.WithExtra("stmts", strconv.Itoa(len(program.Statements))).
			WithExtra("nodes", strconv.Itoa(ast.Count(program))).
			End("ok")
	}
	res.Timing = timer.Report()
	return res
}
