package driver

import (
	"context"

	"monkey/internal/eval"
	"monkey/internal/object"
	"monkey/internal/trace"
)

type RunResult struct {
	*ParseResult
	Value object.Object // nil unless parsing and evaluation succeeded
}

// Run parses and evaluates path. Syntax errors are reported like Parse;
// runtime errors are returned as *eval.RuntimeError.
func Run(ctx context.Context, path string, opts ParseOptions) (*RunResult, error) {
	parsed, err := Parse(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	res := &RunResult{ParseResult: parsed}
	if parsed.Err != nil {
		return res, nil
	}
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "eval", trace.CurrentSpan(ctx))
	value, err := eval.Run(ctx, parsed.Program, object.NewEnvironment())
	if err != nil {
		trace.Error(trace.FromContext(ctx), trace.ScopePass, "eval", err)
		span.End("error")
		return res, err
	}
	span.End("")
	res.Value = value
	return res, nil
}
