// Package trace is the structured logging layer of the monkey toolchain.
//
// Events are emitted by the CLI driver, the per-file pipeline and, at the
// most verbose level, by the parser for every statement it builds.
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: failures only
//   - LevelPhase: driver and pass boundaries (lex, parse, eval)
//   - LevelDetail: per-file events
//   - LevelDebug: everything including parsed nodes
//
// # Usage
//
//	monkey check --trace=- --trace-level=detail ./examples
//
// Tracers travel through the pipeline inside a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
