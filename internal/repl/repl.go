// Package repl runs the line-oriented interactive loop.
//
// Each input line is parsed as a whole program. In parse mode the canonical
// form is echoed; in eval mode the line is evaluated in an environment that
// persists for the session. Failures print "ERROR: <message>" and the loop
// moves on to the next line.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"

	"monkey/internal/eval"
	"monkey/internal/object"
	"monkey/internal/parser"
	"monkey/internal/trace"
)

const DefaultPrompt = "> "

// maxLineBytes caps a single input line.
const maxLineBytes = 1 << 20

type Mode uint8

const (
	ModeParse Mode = iota
	ModeEval
)

func (m Mode) String() string {
	if m == ModeEval {
		return "eval"
	}
	return "parse"
}

// ParseMode accepts "parse" and "eval".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "parse":
		return ModeParse, nil
	case "eval":
		return ModeEval, nil
	}
	return ModeParse, fmt.Errorf("invalid repl mode %q (expected parse|eval)", s)
}

type Options struct {
	Mode   Mode
	Prompt string // empty means DefaultPrompt
	Color  bool   // colour the ERROR prefix
	Tracer trace.Tracer
	// ErrorLog, when set in eval mode, receives the trace events of every
	// line that ends in an error.
	ErrorLog io.Writer
}

// ringSize bounds the events kept for one line in eval mode.
const ringSize = 64

var errLineTooLong = errors.New("line too long")

type session struct {
	out    io.Writer
	opts   Options
	env    *object.Environment
	errTag string
}

// Start loops until in is exhausted (returning nil), ctx is cancelled, or a
// read or write fails.
func Start(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	s := &session{out: out, opts: opts, env: object.NewEnvironment(), errTag: "ERROR:"}
	if opts.Color {
		c := color.New(color.FgRed, color.Bold)
		c.EnableColor()
		s.errTag = c.Sprint("ERROR:")
	}

	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(out, opts.Prompt); err != nil {
			return fmt.Errorf("write prompt: %w", err)
		}
		line, err := readLine(reader)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, errLineTooLong):
			if err := s.writeError(err.Error()); err != nil {
				return err
			}
			continue
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}
		if err := s.handleLine(ctx, line); err != nil {
			return err
		}
	}
}

// readLine returns the next line without its terminator. A line longer than
// maxLineBytes is read to its end, dropped and reported as errLineTooLong.
func readLine(r *bufio.Reader) (string, error) {
	var buf []byte
	tooLong := false
	for {
		frag, err := r.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(frag) > maxLineBytes+2 {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, frag...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !(errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong)) {
			return "", err
		}
		line := strings.TrimSuffix(strings.TrimSuffix(string(buf), "\n"), "\r")
		if tooLong || len(line) > maxLineBytes {
			return "", errLineTooLong
		}
		return line, nil
	}
}

// handleLine runs handle, recording the line's events into a fresh ring
// when an ErrorLog is configured.
func (s *session) handleLine(ctx context.Context, line string) error {
	if s.opts.Mode != ModeEval || s.opts.ErrorLog == nil {
		return s.handle(ctx, s.opts.Tracer, line)
	}
	ring := trace.NewRingTracer(ringSize, trace.LevelDebug)
	tracer := trace.NewMultiTracer(trace.LevelDebug, s.opts.Tracer, ring)
	if err := s.handle(ctx, tracer, line); err != nil {
		return err
	}
	events := ring.Snapshot()
	if slices.ContainsFunc(events, func(ev trace.Event) bool { return ev.Kind == trace.KindError }) {
		return ring.Dump(s.opts.ErrorLog, trace.FormatText)
	}
	return nil
}

// handle processes one line and writes exactly one result line.
func (s *session) handle(ctx context.Context, tracer trace.Tracer, line string) error {
	program, err := parser.ParseString(line, parser.WithTracer(tracer))
	if err != nil {
		trace.Error(tracer, trace.ScopePass, "parse", err)
		return s.writeError(err.Error())
	}
	if s.opts.Mode == ModeParse {
		_, err := fmt.Fprintln(s.out, program.String())
		return err
	}

	result, err := eval.Run(ctx, program, s.env)
	if err != nil {
		if errors.Is(err, eval.ErrCanceled) {
			return ctx.Err()
		}
		trace.Error(tracer, trace.ScopePass, "eval", err)
		return s.writeError(err.Error())
	}
	_, err = fmt.Fprintln(s.out, result.Inspect())
	return err
}

func (s *session) writeError(msg string) error {
	_, err := fmt.Fprintln(s.out, s.errTag+" "+msg)
	return err
}
