package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"monkey/internal/diag"
	"monkey/internal/observ"
	"monkey/internal/source"
	"monkey/internal/trace"
)

// SourceExt is the file extension CheckDir looks for.
const SourceExt = ".mon"

type CheckOptions struct {
	Jobs           int // <= 0 means GOMAXPROCS
	MaxDiagnostics int
	UseCache       bool
	Cache          *DiskCache
	// Events, when set, receives progress for every file and is closed
	// when CheckDir returns.
	Events chan<- Event
}

type CheckResult struct {
	Path       string
	Hash       string
	Statements int
	Bag        *diag.Bag
	Cached     bool
	Failed     bool
	Elapsed    time.Duration
}

// ListSourceFiles returns every *.mon file under dir, sorted.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == SourceExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir parses every source file under dir in parallel. Results are in
// path order regardless of completion order. Per-file failures land in the
// results; the returned error is reserved for walk failures and cancellation.
func CheckDir(ctx context.Context, dir string, opts CheckOptions) ([]CheckResult, error) {
	if opts.Events != nil {
		defer close(opts.Events)
	}
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "check", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, span)

	files, err := ListSourceFiles(dir)
	if err != nil {
		span.End("walk failed")
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	for _, path := range files {
		emit(ctx.Done(), opts.Events, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.End(err.Error())
		return nil, err
	}
	span.WithExtra("files", strconv.Itoa(len(files))).End("")
	return results, nil
}

func checkFile(ctx context.Context, path string, opts CheckOptions) CheckResult {
	start := time.Now()
	done := ctx.Done()
	res := CheckResult{Path: path, Bag: diag.NewBag(opts.MaxDiagnostics)}

	fset := source.NewFileSet()
	id, err := fset.Load(path)
	if err != nil {
		diag.ReportError(diag.BagReporter{Bag: res.Bag}, diag.IOLoadFileError, path, "failed to load file: "+err.Error())
		res.Failed = true
		res.Elapsed = time.Since(start)
		emit(done, opts.Events, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err, Elapsed: res.Elapsed})
		return res
	}
	file := fset.Get(id)
	res.Hash = file.HashHex()

	if opts.UseCache && opts.Cache != nil {
		var payload CheckPayload
		if ok, err := opts.Cache.Get(res.Hash, &payload); err == nil && ok {
			restoreFromCache(&res, &payload)
			res.Elapsed = time.Since(start)
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, path, "cache hit")
			emit(done, opts.Events, Event{File: path, Stage: StageParse, Status: StatusCached, Elapsed: res.Elapsed})
			return res
		}
	}

	emit(done, opts.Events, Event{File: path, Stage: StageParse, Status: StatusWorking})
	parsed := parseFile(ctx, file, opts.MaxDiagnostics, observ.NewTimer())
	res.Bag = parsed.Bag
	res.Failed = parsed.Err != nil || res.Bag.HasErrors()
	if parsed.Program != nil {
		res.Statements = len(parsed.Program.Statements)
	}

	if opts.UseCache && opts.Cache != nil {
		if err := opts.Cache.Put(res.Hash, toPayload(&res)); err != nil {
			trace.Error(trace.FromContext(ctx), trace.ScopeFile, path, fmt.Errorf("cache put: %w", err))
		}
	}

	res.Elapsed = time.Since(start)
	status := StatusDone
	if res.Failed {
		status = StatusError
	}
	emit(done, opts.Events, Event{File: path, Stage: StageParse, Status: status, Err: parsed.Err, Elapsed: res.Elapsed})
	return res
}

func toPayload(res *CheckResult) *CheckPayload {
	p := &CheckPayload{Statements: res.Statements, Failed: res.Failed}
	for _, d := range res.Bag.Items() {
		p.Messages = append(p.Messages, CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
		})
	}
	return p
}

func restoreFromCache(res *CheckResult, p *CheckPayload) {
	res.Cached = true
	res.Statements = p.Statements
	res.Failed = p.Failed
	for _, m := range p.Messages {
		res.Bag.Add(diag.New(diag.Severity(m.Severity), diag.Code(m.Code), res.Path, m.Message))
	}
}

// Summary counts results by outcome.
type Summary struct {
	Files, Failed, Cached, Statements int
}

func Summarize(results []CheckResult) Summary {
	var s Summary
	for _, r := range results {
		s.Files++
		s.Statements += r.Statements
		if r.Failed {
			s.Failed++
		}
		if r.Cached {
			s.Cached++
		}
	}
	return s
}

// ErrCheckFailed is returned by callers that turn failed files into an exit status.
var ErrCheckFailed = errors.New("check failed")
