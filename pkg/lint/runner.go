package lint

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/leapstack-labs/leapweb/pkg/source"
	"golang.org/x/sync/errgroup"
)

// FileResult is the outcome of analyzing one file.
type FileResult struct {
	Path   string
	Issues []Issue
	Err    error // *IOError when the file could not be analyzed
}

// Runner analyzes many files in parallel with one Analyzer.
type Runner struct {
	analyzer *Analyzer
	jobs     int
	logger   *slog.Logger
}

// NewRunner returns a runner using at most jobs goroutines.
// jobs <= 0 means GOMAXPROCS.
func NewRunner(analyzer *Analyzer, jobs int, logger *slog.Logger) *Runner {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{analyzer: analyzer, jobs: jobs, logger: logger}
}

// Run analyzes files and returns one result per file in input order.
// A failing file never affects the others. Cancelling ctx stops scheduling
// new files; Run then returns the context error alongside the results
// gathered so far.
func (r *Runner) Run(ctx context.Context, files []*source.File) ([]FileResult, error) {
	results := make([]FileResult, len(files))
	if len(files) == 0 {
		return results, nil
	}

	// Indexes are unique per goroutine, no mutex needed.
	var g errgroup.Group
	g.SetLimit(min(r.jobs, len(files)))

	for i, f := range files {
		results[i].Path = f.Path()
		if ctx.Err() != nil {
			results[i].Err = &IOError{Path: f.Path(), Err: ctx.Err()}
			continue
		}
		g.Go(func() error {
			issues, err := r.analyzer.AnalyzeFile(ctx, f)
			if err != nil {
				r.logger.Warn("file skipped", "path", f.Path(), "error", err)
			}
			results[i] = FileResult{Path: f.Path(), Issues: issues, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results, ctx.Err()
}

// Summarize returns the total number of issues and failed files.
func Summarize(results []FileResult) (issues, failed int) {
	for _, res := range results {
		issues += len(res.Issues)
		if res.Err != nil {
			failed++
		}
	}
	return issues, failed
}
