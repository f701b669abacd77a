package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/a11ylint/internal/logging"
	"github.com/yaklabco/a11ylint/pkg/a11y"
	"github.com/yaklabco/a11ylint/pkg/source"
)

// Analyzer produces a report for a block of markup.
type Analyzer interface {
	Analyze(ctx context.Context, source string) (*a11y.Report, error)
}

// Runner analyzes files with an Analyzer.
type Runner struct {
	Analyzer Analyzer
}

// New creates a Runner. A nil analyzer uses the default engine.
func New(analyzer Analyzer) *Runner {
	if analyzer == nil {
		analyzer = a11y.NewEngine(nil, nil)
	}
	return &Runner{Analyzer: analyzer}
}

// Run discovers the files opts selects and analyzes them.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	return r.RunFiles(ctx, files, opts)
}

// RunFiles analyzes files concurrently, at most opts.Jobs at a time.
// Per-file failures are recorded on the outcome; only cancellation fails
// the run. Outcomes keep the order of files.
func (r *Runner) RunFiles(ctx context.Context, files []string, opts Options) (*Result, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	outcomes := make([]FileOutcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fctx := logging.WithFields(gctx, logging.FieldPath, path)
			outcomes[i] = r.analyzeFile(fctx, path, opts.Source)
			logging.FromContext(fctx).Debug("file analyzed", logging.FieldFindingsTotal, outcomes[i].findingCount())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	return NewResult(outcomes...), nil
}

// AnalyzeInput analyzes an already loaded input.
func (r *Runner) AnalyzeInput(ctx context.Context, input *source.Input) FileOutcome {
	outcome := FileOutcome{Path: input.Path, Kind: input.Kind}

	report, err := r.Analyzer.Analyze(ctx, input.Markup)
	if err != nil {
		outcome.Error = fmt.Errorf("%s: %w", input.Path, err)
		return outcome
	}
	outcome.Report = report
	return outcome
}

func (r *Runner) analyzeFile(ctx context.Context, path string, opts source.Options) FileOutcome {
	input, err := source.Load(ctx, path, opts)
	if err != nil {
		outcome := FileOutcome{Path: path}
		if errors.Is(err, source.ErrEmptyInput) {
			outcome.Skipped = true
		} else {
			outcome.Error = err
		}
		return outcome
	}
	return r.AnalyzeInput(ctx, input)
}
