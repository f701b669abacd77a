// Package reporter renders accessibility findings and saves report records.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/a11ylint/pkg/analysis"
	"github.com/yaklabco/a11ylint/pkg/runner"
)

// Compile-time interface check for reporterFacade.
var _ Reporter = (*reporterFacade)(nil)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of findings reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// reporterFacade bridges the Reporter interface to Renderer implementations.
type reporterFacade struct {
	renderer     Renderer
	analysisOpts analysis.Options
}

// Report implements Reporter by analyzing the result and rendering it.
func (f *reporterFacade) Report(ctx context.Context, result *runner.Result) (int, error) {
	report := analysis.Analyze(result, f.analysisOpts)
	if err := f.renderer.Render(ctx, report); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	return report.Summary.Total, nil
}

func newRendererFacade(renderer Renderer, opts Options) *reporterFacade {
	analysisOpts := analysis.DefaultOptions()
	analysisOpts.WorkingDir = opts.WorkingDir
	analysisOpts.Now = opts.Now
	return &reporterFacade{renderer: renderer, analysisOpts: analysisOpts}
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.Version == "" {
		opts.Version = DefaultOptions().Version
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatJSON:
		return newRendererFacade(NewJSONRenderer(opts), opts), nil
	case FormatSARIF:
		return NewSARIFReporter(opts), nil
	case FormatHTML:
		return newRendererFacade(NewHTMLRenderer(opts), opts), nil
	case FormatSummary:
		return newRendererFacade(NewSummaryRenderer(opts), opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// withDisplayPaths returns a copy of result with file paths made relative
// to workDir.
func withDisplayPaths(result *runner.Result, workDir string) *runner.Result {
	if result == nil || workDir == "" {
		return result
	}
	out := *result
	out.Files = make([]runner.FileOutcome, len(result.Files))
	for i, file := range result.Files {
		file.Path = analysis.DisplayPath(file.Path, workDir)
		out.Files[i] = file
	}
	return &out
}
