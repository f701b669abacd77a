package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/a11ylint/internal/ui/pretty"
	"github.com/yaklabco/a11ylint/pkg/runner"
)

// TextReporter formats results as styled finding cards grouped by file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	result = withDisplayPaths(result, r.opts.WorkingDir)
	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}
		if file.Report == nil || len(file.Report.Findings) == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file.Path, file.Report.Total()))
		for i := range file.Report.Findings {
			fmt.Fprint(r.bw, r.styles.FormatFinding(&file.Report.Findings[i]))
			total++
		}
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}
