package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/yaklabco/a11ylint/internal/ui/pretty"
	"github.com/yaklabco/a11ylint/pkg/runner"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// TableReporter formats results as a table sized to the terminal.
type TableReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	styles := pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer))
	return &TableReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, terminalWidth(opts.Writer)),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
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

	total := result.Stats.FindingsTotal
	if total == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No issues found"))
			fmt.Fprintln(r.bw, r.styles.Dim.Render(fmt.Sprintf("%d files checked", result.Stats.FilesAnalyzed)))
		}
		return 0, nil
	}

	fmt.Fprint(r.bw, r.formatter.FormatTable(result))
	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw, r.formatter.FormatTableSummary(result.Stats))
	}

	return total, nil
}

// terminalWidth returns the width of the terminal behind writer, if any.
func terminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
