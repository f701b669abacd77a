package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/a11ylint/internal/ui/pretty"
	"github.com/yaklabco/a11ylint/pkg/analysis"
)

// Table layout for summary output. Both tables share one width.
const (
	tableWidth        = 90
	ruleColWidth      = 34
	fileColWidth      = 52
	numColWidth       = 7
	warnColWidth      = 9
	maxRuleNameLength = 32
	maxFilePathLength = 50
)

// padRight pads s to width. Pad before styling; ANSI codes break the count.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryRenderer formats results as per-rule and per-file count tables.
type SummaryRenderer struct {
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	return &SummaryRenderer{
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if !report.Summary.HasIssues() {
		fmt.Fprintln(r.out, r.styles.Success.Render("No issues found"))
		return nil
	}

	r.renderRuleTable(report.ByRule)
	fmt.Fprintln(r.out)
	r.renderFileTable(report.Files)
	fmt.Fprintln(r.out)
	r.renderTotals(report.Summary)

	return nil
}

func (r *SummaryRenderer) separator() {
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))
}

func (r *SummaryRenderer) renderRuleTable(rules []analysis.RuleAnalysis) {
	if len(rules) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Rules Summary"))
	r.separator()
	fmt.Fprintf(r.out, "%s %s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("Rule", ruleColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", warnColWidth)),
		r.styles.TableHeader.Render(padLeft("Info", numColWidth)),
	)
	r.separator()

	for _, rule := range rules {
		name := rule.RuleID
		if rule.RuleName != "" {
			name += " " + rule.RuleName
		}
		if len(name) > maxRuleNameLength {
			name = name[:maxRuleNameLength] + "…"
		}

		fmt.Fprintf(r.out, "%s %s %s %s %s\n",
			r.rowStyle(rule.Errors, rule.Warnings, padRight(name, ruleColWidth)),
			padLeft(strconv.Itoa(rule.Issues), numColWidth),
			padLeft(strconv.Itoa(rule.Errors), numColWidth),
			padLeft(strconv.Itoa(rule.Warnings), warnColWidth),
			padLeft(strconv.Itoa(rule.Info), numColWidth),
		)
	}
}

func (r *SummaryRenderer) renderFileTable(files []analysis.FileAnalysis) {
	if len(files) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Files Summary"))
	r.separator()
	fmt.Fprintf(r.out, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", warnColWidth)),
	)
	r.separator()

	for _, file := range files {
		path := file.Path
		if len(path) > maxFilePathLength {
			path = "…" + path[len(path)-(maxFilePathLength-1):]
		}
		if file.Error != "" {
			fmt.Fprintf(r.out, "%s %s\n", padRight(path, fileColWidth), r.styles.Failure.Render("error: "+file.Error))
			continue
		}

		fmt.Fprintf(r.out, "%s %s %s %s\n",
			r.rowStyle(file.Errors, file.Warnings, padRight(path, fileColWidth)),
			padLeft(strconv.Itoa(file.Issues), numColWidth),
			padLeft(strconv.Itoa(file.Errors), numColWidth),
			padLeft(strconv.Itoa(file.Warnings), warnColWidth),
		)
	}
}

func (r *SummaryRenderer) rowStyle(errs, warnings int, text string) string {
	switch {
	case errs > 0:
		return r.styles.TableErrorRow.Render(text)
	case warnings > 0:
		return r.styles.TableWarnRow.Render(text)
	default:
		return text
	}
}

func (r *SummaryRenderer) renderTotals(summary analysis.Summary) {
	line := countLabel(summary.Total, "issue", "issues")

	var severityParts []string
	if summary.Errors > 0 {
		severityParts = append(severityParts, r.styles.Error.Render(countLabel(summary.Errors, "error", "errors")))
	}
	if summary.Warnings > 0 {
		severityParts = append(severityParts, r.styles.Warning.Render(countLabel(summary.Warnings, "warning", "warnings")))
	}
	if summary.Info > 0 {
		severityParts = append(severityParts, r.styles.Info.Render(fmt.Sprintf("%d info", summary.Info)))
	}
	if len(severityParts) > 0 {
		line += " (" + strings.Join(severityParts, ", ") + ")"
	}

	line += " in " + countLabel(summary.FilesWithIssues, "file", "files")

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+line)
}

func countLabel(n int, singular, pluralWord string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + pluralWord
}
