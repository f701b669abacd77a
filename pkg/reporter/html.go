package reporter

import (
	"bufio"
	"context"
	"fmt"
	"html"
	"io"
	"time"

	"github.com/yaklabco/a11ylint/internal/ui/pretty"
	"github.com/yaklabco/a11ylint/pkg/analysis"
)

// HTMLRenderer writes a standalone HTML page listing the findings.
type HTMLRenderer struct {
	opts Options
	out  io.Writer
}

// NewHTMLRenderer creates a new HTML renderer.
func NewHTMLRenderer(opts Options) *HTMLRenderer {
	return &HTMLRenderer{opts: opts, out: opts.Writer}
}

// Render implements Renderer.
func (r *HTMLRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.out, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	bw.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	bw.WriteString("<meta charset=\"UTF-8\">\n")
	bw.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	bw.WriteString("<title>Accessibility Report</title>\n")
	bw.WriteString(htmlStyles)
	bw.WriteString("</head>\n<body>\n<main class=\"container\">\n")

	fmt.Fprintf(bw, "<h1>Accessibility Report</h1>\n<p class=\"meta\">Generated %s by a11ylint %s</p>\n",
		html.EscapeString(report.GeneratedAt.Format(time.RFC1123)), html.EscapeString(r.opts.Version))

	s := report.Summary
	bw.WriteString("<section class=\"summary\">\n")
	fmt.Fprintf(bw, "<div class=\"stat\"><span class=\"value\">%d</span> total</div>\n", s.Total)
	fmt.Fprintf(bw, "<div class=\"stat error\"><span class=\"value\">%d</span> errors</div>\n", s.Errors)
	fmt.Fprintf(bw, "<div class=\"stat warning\"><span class=\"value\">%d</span> warnings</div>\n", s.Warnings)
	fmt.Fprintf(bw, "<div class=\"stat info\"><span class=\"value\">%d</span> info</div>\n", s.Info)
	bw.WriteString("</section>\n")

	if !s.HasIssues() {
		bw.WriteString("<section class=\"empty\">\n<h2>No issues found</h2>\n")
		bw.WriteString("<p>No accessibility issues were detected in the analyzed markup.</p>\n</section>\n")
	}

	for _, issue := range report.Issues {
		writeHTMLIssue(bw, &issue)
	}

	bw.WriteString("</main>\n</body>\n</html>\n")
	return nil
}

func writeHTMLIssue(w *bufio.Writer, issue *analysis.Issue) {
	sev := html.EscapeString(string(issue.Severity))

	fmt.Fprintf(w, "<article class=\"issue %s\">\n", sev)
	fmt.Fprintf(w, "<h3><i class=\"fa fa-%s\" aria-hidden=\"true\"></i> %s</h3>\n",
		pretty.IconKey(issue.Severity), html.EscapeString(issue.Title))
	if issue.File != "" {
		fmt.Fprintf(w, "<p class=\"file\">%s</p>\n", html.EscapeString(issue.File))
	}
	if issue.Description != "" {
		fmt.Fprintf(w, "<p>%s</p>\n", html.EscapeString(issue.Description))
	}
	fmt.Fprintf(w, "<h4>Element</h4>\n<pre><code>%s</code></pre>\n", html.EscapeString(issue.Element))
	if issue.Suggestion != "" {
		fmt.Fprintf(w, "<h4>Suggestion</h4>\n<p>%s</p>\n", html.EscapeString(issue.Suggestion))
	}
	fmt.Fprintf(w, "<h4>Fixed code</h4>\n<pre><code>%s</code></pre>\n", html.EscapeString(issue.Code))
	w.WriteString("</article>\n")
}

const htmlStyles = `<style>
body { font-family: system-ui, sans-serif; margin: 0; background: #f5f6f8; color: #1d1d1f; }
.container { max-width: 960px; margin: 0 auto; padding: 2rem; }
.meta { color: #555; }
.summary { display: flex; gap: 1rem; margin: 1.5rem 0; }
.stat { background: #fff; border-radius: 8px; padding: 1rem; flex: 1; text-align: center; }
.stat .value { display: block; font-size: 2rem; font-weight: bold; }
.issue { background: #fff; border-left: 6px solid #0b61a4; border-radius: 8px; padding: 1rem 1.5rem; margin-bottom: 1rem; }
.issue.error, .stat.error .value { border-color: #b00020; color: #b00020; }
.issue.warning, .stat.warning .value { border-color: #8a5300; color: #8a5300; }
.issue.info, .stat.info .value { border-color: #0b61a4; color: #0b61a4; }
.issue h3 { margin-top: 0; }
.issue p, .issue h4 { color: #1d1d1f; }
.file { font-family: monospace; }
pre { background: #272822; color: #f8f8f2; padding: 0.75rem; border-radius: 4px; overflow-x: auto; }
</style>
`
