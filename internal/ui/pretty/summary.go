package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/a11ylint/pkg/config"
	"github.com/yaklabco/a11ylint/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "6 issues (4 errors, 2 warnings) in 1 file".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FindingsTotal == 0 {
		return s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesAnalyzed, plural(stats.FilesAnalyzed, wordFile, wordFiles))) +
			s.erroredSuffix(stats) + "\n"
	}

	var severityParts []string
	if n := stats.FindingsBySeverity[config.SeverityError]; n > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d %s", n, plural(n, "error", "errors"))))
	}
	if n := stats.FindingsBySeverity[config.SeverityWarning]; n > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d %s", n, plural(n, "warning", "warnings"))))
	}
	if n := stats.FindingsBySeverity[config.SeverityInfo]; n > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", n)))
	}

	line := fmt.Sprintf("%d %s", stats.FindingsTotal, plural(stats.FindingsTotal, "issue", "issues"))
	if len(severityParts) > 0 {
		line += " (" + strings.Join(severityParts, ", ") + ")"
	}
	line += fmt.Sprintf(" in %d %s", stats.FilesWithIssues, plural(stats.FilesWithIssues, wordFile, wordFiles))

	return line + s.erroredSuffix(stats) + "\n"
}

func (s *Styles) erroredSuffix(stats runner.Stats) string {
	if stats.FilesErrored == 0 {
		return ""
	}
	return ", " + s.Failure.Render(fmt.Sprintf("%d %s could not be analyzed",
		stats.FilesErrored, plural(stats.FilesErrored, wordFile, wordFiles)))
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesAnalyzed)) + "\n")

	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:     " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total issues:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.FindingsTotal)) + "\n")

	errs := stats.FindingsBySeverity[config.SeverityError]
	warnings := stats.FindingsBySeverity[config.SeverityWarning]
	if errs > 0 {
		builder.WriteString("    Errors:          " + s.Error.Render(strconv.Itoa(errs)) + "\n")
	}
	if warnings > 0 {
		builder.WriteString("    Warnings:        " + s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}
	if info := stats.FindingsBySeverity[config.SeverityInfo]; info > 0 {
		builder.WriteString("    Info:            " + s.Info.Render(strconv.Itoa(info)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case errs > 0:
		builder.WriteString(s.Failure.Render("Accessibility check failed with errors"))
	case warnings > 0:
		builder.WriteString(s.Warning.Render("Accessibility check completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Accessibility check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
