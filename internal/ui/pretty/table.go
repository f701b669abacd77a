package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/a11ylint/pkg/config"
	"github.com/yaklabco/a11ylint/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // FILE, TYPE, TITLE, RULE
	minFileWidth     = 16
	minTypeWidth     = 7
	minTitleWidth    = 30
	minRuleWidth     = 8
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow is one finding in the table.
type TableRow struct {
	File     string
	Severity config.Severity
	Title    string
	RuleID   string
}

// TableFormatter formats findings as a table sized to the terminal.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

type columnWidths struct {
	file, severity, title, rule int
}

func (w columnWidths) total() int {
	return w.file + w.severity + w.title + w.rule + tablePadding*tableColumnCount
}

// FormatTable formats every finding in result, one group of rows per file.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	groups := collectRows(result)
	if len(groups) == 0 {
		return ""
	}

	widths := t.columnWidths(groups)

	var builder strings.Builder
	builder.WriteString(t.styles.TableHeader.Render(fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s",
		widths.file, "FILE",
		widths.severity, "TYPE",
		widths.title, "TITLE",
		widths.rule, "RULE",
	)) + "\n")
	builder.WriteString(t.separator(widths, heavySeparator) + "\n")

	for i, group := range groups {
		if i > 0 {
			builder.WriteString(t.separator(widths, lightSeparator) + "\n")
		}
		for _, row := range group {
			builder.WriteString(t.formatRow(row, widths) + "\n")
		}
	}

	builder.WriteString(t.separator(widths, heavySeparator) + "\n")
	return builder.String()
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats) string {
	parts := []string{fmt.Sprintf("%d %s checked", stats.FilesAnalyzed, plural(stats.FilesAnalyzed, wordFile, wordFiles))}

	if n := stats.FindingsBySeverity[config.SeverityError]; n > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d errors", n)))
	}
	if n := stats.FindingsBySeverity[config.SeverityWarning]; n > 0 {
		parts = append(parts, t.styles.Warning.Render(fmt.Sprintf("%d warnings", n)))
	}
	if n := stats.FindingsBySeverity[config.SeverityInfo]; n > 0 {
		parts = append(parts, t.styles.Info.Render(fmt.Sprintf("%d info", n)))
	}

	return " " + strings.Join(parts, " | ")
}

func collectRows(result *runner.Result) [][]TableRow {
	if result == nil {
		return nil
	}

	var groups [][]TableRow
	for _, file := range result.Files {
		if file.Report == nil || len(file.Report.Findings) == 0 {
			continue
		}
		rows := make([]TableRow, 0, len(file.Report.Findings))
		for _, f := range file.Report.Findings {
			rows = append(rows, TableRow{
				File:     file.Path,
				Severity: f.Severity,
				Title:    f.Title,
				RuleID:   f.RuleID,
			})
		}
		groups = append(groups, rows)
	}
	return groups
}

func (t *TableFormatter) columnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		file:     minFileWidth,
		severity: minTypeWidth,
		title:    minTitleWidth,
		rule:     minRuleWidth,
	}

	for _, group := range groups {
		for _, row := range group {
			widths.file = max(widths.file, len(row.File))
			widths.title = max(widths.title, len(row.Title))
			widths.rule = max(widths.rule, len(row.RuleID))
		}
	}

	// Shrink the title first, then the file column.
	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.title = max(minTitleWidth, widths.title-excess)
	}
	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.file = max(minFileWidth, widths.file-excess)
	}

	return widths
}

func (t *TableFormatter) separator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, widths.total()))
}

func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	content := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s",
		widths.file, truncateFilePath(row.File, widths.file),
		widths.severity, string(row.Severity),
		widths.title, truncateString(row.Title, widths.title),
		widths.rule, truncateString(row.RuleID, widths.rule),
	)

	switch row.Severity {
	case config.SeverityError:
		return t.styles.TableErrorRow.Render(content)
	case config.SeverityWarning:
		return t.styles.TableWarnRow.Render(content)
	default:
		return t.styles.TableInfoRow.Render(content)
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath keeps the end of a path, where the file name is.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
