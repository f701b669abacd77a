package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/a11ylint/internal/ui/pretty"
	"github.com/yaklabco/a11ylint/pkg/a11y"
	"github.com/yaklabco/a11ylint/pkg/config"
	"github.com/yaklabco/a11ylint/pkg/runner"
)

func stats(errs, warnings, info, analyzed, withIssues int) runner.Stats {
	return runner.Stats{
		FilesAnalyzed:   analyzed,
		FilesWithIssues: withIssues,
		FindingsTotal:   errs + warnings + info,
		FindingsBySeverity: map[config.Severity]int{
			config.SeverityError:   errs,
			config.SeverityWarning: warnings,
			config.SeverityInfo:    info,
		},
	}
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "clean",
			stats: stats(0, 0, 0, 3, 0),
			want:  "No issues found (3 files checked)\n",
		},
		{
			name:  "single file",
			stats: stats(0, 0, 0, 1, 0),
			want:  "No issues found (1 file checked)\n",
		},
		{
			name:  "mixed",
			stats: stats(4, 2, 0, 2, 1),
			want:  "6 issues (4 errors, 2 warnings) in 1 file\n",
		},
		{
			name:  "one info",
			stats: stats(0, 0, 1, 5, 1),
			want:  "1 issue (1 info) in 1 file\n",
		},
		{
			name: "errored files",
			stats: func() runner.Stats {
				s := stats(1, 0, 0, 1, 1)
				s.FilesErrored = 2
				return s
			}(),
			want: "1 issue (1 error) in 1 file, 2 files could not be analyzed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(stats(5, 10, 0, 10, 3))
	assert.Contains(t, result, "Files checked:     10")
	assert.Contains(t, result, "Files with issues: 3")
	assert.Contains(t, result, "Total issues:      15")
	assert.Contains(t, result, "Errors:          5")
	assert.Contains(t, result, "Warnings:        10")
	assert.NotContains(t, result, "Info:")
	assert.Contains(t, result, "Accessibility check failed with errors")

	assert.Contains(t, styles.FormatSummary(stats(0, 1, 0, 1, 1)), "completed with warnings")

	clean := styles.FormatSummary(stats(0, 0, 0, 5, 0))
	assert.Contains(t, clean, "Accessibility check passed")
	assert.NotContains(t, clean, "Files with issues:")
}

func TestTableFormatter(t *testing.T) {
	styles := pretty.NewStyles(false)
	formatter := pretty.NewTableFormatter(styles, 0)

	result := runner.NewResult(
		runner.FileOutcome{Path: "a.html", Report: a11y.NewReport([]a11y.Finding{
			{RuleID: "A11Y001", Severity: config.SeverityError, Title: "Missing alt attribute on image"},
		})},
		runner.FileOutcome{Path: "clean.html", Report: a11y.NewReport(nil)},
		runner.FileOutcome{Path: "b.html", Report: a11y.NewReport([]a11y.Finding{
			{RuleID: "A11Y004", Severity: config.SeverityWarning, Title: "Non-descriptive button text"},
		})},
	)

	table := formatter.FormatTable(result)
	assert.Contains(t, table, "FILE")
	assert.Contains(t, table, "TITLE")
	assert.Contains(t, table, "Missing alt attribute on image")
	assert.Contains(t, table, "A11Y004")
	assert.NotContains(t, table, "clean.html")

	assert.Equal(t, " 3 files checked | 1 errors | 1 warnings", formatter.FormatTableSummary(result.Stats))
	assert.Empty(t, formatter.FormatTable(runner.NewResult()))
}

func TestTableFormatter_Truncates(t *testing.T) {
	styles := pretty.NewStyles(false)
	formatter := pretty.NewTableFormatter(styles, 60)

	long := "a very long finding title that certainly does not fit in sixty columns"
	result := runner.NewResult(runner.FileOutcome{Path: "x.html", Report: a11y.NewReport([]a11y.Finding{
		{RuleID: "A11Y001", Severity: config.SeverityError, Title: long},
	})})

	table := formatter.FormatTable(result)
	assert.NotContains(t, table, long)
	assert.Contains(t, table, "...")
}
