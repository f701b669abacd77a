package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/a11ylint/pkg/a11y"
	_ "github.com/yaklabco/a11ylint/pkg/a11y/rules"
	"github.com/yaklabco/a11ylint/pkg/config"
	"github.com/yaklabco/a11ylint/pkg/reporter"
	"github.com/yaklabco/a11ylint/pkg/runner"
	"github.com/yaklabco/a11ylint/pkg/source"
)

var fixedNow = time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)

func missingAlt() a11y.Finding {
	return a11y.Finding{
		RuleID:      "A11Y001",
		RuleName:    "image-alt",
		Severity:    config.SeverityError,
		Title:       "Missing alt attribute on image",
		Description: "Images must have alt text for screen readers",
		Element:     `<img src="hero.jpg"/>`,
		Suggestion:  "Add descriptive alt text",
		Code:        `<img src="hero.jpg" alt="Description of the image">`,
	}
}

func vagueButton() a11y.Finding {
	return a11y.Finding{
		RuleID:      "A11Y004",
		RuleName:    "descriptive-button-text",
		Severity:    config.SeverityWarning,
		Title:       "Non-descriptive button text",
		Description: `Button text "Click here" is not descriptive`,
		Element:     `<button>Click here</button>`,
		Suggestion:  "Use descriptive text that explains the action",
		Code:        `<button>Learn more about our services</button>`,
	}
}

func sampleResult() *runner.Result {
	return runner.NewResult(
		runner.FileOutcome{
			Path:   "docs/index.html",
			Kind:   source.KindHTML,
			Report: a11y.NewReport([]a11y.Finding{missingAlt(), vagueButton()}),
		},
		runner.FileOutcome{
			Path:   "docs/clean.html",
			Kind:   source.KindHTML,
			Report: a11y.NewReport(nil),
		},
	)
}

func cleanResult() *runner.Result {
	return runner.NewResult(runner.FileOutcome{
		Path:   "index.html",
		Kind:   source.KindHTML,
		Report: a11y.NewReport(nil),
	})
}

func render(t *testing.T, format reporter.Format, result *runner.Result) (string, int) {
	t.Helper()

	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Format = format
	opts.Color = config.ColorNever
	opts.Now = fixedNow
	opts.Version = "1.2.3"

	rep, err := reporter.New(opts)
	require.NoError(t, err)

	n, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	return buf.String(), n
}

func TestNew_AllFormats(t *testing.T) {
	t.Parallel()

	formats := []reporter.Format{
		reporter.FormatText,
		reporter.FormatTable,
		reporter.FormatJSON,
		reporter.FormatSARIF,
		reporter.FormatHTML,
		reporter.FormatSummary,
	}
	for _, format := range formats {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()
			out, n := render(t, format, sampleResult())
			assert.Equal(t, 2, n)
			assert.NotEmpty(t, out)
		})
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	opts.Format = "xml"
	_, err := reporter.New(opts)
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{"", reporter.FormatText, false},
		{"text", reporter.FormatText, false},
		{"table", reporter.FormatTable, false},
		{"json", reporter.FormatJSON, false},
		{"sarif", reporter.FormatSARIF, false},
		{"html", reporter.FormatHTML, false},
		{"summary", reporter.FormatSummary, false},
		{"yaml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	out, _ := render(t, reporter.FormatText, sampleResult())

	assert.Contains(t, out, "docs/index.html (2 issues)")
	assert.Contains(t, out, "Missing alt attribute on image")
	assert.Contains(t, out, "(A11Y001/image-alt)")
	assert.Contains(t, out, `<img src="hero.jpg" alt="Description of the image">`)
	assert.Contains(t, out, "Non-descriptive button text")
	assert.NotContains(t, out, "docs/clean.html")
	assert.Contains(t, out, "2 issues (1 error, 1 warning)")
}

func TestTextReporter_FileError(t *testing.T) {
	t.Parallel()

	result := runner.NewResult(runner.FileOutcome{
		Path:  "broken.html",
		Error: errors.New("read broken.html: permission denied"),
	})
	out, n := render(t, reporter.FormatText, result)

	assert.Equal(t, 0, n)
	assert.Contains(t, out, "broken.html: error: read broken.html: permission denied")
}

func TestTableReporter_Clean(t *testing.T) {
	t.Parallel()

	out, n := render(t, reporter.FormatTable, cleanResult())
	assert.Equal(t, 0, n)
	assert.Contains(t, out, "No issues found")
}

func TestJSONRenderer_Record(t *testing.T) {
	t.Parallel()

	out, _ := render(t, reporter.FormatJSON, sampleResult())

	var record struct {
		GeneratedAt time.Time `json:"timestamp"`
		Summary     struct {
			Total    int `json:"total"`
			Errors   int `json:"errors"`
			Warnings int `json:"warnings"`
			Info     int `json:"info"`
		} `json:"summary"`
		Issues []map[string]any `json:"issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &record))

	assert.True(t, fixedNow.Equal(record.GeneratedAt))
	assert.Equal(t, 2, record.Summary.Total)
	assert.Equal(t, 1, record.Summary.Errors)
	assert.Equal(t, 1, record.Summary.Warnings)
	assert.Equal(t, 0, record.Summary.Info)
	require.Len(t, record.Issues, 2)
	assert.Equal(t, "error", record.Issues[0]["type"])
	assert.Equal(t, `<img src="hero.jpg"/>`, record.Issues[0]["element"])
	assert.Equal(t, "docs/index.html", record.Issues[0]["file"])
}

func TestJSONRenderer_Empty(t *testing.T) {
	t.Parallel()

	out, _ := render(t, reporter.FormatJSON, cleanResult())
	assert.Contains(t, out, `"issues": []`)
	assert.Contains(t, out, `"total": 0`)
}

func TestSARIFReporter(t *testing.T) {
	t.Parallel()

	out, n := render(t, reporter.FormatSARIF, sampleResult())
	assert.Equal(t, 2, n)

	var doc reporter.SARIFLog
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)
	run := doc.Runs[0]
	assert.Equal(t, "a11ylint", run.Tool.Driver.Name)
	assert.Equal(t, "1.2.3", run.Tool.Driver.Version)
	assert.Len(t, run.Tool.Driver.Rules, 6)
	assert.Equal(t, "A11Y001", run.Tool.Driver.Rules[0].ID)

	require.Len(t, run.Results, 2)
	first := run.Results[0]
	assert.Equal(t, "A11Y001", first.RuleID)
	assert.Equal(t, 0, first.RuleIndex)
	assert.Equal(t, "error", first.Level)
	assert.Equal(t, "Missing alt attribute on image: Images must have alt text for screen readers", first.Message.Text)
	require.Len(t, first.Locations, 1)
	assert.Equal(t, "docs/index.html", first.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	require.NotNil(t, first.Locations[0].PhysicalLocation.Region)
	assert.Equal(t, `<img src="hero.jpg"/>`, first.Locations[0].PhysicalLocation.Region.Snippet.Text)
	assert.Equal(t, "warning", run.Results[1].Level)

	require.Len(t, run.Invocations, 1)
	assert.True(t, run.Invocations[0].ExecutionSuccessful)
}

func TestSARIFReporter_ErroredFile(t *testing.T) {
	t.Parallel()

	result := runner.NewResult(runner.FileOutcome{
		Path:  "broken.html",
		Error: errors.New("read broken.html: permission denied"),
	})
	out, n := render(t, reporter.FormatSARIF, result)
	assert.Equal(t, 0, n)

	var doc reporter.SARIFLog
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Runs[0].Invocations, 1)
	invocation := doc.Runs[0].Invocations[0]
	assert.False(t, invocation.ExecutionSuccessful)
	require.Len(t, invocation.ToolExecutionNotifications, 1)
	notification := invocation.ToolExecutionNotifications[0]
	assert.Equal(t, "error", notification.Level)
	assert.Contains(t, notification.Message.Text, "permission denied")
	assert.Equal(t, "broken.html", notification.Locations[0].PhysicalLocation.ArtifactLocation.URI)
}

func TestSARIFReporter_InfoLevel(t *testing.T) {
	t.Parallel()

	finding := a11y.Finding{
		RuleID:   "A11Y006",
		Severity: config.SeverityInfo,
		Title:    "Color contrast check needed",
		Element:  "1 elements with color styles found",
	}
	result := runner.NewResult(runner.FileOutcome{
		Path:   "a.html",
		Report: a11y.NewReport([]a11y.Finding{finding}),
	})
	out, _ := render(t, reporter.FormatSARIF, result)

	var doc reporter.SARIFLog
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Runs[0].Results, 1)
	assert.Equal(t, "note", doc.Runs[0].Results[0].Level)
}

func TestHTMLRenderer_EscapesMarkup(t *testing.T) {
	t.Parallel()

	out, _ := render(t, reporter.FormatHTML, sampleResult())

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `&lt;img src=&#34;hero.jpg&#34;/&gt;`)
	assert.NotContains(t, out, `<img src="hero.jpg"/>`)
	assert.Contains(t, out, `Button text &#34;Click here&#34; is not descriptive`)
	assert.Contains(t, out, `fa-exclamation-circle`)
	assert.Contains(t, out, `fa-exclamation-triangle`)
	assert.NotContains(t, out, "No issues found")
}

func TestHTMLRenderer_Empty(t *testing.T) {
	t.Parallel()

	out, _ := render(t, reporter.FormatHTML, cleanResult())
	assert.Contains(t, out, "No issues found")
	assert.NotContains(t, out, `<article`)
}

func TestSummaryRenderer(t *testing.T) {
	t.Parallel()

	out, _ := render(t, reporter.FormatSummary, sampleResult())

	assert.Contains(t, out, "Rules Summary")
	assert.Contains(t, out, "A11Y001 image-alt")
	assert.Contains(t, out, "Files Summary")
	assert.Contains(t, out, "docs/index.html")
	assert.Contains(t, out, "Total: 2 issues (1 error, 1 warning) in 1 file")
}

func TestSummaryRenderer_Clean(t *testing.T) {
	t.Parallel()

	out, _ := render(t, reporter.FormatSummary, cleanResult())
	assert.Equal(t, "No issues found\n", out)
}

func TestReportFileName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a11y-report-2026-03-14.json", reporter.ReportFileName(fixedNow))
}

func TestReportFileName_UsesUTCDate(t *testing.T) {
	t.Parallel()

	// 23:30 on the 14th in UTC-5 is already the 15th in UTC.
	eastern := time.FixedZone("UTC-5", -5*60*60)
	late := time.Date(2026, time.March, 14, 23, 30, 0, 0, eastern)
	assert.Equal(t, "a11y-report-2026-03-15.json", reporter.ReportFileName(late))

	// 00:30 on the 15th in UTC+9 is still the 14th in UTC.
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	early := time.Date(2026, time.March, 15, 0, 30, 0, 0, tokyo)
	assert.Equal(t, "a11y-report-2026-03-14.json", reporter.ReportFileName(early))
}

func TestSaveJSON(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "reports")
	path, err := reporter.SaveJSON(context.Background(), dir, sampleResult(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a11y-report-2026-03-14.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Contains(t, record, "timestamp")
	assert.NotContains(t, record, "generatedAt")
	assert.Contains(t, record, "summary")
	assert.Contains(t, record, "issues")
}

func TestSaveJSON_OverwritesSameDay(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := reporter.SaveJSON(context.Background(), dir, sampleResult(), fixedNow)
	require.NoError(t, err)
	path, err := reporter.SaveJSON(context.Background(), dir, cleanResult(), fixedNow.Add(time.Hour))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total": 0`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveJSON_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := reporter.SaveJSON(ctx, t.TempDir(), sampleResult(), fixedNow)
	require.ErrorIs(t, err, context.Canceled)
}
