package a11y

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/a11ylint/pkg/config"
)

func TestNewReport_Empty(t *testing.T) {
	report := NewReport(nil)

	assert.NotNil(t, report.Findings)
	assert.Empty(t, report.Findings)
	assert.Zero(t, report.Errors)
	assert.Zero(t, report.Warnings)
	assert.Zero(t, report.Info)
	assert.True(t, report.Clean())
	assert.Zero(t, report.Total())
}

func TestNewReport_PartitionKeepsOrder(t *testing.T) {
	findings := []Finding{
		{Title: "a", Severity: config.SeverityInfo},
		{Title: "b", Severity: config.SeverityError},
		{Title: "c", Severity: config.SeverityWarning},
		{Title: "d", Severity: config.SeverityError},
	}

	report := NewReport(findings)

	assert.Equal(t, 2, report.Errors)
	assert.Equal(t, 1, report.Warnings)
	assert.Equal(t, 1, report.Info)
	assert.Equal(t, 4, report.Total())
	assert.False(t, report.Clean())

	assert.Equal(t, "a", report.Findings[0].Title, "aggregation never re-sorts by severity")
	assert.Equal(t, "d", report.Findings[3].Title)

	assert.Equal(t, 2, report.Count(config.SeverityError))
	assert.Equal(t, 1, report.Count(config.SeverityWarning))
	assert.Equal(t, 1, report.Count(config.SeverityInfo))
	assert.Zero(t, report.Count("fatal"))
}

func TestReport_NilSafe(t *testing.T) {
	var report *Report
	assert.Zero(t, report.Total())
	assert.True(t, report.Clean())
	assert.Zero(t, report.Count(config.SeverityError))
}

func TestFindingBuilder(t *testing.T) {
	finding := NewFinding("X1", nil, "Title").
		WithSeverity(config.SeverityWarning).
		WithDescription("desc").
		WithElement("3 things").
		WithSuggestion("fix it").
		WithCode("<p>fixed</p>").
		Build()

	assert.Equal(t, Finding{
		RuleID:      "X1",
		Severity:    config.SeverityWarning,
		Title:       "Title",
		Description: "desc",
		Element:     "3 things",
		Suggestion:  "fix it",
		Code:        "<p>fixed</p>",
	}, finding)
}
