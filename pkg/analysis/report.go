// Package analysis turns runner results into the report views shared by the
// renderers and the saved JSON record.
package analysis

import (
	"time"

	"github.com/yaklabco/a11ylint/pkg/a11y"
)

// Report is the pre-computed view of a run. Its JSON encoding is the saved
// report record.
type Report struct {
	// GeneratedAt is when the report was produced, in UTC.
	GeneratedAt time.Time `json:"timestamp"`

	// Summary holds finding counts.
	Summary Summary `json:"summary"`

	// Issues lists every finding in file order, then rule order.
	Issues []Issue `json:"issues"`

	// Files lists per-file counts for files with findings or errors.
	Files []FileAnalysis `json:"files,omitempty"`

	// ByRule lists per-rule counts for rules that fired.
	ByRule []RuleAnalysis `json:"byRule,omitempty"`
}

// Summary holds finding counts for a report.
type Summary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`

	FilesChecked    int `json:"filesChecked,omitempty"`
	FilesWithIssues int `json:"filesWithIssues,omitempty"`
	FilesErrored    int `json:"filesErrored,omitempty"`
}

// HasIssues returns true if there are any findings.
func (s Summary) HasIssues() bool {
	return s.Total > 0
}

// Issue is a finding with the file it came from.
type Issue struct {
	File string `json:"file,omitempty"`
	a11y.Finding
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path     string   `json:"path"`
	Issues   int      `json:"issues"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Info     int      `json:"info"`
	Rules    []string `json:"rules,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// RuleAnalysis contains aggregated data for a single rule.
type RuleAnalysis struct {
	RuleID   string   `json:"ruleId"`
	RuleName string   `json:"ruleName"`
	Issues   int      `json:"issues"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Info     int      `json:"info"`
	Files    []string `json:"files,omitempty"`
}
