package runner

import (
	"github.com/yaklabco/a11ylint/pkg/a11y"
	"github.com/yaklabco/a11ylint/pkg/config"
	"github.com/yaklabco/a11ylint/pkg/source"
)

// FileOutcome is the analysis of one input.
type FileOutcome struct {
	// Path is the file path, or source.StdinPath / source.SamplePath.
	Path string

	// Kind is the markup language the input was written in.
	Kind source.Kind

	// Report holds the findings. Nil when Error is set or the file was skipped.
	Report *a11y.Report

	// Skipped is set for inputs with nothing to analyze.
	Skipped bool

	// Error is set if the input could not be analyzed.
	Error error
}

func (o FileOutcome) findingCount() int {
	if o.Report == nil {
		return 0
	}
	return len(o.Report.Findings)
}

// Stats aggregates a run.
type Stats struct {
	FilesDiscovered int
	FilesAnalyzed   int
	FilesSkipped    int
	FilesErrored    int
	FilesWithIssues int

	FindingsTotal      int
	FindingsBySeverity map[config.Severity]int
}

// Result is the outcome of a run.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome

	Stats Stats
}

// NewResult aggregates outcomes in the order given.
func NewResult(outcomes ...FileOutcome) *Result {
	result := &Result{
		Files: make([]FileOutcome, 0, len(outcomes)),
		Stats: Stats{FindingsBySeverity: make(map[config.Severity]int)},
	}
	result.Stats.FilesDiscovered = len(outcomes)
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result
}

// HasErrors reports whether any error-severity finding occurred.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FindingsBySeverity[config.SeverityError] > 0
}

// HasWarnings reports whether any warning-severity finding occurred.
func (r *Result) HasWarnings() bool {
	return r != nil && r.Stats.FindingsBySeverity[config.SeverityWarning] > 0
}

// HasIssues reports whether any finding occurred.
func (r *Result) HasIssues() bool {
	return r != nil && r.Stats.FindingsTotal > 0
}

// Errs returns the per-file errors in file order.
func (r *Result) Errs() []error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, f := range r.Files {
		if f.Error != nil {
			errs = append(errs, f.Error)
		}
	}
	return errs
}

// Merged returns one report holding every file's findings in file order.
func (r *Result) Merged() *a11y.Report {
	var findings []a11y.Finding
	if r != nil {
		for _, f := range r.Files {
			if f.Report != nil {
				findings = append(findings, f.Report.Findings...)
			}
		}
	}
	return a11y.NewReport(findings)
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
		return
	case outcome.Skipped:
		r.Stats.FilesSkipped++
		return
	case outcome.Report == nil:
		return
	}

	r.Stats.FilesAnalyzed++

	report := outcome.Report
	if report.Total() > 0 {
		r.Stats.FilesWithIssues++
	}
	r.Stats.FindingsTotal += report.Total()
	r.Stats.FindingsBySeverity[config.SeverityError] += report.Errors
	r.Stats.FindingsBySeverity[config.SeverityWarning] += report.Warnings
	r.Stats.FindingsBySeverity[config.SeverityInfo] += report.Info
}
