package a11y

import "github.com/yaklabco/a11ylint/pkg/config"

// Report is the result of one analysis run: the ordered findings plus
// counts derived from them. A Report is never modified after it is returned.
type Report struct {
	// Findings are in rule order, then document order within a rule.
	Findings []Finding

	// Errors, Warnings and Info partition Findings by severity.
	Errors   int
	Warnings int
	Info     int

	// RuleErrors records rules that failed internally, keyed by rule ID.
	// Nil when every rule succeeded.
	RuleErrors map[string]error
}

// NewReport partitions findings by severity. Order is preserved as given.
func NewReport(findings []Finding) *Report {
	report := &Report{Findings: findings}
	if report.Findings == nil {
		report.Findings = []Finding{}
	}

	for _, f := range report.Findings {
		switch f.Severity {
		case config.SeverityError:
			report.Errors++
		case config.SeverityWarning:
			report.Warnings++
		case config.SeverityInfo:
			report.Info++
		}
	}

	return report
}

// Total returns the number of findings.
func (r *Report) Total() int {
	if r == nil {
		return 0
	}
	return len(r.Findings)
}

// Clean reports whether no findings were produced.
func (r *Report) Clean() bool {
	return r.Total() == 0
}

// Count returns the number of findings with the given severity.
func (r *Report) Count(sev config.Severity) int {
	if r == nil {
		return 0
	}
	switch sev {
	case config.SeverityError:
		return r.Errors
	case config.SeverityWarning:
		return r.Warnings
	case config.SeverityInfo:
		return r.Info
	default:
		return 0
	}
}
