package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/a11ylint/pkg/a11y"
	"github.com/yaklabco/a11ylint/pkg/config"
	"github.com/yaklabco/a11ylint/pkg/runner"
)

// Analyze builds a Report from a runner result in one pass over the findings.
func Analyze(result *runner.Result, opts Options) *Report {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	report := &Report{
		GeneratedAt: now.UTC(),
		Issues:      make([]Issue, 0),
	}
	if result == nil {
		return report
	}

	agg := newAggregator()

	for _, file := range result.Files {
		displayPath := DisplayPath(file.Path, opts.WorkingDir)

		if file.Error != nil {
			report.Summary.FilesErrored++
			agg.file(displayPath).Error = file.Error.Error()
			continue
		}
		if file.Report == nil {
			continue
		}

		report.Summary.FilesChecked++
		if file.Report.Total() > 0 {
			report.Summary.FilesWithIssues++
		}

		for _, finding := range file.Report.Findings {
			report.Issues = append(report.Issues, Issue{File: displayPath, Finding: finding})
			countSeverity(finding.Severity, &report.Summary.Total,
				&report.Summary.Errors, &report.Summary.Warnings, &report.Summary.Info)

			fa := agg.file(displayPath)
			countSeverity(finding.Severity, &fa.Issues, &fa.Errors, &fa.Warnings, &fa.Info)
			agg.fileRules[displayPath][finding.RuleID] = true

			ra := agg.rule(finding.RuleID, finding.RuleName)
			countSeverity(finding.Severity, &ra.Issues, &ra.Errors, &ra.Warnings, &ra.Info)
			agg.ruleFiles[finding.RuleID][displayPath] = true
		}
	}

	if opts.IncludeByFile {
		report.Files = agg.buildByFile(opts)
	}
	if opts.IncludeByRule {
		report.ByRule = agg.buildByRule(opts)
	}

	return report
}

// FromReport builds a Report for a single analyzed input.
func FromReport(report *a11y.Report, path string, now time.Time) *Report {
	return Analyze(runner.NewResult(runner.FileOutcome{Path: path, Report: report}), Options{Now: now})
}

// DisplayPath returns path relative to workDir when both are known.
func DisplayPath(path, workDir string) string {
	if workDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		return path
	}
	return rel
}

func countSeverity(sev config.Severity, total, errs, warnings, info *int) {
	*total++
	switch sev {
	case config.SeverityError:
		*errs++
	case config.SeverityWarning:
		*warnings++
	case config.SeverityInfo:
		*info++
	}
}

type aggregator struct {
	files     map[string]*FileAnalysis
	rules     map[string]*RuleAnalysis
	fileRules map[string]map[string]bool
	ruleFiles map[string]map[string]bool
}

func newAggregator() *aggregator {
	return &aggregator{
		files:     make(map[string]*FileAnalysis),
		rules:     make(map[string]*RuleAnalysis),
		fileRules: make(map[string]map[string]bool),
		ruleFiles: make(map[string]map[string]bool),
	}
}

func (a *aggregator) file(path string) *FileAnalysis {
	if _, ok := a.files[path]; !ok {
		a.files[path] = &FileAnalysis{Path: path}
		a.fileRules[path] = make(map[string]bool)
	}
	return a.files[path]
}

func (a *aggregator) rule(id, name string) *RuleAnalysis {
	if _, ok := a.rules[id]; !ok {
		a.rules[id] = &RuleAnalysis{RuleID: id, RuleName: name}
		a.ruleFiles[id] = make(map[string]bool)
	}
	return a.rules[id]
}

func (a *aggregator) buildByFile(opts Options) []FileAnalysis {
	var out []FileAnalysis
	for path, fa := range a.files {
		if fa.Issues == 0 && fa.Error == "" {
			continue
		}
		for id := range a.fileRules[path] {
			fa.Rules = append(fa.Rules, id)
		}
		slices.Sort(fa.Rules)
		out = append(out, *fa)
	}
	slices.SortFunc(out, func(left, right FileAnalysis) int {
		return compareCounts(opts,
			counts{left.Issues, left.Errors, left.Warnings},
			counts{right.Issues, right.Errors, right.Warnings},
			left.Path, right.Path)
	})
	return out
}

func (a *aggregator) buildByRule(opts Options) []RuleAnalysis {
	out := make([]RuleAnalysis, 0, len(a.rules))
	for id, ra := range a.rules {
		for path := range a.ruleFiles[id] {
			ra.Files = append(ra.Files, path)
		}
		slices.Sort(ra.Files)
		out = append(out, *ra)
	}
	slices.SortFunc(out, func(left, right RuleAnalysis) int {
		return compareCounts(opts,
			counts{left.Issues, left.Errors, left.Warnings},
			counts{right.Issues, right.Errors, right.Warnings},
			left.RuleID, right.RuleID)
	})
	return out
}

type counts struct {
	issues, errors, warnings int
}

// compareCounts orders two entries per opts. Ties break on key, so output
// never depends on map iteration order.
func compareCounts(opts Options, left, right counts, leftKey, rightKey string) int {
	var result int
	switch opts.SortBy {
	case SortByAlpha:
	case SortBySeverity:
		result = cmp.Compare(right.errors, left.errors)
		if result == 0 {
			result = cmp.Compare(right.warnings, left.warnings)
		}
		if result == 0 {
			result = cmp.Compare(right.issues, left.issues)
		}
	default:
		result = cmp.Compare(left.issues, right.issues)
		if opts.SortDesc {
			result = -result
		}
	}
	if result == 0 {
		result = cmp.Compare(leftKey, rightKey)
	}
	return result
}
