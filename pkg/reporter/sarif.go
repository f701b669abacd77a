package reporter

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/yaklabco/a11ylint/pkg/a11y"
	"github.com/yaklabco/a11ylint/pkg/config"
	"github.com/yaklabco/a11ylint/pkg/runner"
)

const (
	sarifVersion   = "2.1.0"
	sarifSchemaURI = "https://json.schemastore.org/sarif-2.1.0.json"
	toolInfoURI    = "https://github.com/yaklabco/a11ylint"
)

// SARIF 2.1.0 objects, named after the schema's definitions. Only the
// properties a11ylint fills in are modelled.
type (
	// SARIFLog is the top-level sarifLog object.
	SARIFLog struct {
		Schema  string     `json:"$schema"`
		Version string     `json:"version"`
		Runs    []SARIFRun `json:"runs"`
	}

	SARIFRun struct {
		Tool        SARIFTool         `json:"tool"`
		Invocations []SARIFInvocation `json:"invocations,omitempty"`
		Results     []SARIFResult     `json:"results"`
	}

	SARIFTool struct {
		Driver SARIFToolComponent `json:"driver"`
	}

	SARIFToolComponent struct {
		Name           string                     `json:"name"`
		Version        string                     `json:"version,omitempty"`
		InformationURI string                     `json:"informationUri"`
		Rules          []SARIFReportingDescriptor `json:"rules"`
	}

	// SARIFReportingDescriptor describes one rule.
	SARIFReportingDescriptor struct {
		ID                   string                       `json:"id"`
		Name                 string                       `json:"name,omitempty"`
		ShortDescription     SARIFText                    `json:"shortDescription"`
		DefaultConfiguration *SARIFReportingConfiguration `json:"defaultConfiguration,omitempty"`
		Properties           map[string]any               `json:"properties,omitempty"`
	}

	SARIFReportingConfiguration struct {
		Level string `json:"level"`
	}

	// SARIFInvocation records files that could not be analyzed.
	SARIFInvocation struct {
		ExecutionSuccessful        bool                `json:"executionSuccessful"`
		ToolExecutionNotifications []SARIFNotification `json:"toolExecutionNotifications,omitempty"`
	}

	SARIFNotification struct {
		Level     string          `json:"level"`
		Message   SARIFText       `json:"message"`
		Locations []SARIFLocation `json:"locations,omitempty"`
	}

	SARIFResult struct {
		RuleID     string          `json:"ruleId"`
		RuleIndex  int             `json:"ruleIndex"`
		Level      string          `json:"level"`
		Message    SARIFText       `json:"message"`
		Locations  []SARIFLocation `json:"locations"`
		Properties map[string]any  `json:"properties,omitempty"`
	}

	SARIFLocation struct {
		PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
	}

	SARIFPhysicalLocation struct {
		ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
		Region           *SARIFRegion          `json:"region,omitempty"`
	}

	SARIFArtifactLocation struct {
		URI string `json:"uri"`
	}

	// SARIFRegion carries the offending markup as a snippet. Findings have
	// no line information, so no line or column is set.
	SARIFRegion struct {
		Snippet SARIFText `json:"snippet"`
	}

	// SARIFText is both message and multiformatMessageString.
	SARIFText struct {
		Text string `json:"text"`
	}
)

// SARIFReporter writes a SARIF log for code-scanning integrations.
type SARIFReporter struct {
	opts Options
	out  io.Writer
}

// NewSARIFReporter creates a SARIF reporter writing to opts.Writer.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{opts: opts, out: opts.Writer}
}

// Report writes the log and returns the number of results in it.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	doc := r.build(withDisplayPaths(result, r.opts.WorkingDir))
	if err := encodeJSON(r.out, doc, !r.opts.Compact); err != nil {
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}
	return len(doc.Runs[0].Results), nil
}

func (r *SARIFReporter) build(result *runner.Result) *SARIFLog {
	rules, index := sarifRules(a11y.DefaultRegistry.Rules())

	run := SARIFRun{
		Tool: SARIFTool{Driver: SARIFToolComponent{
			Name:           "a11ylint",
			Version:        r.opts.Version,
			InformationURI: toolInfoURI,
			Rules:          rules,
		}},
		Results: []SARIFResult{},
	}

	if result != nil {
		invocation := SARIFInvocation{ExecutionSuccessful: true}
		for _, file := range result.Files {
			if file.Error != nil {
				invocation.ExecutionSuccessful = false
				invocation.ToolExecutionNotifications = append(invocation.ToolExecutionNotifications,
					SARIFNotification{
						Level:     sarifLevel[config.SeverityError],
						Message:   SARIFText{Text: file.Error.Error()},
						Locations: []SARIFLocation{artifact(file.Path, "")},
					})
				continue
			}
			if file.Report == nil {
				continue
			}
			for _, finding := range file.Report.Findings {
				run.Results = append(run.Results, sarifResult(file.Path, finding, index))
			}
		}
		run.Invocations = []SARIFInvocation{invocation}
	}

	return &SARIFLog{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs:    []SARIFRun{run},
	}
}

// sarifRules describes rules in registry order and indexes them by ID.
func sarifRules(rules []a11y.Rule) ([]SARIFReportingDescriptor, map[string]int) {
	descriptors := make([]SARIFReportingDescriptor, 0, len(rules))
	index := make(map[string]int, len(rules))
	for i, rule := range rules {
		desc := SARIFReportingDescriptor{
			ID:               rule.ID(),
			Name:             rule.Name(),
			ShortDescription: SARIFText{Text: rule.Description()},
		}
		// The first severity a rule declares is its most serious one.
		if severities := rule.Severities(); len(severities) > 0 {
			desc.DefaultConfiguration = &SARIFReportingConfiguration{Level: levelFor(severities[0])}
		}
		if tags := rule.Tags(); len(tags) > 0 {
			desc.Properties = map[string]any{"tags": tags}
		}
		descriptors = append(descriptors, desc)
		index[rule.ID()] = i
	}
	return descriptors, index
}

func sarifResult(path string, finding a11y.Finding, index map[string]int) SARIFResult {
	message := finding.Title
	if finding.Description != "" {
		message += ": " + finding.Description
	}

	res := SARIFResult{
		RuleID:    finding.RuleID,
		RuleIndex: -1,
		Level:     levelFor(finding.Severity),
		Message:   SARIFText{Text: message},
		Locations: []SARIFLocation{artifact(path, finding.Element)},
	}
	if i, ok := index[finding.RuleID]; ok {
		res.RuleIndex = i
	}
	if finding.Suggestion != "" || finding.Code != "" {
		res.Properties = map[string]any{
			"suggestion": finding.Suggestion,
			"fix":        finding.Code,
		}
	}
	return res
}

func artifact(path, snippet string) SARIFLocation {
	loc := SARIFLocation{PhysicalLocation: SARIFPhysicalLocation{
		ArtifactLocation: SARIFArtifactLocation{URI: filepath.ToSlash(path)},
	}}
	if snippet != "" {
		loc.PhysicalLocation.Region = &SARIFRegion{Snippet: SARIFText{Text: snippet}}
	}
	return loc
}

var sarifLevel = map[config.Severity]string{
	config.SeverityError:   "error",
	config.SeverityWarning: "warning",
	config.SeverityInfo:    "note",
}

func levelFor(severity config.Severity) string {
	if level, ok := sarifLevel[severity]; ok {
		return level
	}
	return "warning"
}
