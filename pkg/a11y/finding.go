// Package a11y provides the accessibility rule engine: findings, rules, the
// rule registry, and the engine that runs rules over a parsed HTML tree.
package a11y

import (
	"github.com/yaklabco/a11ylint/pkg/config"
	"github.com/yaklabco/a11ylint/pkg/htmltree"
)

// Finding represents a single accessibility defect found in a document.
type Finding struct {
	// RuleID is the identifier of the rule that produced this finding.
	RuleID string `json:"ruleId,omitempty"`

	// RuleName is the human-readable name of the rule (e.g., "image-alt").
	RuleName string `json:"ruleName,omitempty"`

	// Severity is fixed per rule branch, never derived from the data.
	Severity config.Severity `json:"type"`

	// Title is a short string identifying the defect class.
	Title string `json:"title"`

	// Description explains why the defect matters.
	Description string `json:"description"`

	// Element is the serialized offending markup. Aggregate findings carry
	// a synthesized count message instead.
	Element string `json:"element"`

	// Suggestion is human-readable remediation advice.
	Suggestion string `json:"suggestion"`

	// Code is a markup snippet demonstrating the fix.
	Code string `json:"code"`
}

// FindingBuilder helps construct Finding values.
type FindingBuilder struct {
	finding Finding
}

// NewFinding starts building a finding for the given rule and offending node.
// The node's outer HTML becomes the finding's Element.
func NewFinding(ruleID string, node *htmltree.Node, title string) *FindingBuilder {
	var element string
	if node != nil {
		element = node.OuterHTML()
	}

	return &FindingBuilder{
		finding: Finding{
			RuleID:  ruleID,
			Title:   title,
			Element: element,
		},
	}
}

// WithSeverity sets the severity.
func (b *FindingBuilder) WithSeverity(s config.Severity) *FindingBuilder {
	b.finding.Severity = s
	return b
}

// WithDescription sets the explanatory sentence.
func (b *FindingBuilder) WithDescription(desc string) *FindingBuilder {
	b.finding.Description = desc
	return b
}

// WithElement overrides the offending markup.
func (b *FindingBuilder) WithElement(element string) *FindingBuilder {
	b.finding.Element = element
	return b
}

// WithSuggestion sets the remediation advice.
func (b *FindingBuilder) WithSuggestion(s string) *FindingBuilder {
	b.finding.Suggestion = s
	return b
}

// WithCode sets the fixed markup snippet.
func (b *FindingBuilder) WithCode(code string) *FindingBuilder {
	b.finding.Code = code
	return b
}

// Build returns the constructed Finding.
func (b *FindingBuilder) Build() Finding {
	return b.finding
}
