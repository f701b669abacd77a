package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/a11ylint/pkg/a11y"
	"github.com/yaklabco/a11ylint/pkg/config"
)

// DescriptiveButtonTextRule flags buttons whose label says nothing about the action.
type DescriptiveButtonTextRule struct {
	a11y.BaseRule
}

// NewDescriptiveButtonTextRule creates a new descriptive-button-text rule.
func NewDescriptiveButtonTextRule() *DescriptiveButtonTextRule {
	return &DescriptiveButtonTextRule{
		BaseRule: a11y.NewBaseRule(
			"A11Y004",
			"descriptive-button-text",
			"Button text should describe the action it performs",
			[]string{"buttons", "wcag-2.4.6"},
			config.SeverityWarning,
		),
	}
}

// Apply reports buttons whose whole label is a generic phrase.
func (r *DescriptiveButtonTextRule) Apply(ctx *a11y.RuleContext) ([]a11y.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var findings []a11y.Finding

	for _, button := range ctx.Doc.Elements("button") {
		if ctx.Cancelled() {
			return findings, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		text := strings.ToLower(button.Text())
		if !isNonDescriptive(text) {
			continue
		}

		findings = append(findings, a11y.NewFinding(r.ID(), button, "Non-descriptive button text").
			WithSeverity(config.SeverityWarning).
			WithDescription("Button text should clearly describe the action it performs.").
			WithSuggestion("Use more descriptive text that explains what the button does.").
			WithCode("<button>" + betterButtonText(text) + "</button>").
			Build())
	}

	return findings, nil
}
