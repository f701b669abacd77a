package rules

import (
	"fmt"

	"github.com/yaklabco/a11ylint/pkg/a11y"
	"github.com/yaklabco/a11ylint/pkg/config"
)

// InteractiveAccessibleNameRule flags interactive elements with nothing a
// screen reader could announce.
type InteractiveAccessibleNameRule struct {
	a11y.BaseRule
}

// NewInteractiveAccessibleNameRule creates a new interactive-accessible-name rule.
func NewInteractiveAccessibleNameRule() *InteractiveAccessibleNameRule {
	return &InteractiveAccessibleNameRule{
		BaseRule: a11y.NewBaseRule(
			"A11Y005",
			"interactive-accessible-name",
			"Interactive elements need text, a placeholder, a title, or ARIA labelling",
			[]string{"aria", "wcag-4.1.2"},
			config.SeverityInfo,
		),
	}
}

// Apply reports interactive elements without aria-label/aria-labelledby whose
// text, placeholder and title are all empty.
func (r *InteractiveAccessibleNameRule) Apply(ctx *a11y.RuleContext) ([]a11y.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var findings []a11y.Finding

	for _, element := range ctx.Doc.Elements("button", "a", "input", "textarea", "select") {
		if ctx.Cancelled() {
			return findings, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if element.HasAttr("aria-label") || element.HasAttr("aria-labelledby") {
			continue
		}

		if element.Text() != "" || element.AttrOr("placeholder", "") != "" || element.AttrOr("title", "") != "" {
			continue
		}

		tag := element.Tag()
		findings = append(findings, a11y.NewFinding(r.ID(), element, "Interactive element may need ARIA attributes").
			WithSeverity(config.SeverityInfo).
			WithDescription("Interactive elements without visible text may need ARIA attributes for screen readers.").
			WithSuggestion("Add aria-label, aria-labelledby, or ensure the element has accessible text content.").
			WithCode(fmt.Sprintf(`<%s aria-label="%s">%s</%s>`, tag, placeholderActionLabel, element.InnerHTML(), tag)).
			Build())
	}

	return findings, nil
}
