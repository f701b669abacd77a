package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/a11ylint/pkg/a11y"
	"github.com/yaklabco/a11ylint/pkg/config"
	"github.com/yaklabco/a11ylint/pkg/htmltree"
)

// InlineColorContrastRule flags documents that set colors inline, as a prompt
// to run a real contrast check. No contrast ratio is computed here.
type InlineColorContrastRule struct {
	a11y.BaseRule
}

// NewInlineColorContrastRule creates a new inline-color-contrast rule.
func NewInlineColorContrastRule() *InlineColorContrastRule {
	return &InlineColorContrastRule{
		BaseRule: a11y.NewBaseRule(
			"A11Y006",
			"inline-color-contrast",
			"Inline color styles should be checked for sufficient contrast",
			[]string{"color", "wcag-1.4.3"},
			config.SeverityInfo,
		),
	}
}

// Apply emits at most one finding for the whole document, carrying the
// number of elements whose style attribute mentions color or background.
func (r *InlineColorContrastRule) Apply(ctx *a11y.RuleContext) ([]a11y.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	count := ctx.Doc.Count(hasColorStyle)
	if count == 0 {
		return nil, nil
	}

	finding := a11y.NewFinding(r.ID(), nil, "Color contrast check needed").
		WithSeverity(config.SeverityInfo).
		WithDescription("Elements with inline color styles should be checked for sufficient color contrast.").
		WithElement(fmt.Sprintf("%d elements with color styles found", count)).
		WithSuggestion("Use a color contrast checker to ensure text meets WCAG guidelines " +
			"(4.5:1 for normal text, 3:1 for large text).").
		WithCode("<!-- Consider using CSS custom properties for consistent, accessible colors -->").
		Build()

	return []a11y.Finding{finding}, nil
}

// hasColorStyle is a plain substring match on the style attribute value,
// not a CSS parse.
func hasColorStyle(node *htmltree.Node) bool {
	style, ok := node.Attr("style")
	if !ok {
		return false
	}
	return strings.Contains(style, "color") || strings.Contains(style, "background")
}
