package rules

import (
	"fmt"

	"github.com/yaklabco/a11ylint/pkg/a11y"
	"github.com/yaklabco/a11ylint/pkg/config"
)

// HeadingIncrementRule checks that heading levels only increment by one.
type HeadingIncrementRule struct {
	a11y.BaseRule
}

// NewHeadingIncrementRule creates a new heading-increment rule.
func NewHeadingIncrementRule() *HeadingIncrementRule {
	return &HeadingIncrementRule{
		BaseRule: a11y.NewBaseRule(
			"A11Y003",
			"heading-increment",
			"Heading levels should only increment by one level at a time",
			[]string{"headings", "wcag-1.3.1"},
			config.SeverityWarning,
		),
	}
}

// Apply reports each heading that is more than one level deeper than the
// heading before it.
func (r *HeadingIncrementRule) Apply(ctx *a11y.RuleContext) ([]a11y.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var findings []a11y.Finding
	previousLevel := 0

	for _, heading := range ctx.Doc.Elements("h1", "h2", "h3", "h4", "h5", "h6") {
		if ctx.Cancelled() {
			return findings, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		currentLevel := headingLevel(heading.Tag())

		if currentLevel-previousLevel > 1 {
			outer := heading.OuterHTML()
			findings = append(findings, a11y.NewFinding(r.ID(), heading, "Skipped heading level").
				WithSeverity(config.SeverityWarning).
				WithDescription(fmt.Sprintf(
					"Heading hierarchy jumps from h%d to h%d, which can confuse screen reader users.",
					previousLevel, currentLevel)).
				WithSuggestion("Use heading levels in sequential order (h1 → h2 → h3, etc.).").
				WithCode(fmt.Sprintf("<!-- Add missing h%d heading before this -->\n%s", previousLevel+1, outer)).
				Build())
		}

		// Track the last heading seen, whether or not it was reported.
		previousLevel = currentLevel
	}

	return findings, nil
}

// headingLevel extracts the level from an "h1".."h6" tag name.
func headingLevel(tag string) int {
	if len(tag) != 2 || tag[0] != 'h' || tag[1] < '1' || tag[1] > '6' {
		return 0
	}
	return int(tag[1] - '0')
}
