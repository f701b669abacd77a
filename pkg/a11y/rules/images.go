package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/a11ylint/pkg/a11y"
	"github.com/yaklabco/a11ylint/pkg/config"
)

// ImageAltRule checks that images carry alternative text.
type ImageAltRule struct {
	a11y.BaseRule
}

// NewImageAltRule creates a new image-alt rule.
func NewImageAltRule() *ImageAltRule {
	return &ImageAltRule{
		BaseRule: a11y.NewBaseRule(
			"A11Y001",
			"image-alt",
			"Images must have alternative text",
			[]string{"images", "wcag-1.1.1"},
			config.SeverityError, config.SeverityWarning,
		),
	}
}

// Apply reports images without alt (error) and with blank alt (warning).
func (r *ImageAltRule) Apply(ctx *a11y.RuleContext) ([]a11y.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var findings []a11y.Finding

	for _, img := range ctx.Doc.Elements("img") {
		if ctx.Cancelled() {
			return findings, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		src := img.AttrOr("src", "")
		alt, hasAlt := img.Attr("alt")

		switch {
		case !hasAlt:
			findings = append(findings, a11y.NewFinding(r.ID(), img, "Missing alt attribute on image").
				WithSeverity(config.SeverityError).
				WithDescription("Images without alt text are not accessible to screen readers.").
				WithSuggestion("Add a descriptive alt attribute to the image.").
				WithCode(imgSnippet(src, placeholderAltText)).
				Build())

		case strings.TrimSpace(alt) == "":
			// alt="" marks a decorative image; whitespace-only alt is a mistake.
			fixedAlt := placeholderAltText
			if alt == "" {
				fixedAlt = ""
			}
			findings = append(findings, a11y.NewFinding(r.ID(), img, "Empty alt attribute on image").
				WithSeverity(config.SeverityWarning).
				WithDescription("Empty alt attributes may indicate decorative images that should be hidden from screen readers.").
				WithSuggestion(`Either add descriptive alt text or use alt="" for decorative images.`).
				WithCode(imgSnippet(src, fixedAlt)).
				Build())
		}
	}

	return findings, nil
}

func imgSnippet(src, alt string) string {
	return fmt.Sprintf(`<img src="%s" alt="%s">`, src, alt)
}
