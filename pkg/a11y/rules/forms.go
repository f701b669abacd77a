package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/a11ylint/pkg/a11y"
	"github.com/yaklabco/a11ylint/pkg/config"
	"github.com/yaklabco/a11ylint/pkg/htmltree"
)

// FormControlLabelRule checks that form controls can be labelled.
type FormControlLabelRule struct {
	a11y.BaseRule
}

// NewFormControlLabelRule creates a new form-control-label rule.
func NewFormControlLabelRule() *FormControlLabelRule {
	return &FormControlLabelRule{
		BaseRule: a11y.NewBaseRule(
			"A11Y002",
			"form-control-label",
			"Form controls must be identifiable and have an associated label",
			[]string{"forms", "wcag-1.3.1", "wcag-4.1.2"},
			config.SeverityError, config.SeverityWarning,
		),
	}
}

// Apply reports controls with neither id nor name (error) and controls whose
// id no label points at (warning).
func (r *FormControlLabelRule) Apply(ctx *a11y.RuleContext) ([]a11y.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	labelled := labelTargets(ctx.Doc)

	var findings []a11y.Finding

	for _, control := range ctx.Doc.Elements("input", "textarea", "select") {
		if ctx.Cancelled() {
			return findings, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		id, hasID := nonEmptyAttr(control, "id")
		name, hasName := nonEmptyAttr(control, "name")
		controlType := domControlType(control)

		switch {
		case !hasID && !hasName:
			placeholder := control.AttrOr("placeholder", "")
			findings = append(findings, a11y.NewFinding(r.ID(), control, "Form input missing id and name attributes").
				WithSeverity(config.SeverityError).
				WithDescription("Form inputs should have unique identifiers for proper labeling and accessibility.").
				WithSuggestion("Add both id and name attributes to the input element.").
				WithCode(fmt.Sprintf(`<input type="%s" id="%s" name="%s" placeholder="%s">`,
					controlType, placeholderFieldID, placeholderFieldName, placeholder)).
				Build())

		case hasID && !labelled[id]:
			if !hasName {
				name = id
			}
			findings = append(findings, a11y.NewFinding(r.ID(), control, "Form input missing associated label").
				WithSeverity(config.SeverityWarning).
				WithDescription("Form inputs should have associated labels for better accessibility.").
				WithSuggestion("Add a label element with the for attribute matching the input id.").
				WithCode(fmt.Sprintf("<label for=\"%s\">%s</label>\n<input type=\"%s\" id=\"%s\" name=\"%s\">",
					id, placeholderFieldLabel, controlType, id, name)).
				Build())
		}
	}

	return findings, nil
}

// labelTargets collects the exact for= values of every label in the document.
func labelTargets(doc *htmltree.Document) map[string]bool {
	targets := make(map[string]bool)
	for _, label := range doc.Elements("label") {
		if target, ok := label.Attr("for"); ok {
			targets[target] = true
		}
	}
	return targets
}

// nonEmptyAttr returns the attribute value and whether it is present and non-empty.
// An empty id or name identifies nothing, so it counts as missing.
func nonEmptyAttr(node *htmltree.Node, name string) (string, bool) {
	value, ok := node.Attr(name)
	return value, ok && value != ""
}

// knownInputTypes are the input type keywords a browser reports verbatim.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownInputTypes = map[string]struct{}{
	"button": {}, "checkbox": {}, "color": {}, "date": {}, "datetime-local": {},
	"email": {}, "file": {}, "hidden": {}, "image": {}, "month": {}, "number": {},
	"password": {}, "radio": {}, "range": {}, "reset": {}, "search": {}, "submit": {},
	"tel": {}, "text": {}, "time": {}, "url": {}, "week": {},
}

// domControlType returns the control's type as the DOM reports it:
// inputs default to "text", textareas are "textarea", and selects are
// "select-one" or "select-multiple".
func domControlType(control *htmltree.Node) string {
	switch control.Tag() {
	case "textarea":
		return "textarea"
	case "select":
		if control.HasAttr("multiple") {
			return "select-multiple"
		}
		return "select-one"
	default:
		inputType := strings.ToLower(strings.TrimSpace(control.AttrOr("type", "")))
		if _, ok := knownInputTypes[inputType]; ok {
			return inputType
		}
		return "text"
	}
}
