package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/a11ylint/pkg/a11y"
	"github.com/yaklabco/a11ylint/pkg/config"
)

// Icon keys identify the symbol shown next to a finding.
const (
	IconError   = "exclamation-circle"
	IconWarning = "exclamation-triangle"
	IconInfo    = "info-circle"
)

// IconKey returns the icon key for a severity.
func IconKey(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return IconError
	case config.SeverityWarning:
		return IconWarning
	default:
		return IconInfo
	}
}

// IconGlyph returns the terminal symbol drawn for an icon key.
func IconGlyph(key string) string {
	switch key {
	case IconError:
		return "✖"
	case IconWarning:
		return "⚠"
	default:
		return "ℹ"
	}
}

// FormatSeverity returns a styled severity string with its glyph.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	if !sev.IsValid() {
		return string(sev)
	}
	return s.SeverityStyle(sev).Render(IconGlyph(IconKey(sev)) + " " + string(sev))
}

// FormatFinding renders a finding as a card: a header line with severity,
// title and rule, then the description, the offending markup, the
// suggestion and the fixed markup.
func (s *Styles) FormatFinding(f *a11y.Finding) string {
	var body strings.Builder

	header := s.FormatSeverity(f.Severity) + "  " + s.Title.Render(f.Title)
	if f.RuleID != "" {
		rule := f.RuleID
		if f.RuleName != "" {
			rule += "/" + f.RuleName
		}
		header += "  " + s.RuleID.Render("("+rule+")")
	}
	body.WriteString(header + "\n")

	if f.Description != "" {
		body.WriteString(s.Description.Render(f.Description) + "\n")
	}
	writeBlock(&body, s.Label.Render("Element:"), f.Element, s.Element)
	if f.Suggestion != "" {
		body.WriteString(s.Label.Render("Suggestion:") + " " + s.Suggestion.Render(f.Suggestion) + "\n")
	}
	writeBlock(&body, s.Label.Render("Fix:"), f.Code, s.Code)

	card := strings.TrimRight(body.String(), "\n")
	if s.bordered {
		card = s.Card.Render(card)
	}
	return card + "\n"
}

// writeBlock writes a labelled value, moving multi-line values below the
// label. Lines are styled one at a time so they keep their own widths.
func writeBlock(b *strings.Builder, label, value string, style lipgloss.Style) {
	if value == "" {
		return
	}
	if !strings.Contains(value, "\n") {
		b.WriteString(label + " " + style.Render(value) + "\n")
		return
	}
	b.WriteString(label + "\n")
	for _, line := range strings.Split(value, "\n") {
		b.WriteString("  " + style.Render(line) + "\n")
	}
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		word := "issues"
		if issueCount == 1 {
			word = "issue"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", issueCount, word))
	}
	return header
}
