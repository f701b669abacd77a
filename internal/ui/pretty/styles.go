// Package pretty renders findings and summaries for the terminal with
// lipgloss.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/a11ylint/pkg/config"
)

// palette names the ANSI colors the styles are built from.
type palette struct {
	bad, caution, notice, good, muted, strong lipgloss.Color
}

var ansiPalette = palette{
	bad:     lipgloss.Color("9"),
	caution: lipgloss.Color("11"),
	notice:  lipgloss.Color("12"),
	good:    lipgloss.Color("10"),
	muted:   lipgloss.Color("8"),
	strong:  lipgloss.Color("7"),
}

// Styles holds the lipgloss styles used by cards, tables and summaries.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Card        lipgloss.Style
	FilePath    lipgloss.Style
	RuleID      lipgloss.Style
	Title       lipgloss.Style
	Description lipgloss.Style
	Label       lipgloss.Style
	Element     lipgloss.Style
	Suggestion  lipgloss.Style
	Code        lipgloss.Style

	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	TableHeader    lipgloss.Style
	TableErrorRow  lipgloss.Style
	TableWarnRow   lipgloss.Style
	TableInfoRow   lipgloss.Style
	TableSeparator lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style

	// bordered draws finding cards inside Card's border.
	bordered bool
}

// NewStyles returns colored styles, or unformatted ones when colorEnabled
// is false.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return plainStyles()
	}
	return styledFrom(ansiPalette)
}

func styledFrom(p palette) *Styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	bold := lipgloss.NewStyle().Bold(true)

	return &Styles{
		Error:   fg(p.bad).Bold(true),
		Warning: fg(p.caution).Bold(true),
		Info:    fg(p.notice).Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.muted).
			Padding(0, 1),
		FilePath:    bold,
		RuleID:      fg(p.muted),
		Title:       bold,
		Description: lipgloss.NewStyle(),
		Label:       fg(p.muted),
		Element:     fg(p.bad),
		Suggestion:  fg(p.good).Italic(true),
		Code:        fg(p.good),

		SummaryTitle: bold,
		SummaryValue: lipgloss.NewStyle(),
		Success:      fg(p.good).Bold(true),
		Failure:      fg(p.bad).Bold(true),

		TableHeader:    fg(p.strong).Bold(true),
		TableErrorRow:  fg(p.bad),
		TableWarnRow:   fg(p.caution),
		TableInfoRow:   fg(p.notice),
		TableSeparator: fg(p.muted),

		Dim:  fg(p.muted),
		Bold: bold,

		bordered: true,
	}
}

func plainStyles() *Styles {
	s := lipgloss.NewStyle()
	return &Styles{
		Error: s, Warning: s, Info: s,
		Card: s, FilePath: s, RuleID: s, Title: s, Description: s,
		Label: s, Element: s, Suggestion: s, Code: s,
		SummaryTitle: s, SummaryValue: s, Success: s, Failure: s,
		TableHeader: s, TableErrorRow: s, TableWarnRow: s, TableInfoRow: s, TableSeparator: s,
		Dim: s, Bold: s,
	}
}

// SeverityStyle returns the style a severity label is drawn in.
func (s *Styles) SeverityStyle(sev config.Severity) lipgloss.Style {
	switch sev {
	case config.SeverityError:
		return s.Error
	case config.SeverityWarning:
		return s.Warning
	default:
		return s.Info
	}
}

// IsColorEnabled resolves a color mode ("auto", "always", "never") for w.
// Auto enables color only on a terminal with NO_COLOR unset.
func IsColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
