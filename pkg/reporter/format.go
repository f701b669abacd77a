package reporter

import (
	"fmt"

	"github.com/yaklabco/a11ylint/pkg/config"
)

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText    Format = Format(config.FormatText)
	FormatTable   Format = Format(config.FormatTable)
	FormatJSON    Format = Format(config.FormatJSON)
	FormatSARIF   Format = Format(config.FormatSARIF)
	FormatHTML    Format = Format(config.FormatHTML)
	FormatSummary Format = Format(config.FormatSummary)
)

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(formatStr string) (Format, error) {
	if formatStr == "" {
		return FormatText, nil
	}
	format := Format(formatStr)
	if !format.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: text, table, json, sarif, html, summary", formatStr)
	}
	return format, nil
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	return config.OutputFormat(f).IsValid()
}
