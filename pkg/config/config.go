// Package config defines core configuration types for a11ylint.
// These types are pure data structures; loading and merging live in internal/configloader.
package config

// Severity represents the severity level of an accessibility finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is one of the known levels.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// OutputFormat specifies the output format for findings.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatHTML    OutputFormat = "html"
	FormatSummary OutputFormat = "summary"
)

// OutputFormats lists every supported output format.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatText, FormatTable, FormatJSON, FormatSARIF, FormatHTML, FormatSummary}
}

// IsValid returns true if the format is supported.
func (f OutputFormat) IsValid() bool {
	for _, known := range OutputFormats() {
		if f == known {
			return true
		}
	}
	return false
}

// Color modes accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// MarkdownConfig controls how Markdown inputs are rendered before analysis.
type MarkdownConfig struct {
	// GFM enables GitHub Flavored Markdown extensions (tables, autolinks, ...).
	GFM bool `yaml:"gfm"`
}

// Config is the root configuration structure for a11ylint.
//
// The rule set itself is fixed; configuration only covers input discovery
// and output.
type Config struct {
	// Format specifies the output format.
	Format OutputFormat `yaml:"format,omitempty"`

	// Color controls colorized output: auto, always, never.
	Color string `yaml:"color,omitempty"`

	// Jobs is the number of files analyzed concurrently (0 = one per CPU).
	Jobs int `yaml:"jobs,omitempty"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	// Extensions lists file extensions (with leading dot) treated as inputs.
	Extensions []string `yaml:"extensions,omitempty"`

	// ReportDir is where saved JSON reports are written.
	ReportDir string `yaml:"report_dir,omitempty"`

	// Strict makes warnings fail the run.
	Strict bool `yaml:"strict,omitempty"`

	// Markdown configures Markdown rendering.
	Markdown MarkdownConfig `yaml:"markdown,omitempty"`

	// CLI-level options (not persisted to config files).

	// Save writes a JSON report to ReportDir after the run.
	Save bool `yaml:"-"`

	// Watch re-runs analysis when inputs change.
	Watch bool `yaml:"-"`
}

// DefaultExtensions returns the file extensions analyzed by default.
func DefaultExtensions() []string {
	return []string{".html", ".htm", ".md", ".markdown"}
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Format:     FormatText,
		Color:      ColorAuto,
		Jobs:       0,
		Extensions: DefaultExtensions(),
		ReportDir:  ".",
	}
}
