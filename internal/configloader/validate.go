package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/a11ylint/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "extensions[1]").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// knownColors lists valid color modes.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownColors = map[string]bool{
	config.ColorAuto:   true,
	config.ColorAlways: true,
	config.ColorNever:  true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: %s", cfg.Format, formatList()),
		})
	}

	if cfg.Color != "" && !knownColors[cfg.Color] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means one per CPU)",
		})
	}

	validateExtensions(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

func validateExtensions(cfg *config.Config, result *ValidationResult) {
	if cfg.Extensions != nil && len(cfg.Extensions) == 0 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "extensions",
			Message: "empty extension list; the default extensions are used",
		})
	}
	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("extensions[%d]", i),
				Value:   ext,
				Message: fmt.Sprintf("extension %q must start with a dot (e.g. \".html\")", ext),
			})
		}
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

func formatList() string {
	formats := config.OutputFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
