package analysis

import "time"

// SortField specifies how to sort the per-file and per-rule views.
type SortField string

const (
	// SortByCount sorts by issue count.
	SortByCount SortField = "count"
	// SortByAlpha sorts by path or rule ID.
	SortByAlpha SortField = "alpha"
	// SortBySeverity sorts errors first, then warnings.
	SortBySeverity SortField = "severity"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortBySeverity:
		return true
	default:
		return false
	}
}

// Options configures Analyze.
type Options struct {
	// IncludeByFile fills Report.Files.
	IncludeByFile bool

	// IncludeByRule fills Report.ByRule.
	IncludeByRule bool

	// SortBy orders Files and ByRule.
	SortBy SortField

	// SortDesc sorts counts highest first.
	SortDesc bool

	// WorkingDir makes paths relative when set.
	WorkingDir string

	// Now stamps GeneratedAt. Zero means time.Now().
	Now time.Time
}

// DefaultOptions returns Options with every view enabled.
func DefaultOptions() Options {
	return Options{
		IncludeByFile: true,
		IncludeByRule: true,
		SortBy:        SortByCount,
		SortDesc:      true,
	}
}
