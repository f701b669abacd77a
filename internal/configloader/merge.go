package configloader

import (
	"slices"

	"github.com/yaklabco/a11ylint/pkg/config"
)

// merge combines two configurations, with override taking precedence:
//   - scalars in override win when non-zero
//   - booleans in override win only when true, so a file cannot unset a
//     flag enabled by a lower layer
//   - slices in override replace base entirely when non-nil, so an
//     explicit empty list survives as empty rather than unset
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.ReportDir != "" {
		result.ReportDir = override.ReportDir
	}

	if override.Strict {
		result.Strict = true
	}
	if override.Markdown.GFM {
		result.Markdown.GFM = true
	}
	if override.Save {
		result.Save = true
	}
	if override.Watch {
		result.Watch = true
	}

	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}
	if override.Extensions != nil {
		result.Extensions = slices.Clone(override.Extensions)
	}

	return result
}

// MergeAll merges configurations in order, later ones taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	var result *config.Config
	for _, cfg := range configs {
		result = merge(result, cfg)
	}
	return result
}
