package configloader

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/a11ylint/pkg/config"
)

// envVarPrefix is the prefix for all a11ylint environment variables.
const envVarPrefix = "A11YLINT_"

// envVar binds one environment variable to a config field.
type envVar struct {
	help  string
	apply func(cfg *config.Config, value string) error
}

// envVars maps variable names (without prefix) to their bindings.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = map[string]envVar{
	"FORMAT": {
		help: "Output format: text, table, json, sarif, html, or summary",
		apply: func(cfg *config.Config, v string) error {
			cfg.Format = config.OutputFormat(v)
			return nil
		},
	},
	"COLOR": {
		help: "Color mode: auto, always, or never",
		apply: func(cfg *config.Config, v string) error {
			cfg.Color = v
			return nil
		},
	},
	"JOBS": {
		help: "Number of files analyzed concurrently (0 = one per CPU)",
		apply: func(cfg *config.Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid integer %q", v)
			}
			cfg.Jobs = n
			return nil
		},
	},
	"IGNORE": {
		help: "Comma-separated list of ignore patterns",
		apply: func(cfg *config.Config, v string) error {
			cfg.Ignore = parseSliceValue(v)
			return nil
		},
	},
	"EXTENSIONS": {
		help: "Comma-separated list of input file extensions",
		apply: func(cfg *config.Config, v string) error {
			cfg.Extensions = parseSliceValue(v)
			return nil
		},
	},
	"REPORT_DIR": {
		help: "Directory saved JSON reports are written to",
		apply: func(cfg *config.Config, v string) error {
			cfg.ReportDir = v
			return nil
		},
	},
	"STRICT": {
		help: "Fail on warnings: true or false",
		apply: func(cfg *config.Config, v string) error {
			b, err := parseBool(v)
			cfg.Strict = b
			return err
		},
	},
	"MARKDOWN_GFM": {
		help: "Render Markdown inputs with GFM extensions: true or false",
		apply: func(cfg *config.Config, v string) error {
			b, err := parseBool(v)
			cfg.Markdown.GFM = b
			return err
		},
	},
}

// LoadFromEnv applies A11YLINT_* overrides to cfg using getenv for lookups.
// Unset or empty variables leave cfg untouched.
func LoadFromEnv(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}

	for _, suffix := range sortedEnvSuffixes() {
		name := envVarPrefix + suffix
		value := strings.TrimSpace(getenv(name))
		if value == "" {
			continue
		}
		if err := envVars[suffix].apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func parseBool(value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
	}
	return b, nil
}

// parseSliceValue splits a comma-separated value, trimming each element.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func sortedEnvSuffixes() []string {
	suffixes := make([]string, 0, len(envVars))
	for suffix := range envVars {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)
	return suffixes
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envVars))
	for suffix, v := range envVars {
		out[envVarPrefix+suffix] = v.help
	}
	return out
}
