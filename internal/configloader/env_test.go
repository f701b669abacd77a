package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/a11ylint/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"A11YLINT_FORMAT":       "sarif",
		"A11YLINT_COLOR":        "never",
		"A11YLINT_JOBS":         "8",
		"A11YLINT_IGNORE":       " dist/** , ,node_modules/**",
		"A11YLINT_EXTENSIONS":   ".html,.xhtml",
		"A11YLINT_REPORT_DIR":   "reports",
		"A11YLINT_STRICT":       "1",
		"A11YLINT_MARKDOWN_GFM": "true",
	}

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg, func(k string) string { return env[k] }))

	assert.Equal(t, config.FormatSARIF, cfg.Format)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Equal(t, 8, cfg.Jobs)
	assert.Equal(t, []string{"dist/**", "node_modules/**"}, cfg.Ignore)
	assert.Equal(t, []string{".html", ".xhtml"}, cfg.Extensions)
	assert.Equal(t, "reports", cfg.ReportDir)
	assert.True(t, cfg.Strict)
	assert.True(t, cfg.Markdown.GFM)
}

func TestLoadFromEnv_Unset(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg, func(string) string { return "" }))
	assert.Equal(t, config.NewConfig(), cfg)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"A11YLINT_JOBS":         "many",
		"A11YLINT_STRICT":       "yes please",
		"A11YLINT_MARKDOWN_GFM": "on-ish",
	}
	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := LoadFromEnv(config.NewConfig(), func(k string) string {
				if k == name {
					return value
				}
				return ""
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	assert.Len(t, vars, 8)
	assert.Contains(t, vars, "A11YLINT_FORMAT")
	assert.Contains(t, vars, "A11YLINT_MARKDOWN_GFM")
}
