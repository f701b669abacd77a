package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/a11ylint/pkg/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(*config.Config)
		wantField  string
		wantWarned bool
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "bad format", mutate: func(c *config.Config) { c.Format = "xml" }, wantField: "format"},
		{name: "bad color", mutate: func(c *config.Config) { c.Color = "rainbow" }, wantField: "color"},
		{name: "negative jobs", mutate: func(c *config.Config) { c.Jobs = -1 }, wantField: "jobs"},
		{name: "extension without dot", mutate: func(c *config.Config) { c.Extensions = []string{".html", "htm"} }, wantField: "extensions[1]"},
		{name: "bare dot extension", mutate: func(c *config.Config) { c.Extensions = []string{"."} }, wantField: "extensions[0]"},
		{name: "bad glob", mutate: func(c *config.Config) { c.Ignore = []string{"[unclosed"} }, wantField: "ignore[0]"},
		{name: "empty extensions", mutate: func(c *config.Config) { c.Extensions = []string{} }, wantWarned: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tt.mutate(cfg)
			result := Validate(cfg)

			if tt.wantField == "" {
				assert.True(t, result.Valid(), "errors: %v", result.Errors)
			} else {
				if assert.False(t, result.Valid()) {
					assert.Equal(t, tt.wantField, result.Errors[0].Field)
				}
			}
			assert.Equal(t, tt.wantWarned, len(result.Warnings) > 0)
		})
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Ignore = []string{"a/**"}
	base.Strict = true

	override := &config.Config{
		Format:     config.FormatJSON,
		Extensions: []string{".html"},
	}

	merged := MergeAll(base, override, nil)

	assert.Equal(t, config.FormatJSON, merged.Format)
	assert.Equal(t, config.ColorAuto, merged.Color)
	assert.Equal(t, []string{"a/**"}, merged.Ignore)
	assert.Equal(t, []string{".html"}, merged.Extensions)
	assert.True(t, merged.Strict, "false in override must not unset strict")

	merged.Ignore[0] = "changed"
	assert.Equal(t, "a/**", base.Ignore[0], "merge must not alias base slices")
}

func TestMerge_EmptyListsStayExplicit(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Ignore = []string{"vendor/**"}

	merged := merge(base, &config.Config{Ignore: []string{}, Extensions: []string{}})

	require.NotNil(t, merged.Ignore, "explicit empty ignore list must not read as unset")
	assert.Empty(t, merged.Ignore)
	require.NotNil(t, merged.Extensions)
	assert.Empty(t, merged.Extensions)

	result := Validate(merged)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "extensions", result.Warnings[0].Field)

	unset := merge(base, &config.Config{})
	assert.Equal(t, []string{"vendor/**"}, unset.Ignore, "nil override keeps the base list")
}
