package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/a11ylint/internal/ui/pretty"
	"github.com/yaklabco/a11ylint/pkg/config"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text), "No-color Bold should not add formatting")
	assert.Equal(t, text, styles.Error.Render(text), "No-color Error should not add formatting")
	assert.Equal(t, text, styles.Card.Render(text), "No-color Card should not add a border")
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, pretty.IsColorEnabled(config.ColorAlways, &buf))
	assert.False(t, pretty.IsColorEnabled(config.ColorNever, os.Stdout))
	assert.False(t, pretty.IsColorEnabled(config.ColorAuto, &buf), "non-TTY writer")
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, pretty.IsColorEnabled(config.ColorAuto, os.Stdout))
	assert.True(t, pretty.IsColorEnabled(config.ColorAlways, os.Stdout), "always overrides NO_COLOR")
}
