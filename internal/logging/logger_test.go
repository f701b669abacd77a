package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/a11ylint/internal/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"DEBUG", log.DebugLevel},
		{" Info ", log.InfoLevel},
		{"fatal", log.InfoLevel},
		{"verbose", log.InfoLevel},
		{"", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logging.ParseLevel(tt.name))
		})
	}
}

func TestNew_WritesAtLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("rule failed", logging.FieldRule, "A11Y003")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "rule failed")
	assert.Contains(t, out, "rule=A11Y003")
}

func TestNewInteractive(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewInteractive(&buf)
	require.NotNil(t, logger)
	assert.Equal(t, log.InfoLevel, logger.GetLevel())

	logger.Info("a11ylint", logging.FieldVersion, "1.2.3")
	assert.Contains(t, buf.String(), "version=1.2.3")
}

func TestContext_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
}

func TestContext_WithFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New(&buf, "debug"))
	ctx = logging.WithFields(ctx, logging.FieldPath, "index.html")

	logging.FromContext(ctx).Debug("file analyzed")

	assert.Contains(t, buf.String(), "path=index.html")
}

// Not parallel: these swap the process default.

func TestSetDefaultAndLevel(t *testing.T) {
	original := logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	replacement := logging.New(&bytes.Buffer{}, "info")
	logging.SetDefault(replacement)
	assert.Same(t, replacement, logging.Default())

	logging.SetLevel("debug")
	assert.Equal(t, log.DebugLevel, replacement.GetLevel())

	logging.SetDefault(nil)
	assert.NotNil(t, logging.Default())
}
