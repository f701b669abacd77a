package reporter

import (
	"io"
	"os"
	"time"

	"github.com/yaklabco/a11ylint/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output: "auto" (default), "always", "never".
	Color string

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact uses minified output where applicable.
	Compact bool

	// WorkingDir makes displayed paths relative when set.
	WorkingDir string

	// Now stamps generated reports. Zero means time.Now().
	Now time.Time

	// Version is the tool version written into SARIF and HTML output.
	Version string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       config.ColorAuto,
		ShowSummary: true,
		Version:     "dev",
	}
}
