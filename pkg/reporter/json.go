package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/yaklabco/a11ylint/pkg/analysis"
)

// JSONRenderer writes the report record as JSON.
type JSONRenderer struct {
	opts Options
	out  io.Writer
}

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer(opts Options) *JSONRenderer {
	return &JSONRenderer{opts: opts, out: opts.Writer}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.out, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	return encodeJSON(bw, report, !r.opts.Compact)
}

func encodeJSON(w io.Writer, v any, indent bool) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if indent {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
