package reporter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yaklabco/a11ylint/pkg/analysis"
	"github.com/yaklabco/a11ylint/pkg/fsutil"
	"github.com/yaklabco/a11ylint/pkg/runner"
)

// reportFileLayout is the date layout in saved report names.
const reportFileLayout = "2006-01-02"

// ReportFileName returns the name a report saved at t is written under.
// The date is t's UTC calendar date.
func ReportFileName(t time.Time) string {
	return "a11y-report-" + t.UTC().Format(reportFileLayout) + ".json"
}

// SaveJSON writes the report record for result into dir, replacing any
// report saved earlier the same day. It returns the written path.
func SaveJSON(ctx context.Context, dir string, result *runner.Result, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	opts := analysis.DefaultOptions()
	opts.Now = now
	record := analysis.Analyze(result, opts)

	var buf bytes.Buffer
	if err := encodeJSON(&buf, record, true); err != nil {
		return "", err
	}

	path := filepath.Join(dir, ReportFileName(now))
	if err := fsutil.WriteAtomic(ctx, path, buf.Bytes(), fsutil.DefaultFileMode); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return path, nil
}
