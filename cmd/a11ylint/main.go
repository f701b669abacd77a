// Package main is the entry point for the a11ylint CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/yaklabco/a11ylint/internal/cli"
	"github.com/yaklabco/a11ylint/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/a11ylint/pkg/a11y/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, cli.ErrIssuesFound) {
		logging.Default().Error("command failed", logging.FieldError, err)
	}
	return cli.ExitCode(err)
}
