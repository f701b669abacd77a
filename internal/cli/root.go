// Package cli provides the Cobra command structure for a11ylint.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/a11ylint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root a11ylint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "a11ylint",
		Short: "Check HTML markup for accessibility defects",
		Long: `a11ylint inspects HTML (and Markdown rendered to HTML) for common
accessibility defects: images without alt text, unlabeled form controls,
skipped heading levels, vague button text, interactive elements without an
accessible name, and inline color styles that need a contrast check.

Every finding comes with an explanation, a suggestion and fixed markup.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withExitCode(ExitInvalidUsage, err)
	})

	rootCmd.AddCommand(newCheckCommand(info))
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}
