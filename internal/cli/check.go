package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/a11ylint/internal/configloader"
	"github.com/yaklabco/a11ylint/internal/logging"
	"github.com/yaklabco/a11ylint/pkg/a11y"
	_ "github.com/yaklabco/a11ylint/pkg/a11y/rules" // Register built-in rules
	"github.com/yaklabco/a11ylint/pkg/config"
	"github.com/yaklabco/a11ylint/pkg/reporter"
	"github.com/yaklabco/a11ylint/pkg/runner"
	"github.com/yaklabco/a11ylint/pkg/source"
)

// stdinArg selects standard input as the only input.
const stdinArg = "-"

type checkFlags struct {
	format     string
	jobs       int
	ignore     []string
	extensions []string
	reportDir  string
	strict     bool
	save       bool
	watch      bool
	sample     bool
	gfm        bool
	compact    bool
}

func newCheckCommand(info BuildInfo) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...|-]",
		Short: "Check HTML and Markdown files for accessibility issues",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags, info)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Check HTML and Markdown files for accessibility issues.

By default, checks all .html, .htm, .md and .markdown files in the current
directory and subdirectories. Markdown is rendered to HTML first; raw HTML
inside it is kept and checked.

Examples:
  a11ylint check                     # Check current directory
  a11ylint check site/               # Check a directory
  a11ylint check index.html          # Check a single file
  curl -s https://example.com | a11ylint check -
  a11ylint check --sample            # Check the built-in sample page
  a11ylint check --format json       # Output the report record as JSON
  a11ylint check --save              # Also save a11y-report-<date>.json
  a11ylint check --watch site/       # Re-check on every change
  a11ylint check --strict            # Fail on warnings too`

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, table, json, sarif, html, summary")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of files analyzed concurrently (0 = one per CPU)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "file extensions to check (e.g. .html,.htm)")
	cmd.Flags().StringVar(&flags.reportDir, "report-dir", "", "directory for --save reports")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.save, "save", false, "save a JSON report to the report directory")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "re-check files when they change")
	cmd.Flags().BoolVar(&flags.sample, "sample", false, "check the built-in sample page")
	cmd.Flags().BoolVar(&flags.gfm, "gfm", false, "render Markdown with GitHub Flavored Markdown extensions")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output where applicable")
}

// cliConfig collects the flags the user actually set. Unset flags stay zero
// so they do not override config files.
func cliConfig(cmd *cobra.Command, flags *checkFlags) *config.Config {
	cfg := &config.Config{
		Strict:   flags.strict,
		Save:     flags.save,
		Watch:    flags.watch,
		Markdown: config.MarkdownConfig{GFM: flags.gfm},
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if cmd.Flags().Changed("ext") {
		cfg.Extensions = flags.extensions
	}
	if cmd.Flags().Changed("report-dir") {
		cfg.ReportDir = flags.reportDir
	}
	if cmd.Flags().Changed("color") {
		cfg.Color, _ = cmd.Flags().GetString("color")
	}
	return cfg
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags, info BuildInfo) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	if err := validateInputArgs(args, flags); err != nil {
		return withExitCode(ExitInvalidUsage, err)
	}

	cfg, err := loadCheckConfig(ctx, cmd, flags, logger)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("get working directory: %w", err))
	}

	var analyzer runner.Analyzer = a11y.NewEngine(nil, a11y.DefaultRegistry)
	if cfg.Watch {
		// Reruns re-read every file; unchanged ones hit the cache.
		analyzer = runner.NewCachedAnalyzer(analyzer, 0)
	}

	session := &checkSession{
		cmd:     cmd,
		cfg:     cfg,
		args:    args,
		workDir: workDir,
		version: info.Version,
		sample:  flags.sample,
		compact: flags.compact,
		runner:  runner.New(analyzer),
		logger:  logger,
	}

	result, err := session.run(ctx)
	if err != nil {
		return err
	}

	if cfg.Watch {
		opts := session.runnerOptions()
		return runWatch(ctx, watchOptions{
			Paths:      opts.Paths,
			WorkingDir: workDir,
			Extensions: cfg.Extensions,
			Ignore:     cfg.Ignore,
			Out:        cmd.ErrOrStderr(),
		}, func(ctx context.Context) error {
			_, err := session.run(ctx)
			return err
		})
	}

	if code := ExitCodeFromResult(result, cfg.Strict); code != ExitSuccess {
		if code == ExitIOError {
			return withExitCode(code, errors.Join(result.Errs()...))
		}
		return withExitCode(code, ErrIssuesFound)
	}
	return nil
}

func validateInputArgs(args []string, flags *checkFlags) error {
	stdin := len(args) == 1 && args[0] == stdinArg
	for _, arg := range args {
		if arg == stdinArg && !stdin {
			return errors.New(`"-" (stdin) cannot be combined with other paths`)
		}
	}
	if flags.sample && len(args) > 0 {
		return errors.New("--sample takes no paths")
	}
	if flags.watch && (stdin || flags.sample) {
		return errors.New("--watch needs file or directory paths")
	}
	return nil
}

func loadCheckConfig(ctx context.Context, cmd *cobra.Command, flags *checkFlags, logger *log.Logger) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    cliConfig(cmd, flags),
	})
	if err != nil {
		return nil, withExitCode(ExitConfigError, errors.Join(errors.New("failed to load configuration"), err))
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration loaded",
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldStrict, cfg.Strict,
	)
	return cfg, nil
}

// checkSession holds everything one analysis pass needs, so watch mode
// can repeat it.
type checkSession struct {
	cmd     *cobra.Command
	cfg     *config.Config
	args    []string
	workDir string
	version string
	sample  bool
	compact bool
	runner  *runner.Runner
	logger  *log.Logger
}

func (s *checkSession) runnerOptions() runner.Options {
	opts := runner.OptionsFromConfig(s.cfg, s.args)
	opts.WorkingDir = s.workDir
	return opts
}

// run analyzes the inputs once, reports the result and saves it if asked.
func (s *checkSession) run(ctx context.Context) (*runner.Result, error) {
	result, err := s.analyze(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rep, err := reporter.New(reporter.Options{
		Writer:      s.cmd.OutOrStdout(),
		Format:      reporter.Format(s.cfg.Format),
		Color:       s.cfg.Color,
		ShowSummary: true,
		Compact:     s.compact,
		WorkingDir:  s.workDir,
		Now:         now,
		Version:     s.version,
	})
	if err != nil {
		return nil, withExitCode(ExitInvalidUsage, fmt.Errorf("create reporter: %w", err))
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return nil, withExitCode(ExitIOError, fmt.Errorf("report results: %w", err))
	}

	if s.cfg.Save {
		path, err := reporter.SaveJSON(ctx, s.cfg.ReportDir, result, now)
		if err != nil {
			return nil, withExitCode(ExitIOError, err)
		}
		s.logger.Info("saved report", logging.FieldPath, path)
	}

	return result, nil
}

func (s *checkSession) analyze(ctx context.Context) (*runner.Result, error) {
	srcOpts := source.Options{GFM: s.cfg.Markdown.GFM}

	switch {
	case s.sample:
		return runner.NewResult(s.runner.AnalyzeInput(ctx, source.Sample())), nil

	case len(s.args) == 1 && s.args[0] == stdinArg:
		input, err := source.FromReader(ctx, s.cmd.InOrStdin(), srcOpts)
		if errors.Is(err, source.ErrEmptyInput) {
			return nil, withExitCode(ExitInvalidUsage, err)
		}
		if err != nil {
			return nil, withExitCode(ExitIOError, err)
		}
		return runner.NewResult(s.runner.AnalyzeInput(ctx, input)), nil
	}

	opts := s.runnerOptions()
	s.logger.Debug("starting check run",
		logging.FieldPaths, opts.Paths,
		logging.FieldWorkingDir, opts.WorkingDir,
		logging.FieldJobs, opts.Jobs,
	)

	result, err := s.runner.Run(ctx, opts)
	if err != nil {
		return nil, withExitCode(ExitIOError, errors.Join(errors.New("check run failed"), err))
	}

	s.logger.Debug("check run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesAnalyzed, result.Stats.FilesAnalyzed,
		logging.FieldFindingsTotal, result.Stats.FindingsTotal,
	)
	return result, nil
}
