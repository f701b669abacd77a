package cli

import (
	"errors"
	"strings"

	"github.com/yaklabco/a11ylint/pkg/runner"
)

// Exit codes for a11ylint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitFindingErrors indicates analysis completed but found errors.
	ExitFindingErrors = 1

	// ExitFindingWarnings indicates analysis found warnings under --strict.
	ExitFindingWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrIssuesFound is returned when findings fail the run. It only signals
// the exit code and is not logged.
var ErrIssuesFound = errors.New("accessibility issues found")

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Cobra reports unknown subcommands as plain errors.
	if strings.HasPrefix(err.Error(), "unknown command") {
		return ExitInvalidUsage
	}
	return ExitInternalError
}

// ExitCodeFromResult determines the exit code based on result and strict mode.
// Files that could not be read only matter when no finding already failed the run.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	switch {
	case result == nil:
		return ExitSuccess
	case result.HasErrors():
		return ExitFindingErrors
	case strict && result.HasWarnings():
		return ExitFindingWarnings
	case result.Stats.FilesErrored > 0:
		return ExitIOError
	default:
		return ExitSuccess
	}
}
