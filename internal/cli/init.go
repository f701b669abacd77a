package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/a11ylint/internal/configloader"
	"github.com/yaklabco/a11ylint/internal/logging"
	"github.com/yaklabco/a11ylint/pkg/config"
	"github.com/yaklabco/a11ylint/pkg/fsutil"
)

const configHeader = `# a11ylint configuration
# Rules are fixed; these settings control which files are checked and how
# results are reported. Environment variables (A11YLINT_*) and flags override them.`

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an a11ylint configuration file",
		Long: `Create a .a11ylint.yml configuration file in the current directory
with the default settings.

Examples:
  a11ylint init                       Create .a11ylint.yml
  a11ylint init --output ci/a11y.yml  Write to a custom path
  a11ylint init --force               Overwrite an existing file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"output file path (default: "+configloader.ProjectConfigFiles[0]+")")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive(cmd.OutOrStdout())

	outputPath := flags.output
	if outputPath == "" {
		outputPath = configloader.ProjectConfigFiles[0]
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("resolve path: %w", err))
	}

	content, err := config.NewConfig().ToYAMLWithHeader(configHeader)
	if err != nil {
		return withExitCode(ExitInternalError, fmt.Errorf("generate config: %w", err))
	}

	ctx := cmd.Context()
	if flags.force {
		err = fsutil.WriteAtomic(ctx, absPath, content, fsutil.DefaultFileMode)
	} else {
		err = fsutil.CreateExclusive(ctx, absPath, content, fsutil.DefaultFileMode)
	}
	if errors.Is(err, fsutil.ErrExists) {
		return withExitCode(ExitInvalidUsage, fmt.Errorf("file %q already exists; use --force to overwrite", outputPath))
	}
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("write config: %w", err))
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'a11ylint rules' to see the rules that will be checked")

	return nil
}
