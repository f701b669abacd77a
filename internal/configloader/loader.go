// Package configloader resolves the a11ylint configuration. It discovers
// config files in XDG and project locations, merges them with environment
// variables and CLI flags, and validates the result.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/a11ylint/pkg/config"
)

// LoadOptions selects which configuration layers Load reads.
type LoadOptions struct {
	// WorkingDir anchors the project config search; "" means os.Getwd.
	WorkingDir string

	// ExplicitPath is the --config file. It is read even when the other
	// file layers are disabled.
	ExplicitPath string

	IgnoreSystemConfig  bool
	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool

	// Getenv replaces os.Getenv, mostly for tests.
	Getenv func(string) string

	// CLIConfig holds only the flags the user set. It overrides every
	// other layer.
	CLIConfig *config.Config
}

// LoadResult is the merged configuration and where it came from.
type LoadResult struct {
	Config *config.Config
	Paths  *ConfigPaths

	// LoadedFrom lists the files read, lowest precedence first.
	LoadedFrom []string

	// Warnings are validation problems that do not stop a run.
	Warnings []string
}

// Load merges defaults, config files, environment and flags, lowest
// precedence first:
//
//	defaults < system < user < project < --config < A11YLINT_* < flags
//
// The project file is the nearest .a11ylint.yml found walking up from the
// working directory. The merged result must validate.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}

	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		fileCfg, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		getenv := opts.Getenv
		if getenv == nil {
			getenv = os.Getenv
		}
		if err := LoadFromEnv(cfg, getenv); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
