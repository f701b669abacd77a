package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// appName names the config directories under XDG and /etc.
const appName = "a11ylint"

// ConfigPaths are the config files found for each layer. A layer with no
// file has an empty path.
type ConfigPaths struct {
	System   string // /etc/a11ylint/config.yaml
	User     string // $XDG_CONFIG_HOME/a11ylint/config.yaml
	Project  string // nearest .a11ylint.yml
	Explicit string // --config
}

// ProjectConfigFiles are the project config names, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ProjectConfigFiles = []string{
	".a11ylint.yml",
	".a11ylint.yaml",
	"a11ylint.yml",
	"a11ylint.yaml",
}

// A directory containing one of these is a repository root; the project
// search does not climb past it.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

//nolint:gochecknoglobals // Read-only lookup table.
var layerConfigFiles = []string{"config.yaml", "config.yml"}

// DiscoverPaths locates the system, user and project config files.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstFile(systemConfigDir(), layerConfigFiles),
		User:    firstFile(UserConfigDir(), layerConfigFiles),
		Project: project,
	}, nil
}

func systemConfigDir() string {
	if runtime.GOOS == "windows" {
		programData := os.Getenv("ProgramData")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return filepath.Join(programData, appName)
	}
	return filepath.Join("/etc", appName)
}

// UserConfigDir returns $XDG_CONFIG_HOME/a11ylint, falling back to
// ~/.config/a11ylint. It returns "" when no home directory is known.
func UserConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName)
}

// firstFile returns the first of names that exists as a file in dir.
func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		if path := filepath.Join(dir, name); isFile(path) {
			return path
		}
	}
	return ""
}

// FindProjectConfig searches upward from startDir for a project config file.
// The search stops at a VCS root, the home directory or the filesystem root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	homeDir, _ := os.UserHomeDir()

	for dir := currentDir; ; {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}
		if path := firstFile(dir, ProjectConfigFiles); path != "" {
			return path, nil
		}
		if isVCSRoot(dir) || (homeDir != "" && dir == homeDir) {
			return "", nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
