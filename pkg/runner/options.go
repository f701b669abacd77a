// Package runner analyzes many files concurrently.
package runner

import (
	"github.com/yaklabco/a11ylint/pkg/config"
	"github.com/yaklabco/a11ylint/pkg/source"
)

// Options controls discovery and analysis of a set of paths.
type Options struct {
	// Paths are files or directories to analyze. Empty means the working directory.
	Paths []string

	// WorkingDir resolves relative Paths and ignore globs.
	// Empty means the process working directory.
	WorkingDir string

	// Extensions are the file extensions (lower-case, leading dot) picked up
	// when walking directories.
	Extensions []string

	// Ignore holds glob patterns for files and directories to skip.
	Ignore []string

	// FollowSymlinks walks into symlinked directories.
	FollowSymlinks bool

	// Jobs bounds concurrent analyses. 0 or less means runtime.NumCPU().
	Jobs int

	// Source controls how each file is loaded.
	Source source.Options
}

// OptionsFromConfig builds Options for paths from a resolved config.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Options{
		Paths:      paths,
		Extensions: cfg.Extensions,
		Ignore:     cfg.Ignore,
		Jobs:       cfg.Jobs,
		Source:     source.Options{GFM: cfg.Markdown.GFM},
	}
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) paths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
