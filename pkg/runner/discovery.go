package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover returns the absolute paths of the files opts selects, sorted and
// without duplicates.
//
// Explicitly named files are kept whatever their extension, unless ignored.
// Directories are walked for files with one of opts.Extensions; hidden
// entries are skipped.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	d := &discoverer{
		workDir:    workDir,
		extensions: opts.extensions(),
		ignore:     opts.Ignore,
		follow:     opts.FollowSymlinks,
		seen:       make(map[string]struct{}),
	}

	for _, p := range opts.paths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		abs := p
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}

		if !info.IsDir() {
			if !d.ignored(abs) {
				d.add(abs)
			}
			continue
		}

		if err := d.walk(ctx, abs); err != nil {
			return nil, err
		}
	}

	slices.Sort(d.files)
	return d.files, nil
}

type discoverer struct {
	workDir    string
	extensions []string
	ignore     []string
	follow     bool
	seen       map[string]struct{}
	files      []string
}

func (d *discoverer) add(path string) {
	if _, ok := d.seen[path]; ok {
		return
	}
	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}

func (d *discoverer) walk(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || d.ignored(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := filepath.EvalSymlinks(path)
			if err != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			info, err := os.Stat(target)
			if err != nil {
				return nil //nolint:nilerr // Unreadable targets are skipped.
			}
			if info.IsDir() {
				if !d.follow {
					return nil
				}
				// Walk the target; WalkDir does not descend through a symlinked root.
				return d.walk(ctx, target)
			}
		}

		if d.hasExtension(path) && !d.ignored(path) {
			d.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

func (d *discoverer) hasExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range d.extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

func (d *discoverer) ignored(path string) bool {
	return Ignored(path, d.workDir, d.ignore)
}

// Ignored reports whether path, taken relative to workDir, matches any of
// the ignore patterns.
func Ignored(path, workDir string, patterns []string) bool {
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		rel = path
	}
	for _, pattern := range patterns {
		if matchGlob(rel, pattern) {
			return true
		}
	}
	return false
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		return os.Getwd()
	}
	return filepath.Abs(workDir)
}

// matchGlob reports whether path matches pattern. Patterns without a slash
// also match the base name; "**" matches any number of directories.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchSegments(strings.Split(path, "/"), strings.Split(pattern, "/"))
	}

	if ok, _ := filepath.Match(pattern, path); ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		ok, _ := filepath.Match(pattern, filepath.Base(path))
		return ok
	}
	return false
}

// matchSegments matches path segments against pattern segments, where a
// "**" segment consumes zero or more path segments.
func matchSegments(path, pattern []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			if len(rest) == 0 {
				return true
			}
			for i := range len(path) + 1 {
				if matchSegments(path[i:], rest) {
					return true
				}
			}
			return false
		}
		if len(path) == 0 {
			return false
		}
		if ok, _ := filepath.Match(pattern[0], path[0]); !ok {
			return false
		}
		path, pattern = path[1:], pattern[1:]
	}
	return len(path) == 0
}
