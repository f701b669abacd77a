package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/a11ylint/internal/logging"
	"github.com/yaklabco/a11ylint/pkg/config"
	"github.com/yaklabco/a11ylint/pkg/fsutil"
	"github.com/yaklabco/a11ylint/pkg/runner"
)

// defaultDebounce coalesces bursts of events from a single save.
const defaultDebounce = 200 * time.Millisecond

type watchOptions struct {
	// Paths are the files and directories to watch. Empty means WorkingDir.
	Paths      []string
	WorkingDir string
	Extensions []string
	Ignore     []string

	// Out receives the "watching" status lines.
	Out io.Writer

	// Debounce overrides defaultDebounce.
	Debounce time.Duration
}

// watcher re-runs a check whenever the content of a watched input changes.
type watcher struct {
	opts     watchOptions
	fsw      *fsnotify.Watcher
	tracker  *fsutil.Tracker
	files    map[string]bool
	walked   map[string]bool
	pending  map[string]bool
	force    bool
	exts     []string
	logger   *log.Logger
	debounce time.Duration
}

// runWatch blocks until ctx is done, calling rerun after every settled
// batch of content changes. Errors from rerun are logged, not returned.
func runWatch(ctx context.Context, opts watchOptions, rerun func(context.Context) error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("create watcher: %w", err))
	}
	defer fsw.Close()

	w := &watcher{
		opts:     opts,
		fsw:      fsw,
		tracker:  fsutil.NewTracker(),
		files:    make(map[string]bool),
		walked:   make(map[string]bool),
		pending:  make(map[string]bool),
		exts:     opts.Extensions,
		logger:   logging.FromContext(ctx),
		debounce: opts.Debounce,
	}
	if len(w.exts) == 0 {
		w.exts = config.DefaultExtensions()
	}
	if w.debounce <= 0 {
		w.debounce = defaultDebounce
	}

	if err := w.addPaths(ctx); err != nil {
		return withExitCode(ExitIOError, err)
	}

	return w.loop(ctx, rerun)
}

func (w *watcher) addPaths(ctx context.Context) error {
	paths := w.opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	for _, p := range paths {
		abs := p
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(w.opts.WorkingDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}

		if !info.IsDir() {
			// Editors often replace files on save, so watch the directory.
			w.files[abs] = true
			w.prime(ctx, abs)
			if err := w.fsw.Add(filepath.Dir(abs)); err != nil {
				return fmt.Errorf("watch %s: %w", p, err)
			}
			continue
		}

		if err := w.addRecursive(ctx, abs); err != nil {
			return err
		}
	}
	return nil
}

func (w *watcher) addRecursive(ctx context.Context, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if path != root && (strings.HasPrefix(d.Name(), ".") || w.ignored(path)) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			if w.hasExtension(path) {
				w.prime(ctx, path)
			}
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		w.walked[path] = true
		return nil
	})
}

// prime records the current content so the first save without changes
// does not trigger a re-run.
func (w *watcher) prime(ctx context.Context, path string) {
	_, _ = w.tracker.Changed(ctx, path)
}

func (w *watcher) loop(ctx context.Context, rerun func(context.Context) error) error {
	// Armed by the first relevant event.
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	w.status()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.relevant(ctx, event) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", logging.FieldError, err)

		case <-timer.C:
			if !w.settle(ctx) {
				continue
			}
			if err := rerun(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				w.logger.Error("check failed", logging.FieldError, err)
			}
			w.status()
		}
	}
}

// settle compares every pending path with its last snapshot once events
// have stopped arriving, and reports whether any content changed.
func (w *watcher) settle(ctx context.Context) bool {
	changed := w.force
	for path := range w.pending {
		c, err := w.tracker.Changed(ctx, path)
		if err != nil {
			w.logger.Debug("snapshot failed", logging.FieldPath, path, logging.FieldError, err)
			c = true
		}
		if c {
			w.logger.Debug("input changed", logging.FieldPath, path)
			changed = true
		}
	}
	clear(w.pending)
	w.force = false
	return changed
}

// relevant reports whether event may have changed a watched input, and
// queues the path for comparison. New directories are added to the watch.
func (w *watcher) relevant(ctx context.Context, event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	path := filepath.Clean(event.Name)
	if strings.HasPrefix(filepath.Base(path), ".") || w.ignored(path) {
		return false
	}

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if err := w.addRecursive(ctx, path); err != nil {
				w.logger.Warn("watch new directory", logging.FieldPath, path, logging.FieldError, err)
			}
			w.force = true
			return true
		}
	}

	// Parents of explicitly named files are watched for those files only.
	if !w.files[path] && !(w.walked[filepath.Dir(path)] && w.hasExtension(path)) {
		return false
	}

	w.pending[path] = true
	return true
}

func (w *watcher) hasExtension(path string) bool {
	ext := filepath.Ext(path)
	return slices.ContainsFunc(w.exts, func(e string) bool { return strings.EqualFold(e, ext) })
}

func (w *watcher) ignored(path string) bool {
	return runner.Ignored(path, w.opts.WorkingDir, w.opts.Ignore)
}

func (w *watcher) status() {
	if w.opts.Out == nil {
		return
	}
	fmt.Fprintf(w.opts.Out, "Watching for changes (%s)... press Ctrl+C to stop\n", time.Now().Format(time.TimeOnly))
}
