// Package fsutil provides the file system primitives a11ylint relies on:
// atomic report writes, exclusive config creation and content snapshots
// used to suppress no-op change events in watch mode.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrExists indicates the target file already exists.
	ErrExists = errors.New("file already exists")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// Snapshot captures the state of a file at a point in time.
type Snapshot struct {
	Path    string
	Size    int64
	ModTime time.Time

	// Hash is the SHA-256 of the content.
	Hash [32]byte
}

// Take reads path and records its snapshot.
func Take(ctx context.Context, path string) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.IsDir() {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read %s: %w", path, err)
	}

	return Snapshot{
		Path:    path,
		Size:    stat.Size(),
		ModTime: stat.ModTime(),
		Hash:    sha256.Sum256(content),
	}, nil
}

// SameContent reports whether two snapshots describe identical bytes.
func (s Snapshot) SameContent(other Snapshot) bool {
	return s.Size == other.Size && s.Hash == other.Hash
}

// Tracker remembers the last snapshot of each file it has seen.
// It is safe for concurrent use.
type Tracker struct {
	mu    sync.Mutex
	known map[string]Snapshot
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{known: make(map[string]Snapshot)}
}

// Changed snapshots path and reports whether its content differs from the
// previous snapshot. A file seen for the first time counts as changed, as
// does a file that has disappeared since it was last seen.
func (t *Tracker) Changed(ctx context.Context, path string) (bool, error) {
	snap, err := Take(ctx, path)
	if errors.Is(err, os.ErrNotExist) {
		t.mu.Lock()
		defer t.mu.Unlock()
		_, had := t.known[path]
		delete(t.known, path)
		return had, nil
	}
	if err != nil {
		return false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	prev, ok := t.known[path]
	t.known[path] = snap
	if !ok {
		return true, nil
	}
	return !prev.SameContent(snap), nil
}

// Forget drops any snapshot recorded for path.
func (t *Tracker) Forget(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.known, path)
}
