package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRunWatch_RerunsOnContentChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	page := filepath.Join(dir, "index.html")
	notes := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(page, []byte("<p>one</p>"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reruns := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- runWatch(ctx, watchOptions{
			Paths:      []string{dir},
			WorkingDir: dir,
			Debounce:   20 * time.Millisecond,
		}, func(context.Context) error {
			reruns <- struct{}{}
			return nil
		})
	}()

	// Give the watcher time to register its directories.
	time.Sleep(200 * time.Millisecond)

	expectNone := func(what string) {
		t.Helper()
		select {
		case <-reruns:
			t.Fatalf("unexpected re-run after %s", what)
		case <-time.After(300 * time.Millisecond):
		}
	}
	expectOne := func(what string) {
		t.Helper()
		select {
		case <-reruns:
		case <-time.After(5 * time.Second):
			t.Fatalf("no re-run after %s", what)
		}
	}

	if err := os.WriteFile(page, []byte("<p>one</p>"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	expectNone("rewriting identical content")

	if err := os.WriteFile(notes, []byte("todo"), 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}
	expectNone("writing a file with an unwatched extension")

	if err := os.WriteFile(page, []byte("<p>two</p>"), 0o644); err != nil {
		t.Fatalf("modify: %v", err)
	}
	expectOne("changing content")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runWatch() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runWatch did not stop after cancel")
	}
}

func TestRunWatch_MissingPath(t *testing.T) {
	t.Parallel()

	err := runWatch(context.Background(), watchOptions{
		Paths: []string{filepath.Join(t.TempDir(), "missing")},
	}, func(context.Context) error { return nil })
	if ExitCode(err) != ExitIOError {
		t.Fatalf("runWatch() exit code = %d, want %d (err %v)", ExitCode(err), ExitIOError, err)
	}
}
