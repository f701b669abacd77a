package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is the permission mode for files a11ylint creates.
const DefaultFileMode os.FileMode = 0o644

// WriteAtomic replaces path with content. Content goes to a temp file in the
// target directory, is synced, and is renamed over path. Readers see either
// the old file or the new one. If mode is 0, DefaultFileMode is used.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write atomic: %w", err)
	}
	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if err := fillTemp(tmp, content, mode); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func fillTemp(tmp *os.File, content []byte, mode os.FileMode) error {
	_, writeErr := tmp.Write(content)
	if writeErr == nil {
		writeErr = tmp.Sync()
	}
	closeErr := tmp.Close()

	if writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	return nil
}

// CreateExclusive writes content to path, failing with ErrExists when path
// is already present. Parent directories are created as needed.
func CreateExclusive(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("create: %w", err)
	}
	if mode == 0 {
		mode = DefaultFileMode
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		return fmt.Errorf("create %s: %w", path, err)
	}

	_, writeErr := f.Write(content)
	closeErr := f.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
