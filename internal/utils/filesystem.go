package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to a temp file next to path, syncs it, then
// renames it over path. A reader of path sees either the old contents or the
// new contents, never a partial write.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tempPath := filepath.Join(dir, "."+filepath.Base(path)+".new")

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("unable to create dest dir: %w", err)
	}

	f, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("unable to create temp file: %w", err)
	}

	// No early returns from here on, so the temp file is removed on error.
	_, err = f.Write(data)
	if err != nil {
		err = fmt.Errorf("unable to write temp file: %w", err)
	}
	if err == nil {
		if err = f.Sync(); err != nil {
			err = fmt.Errorf("unable to fsync temp file: %w", err)
		}
	}
	if err == nil {
		err = f.Close()
		f = nil
		if err != nil {
			err = fmt.Errorf("unable to close temp file: %w", err)
		}
	}
	if err == nil {
		if err = os.Rename(tempPath, path); err != nil {
			err = fmt.Errorf("unable to rename temp file to final file: %w", err)
		}
	}
	if err != nil {
		if f != nil {
			_ = f.Close()
		}
		_ = os.Remove(tempPath)
	}

	return err
}

// FileExists returns true if path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
