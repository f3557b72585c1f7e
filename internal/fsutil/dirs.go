package fsutil

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// EnsureEmptyDir makes dir an existing empty directory with the given
// mode, removing whatever tree was there before.
func EnsureEmptyDir(dir string, mode fs.FileMode) error {
	if IsDirectory(dir) {
		if err := os.RemoveAll(dir); err != nil {
			slog.Error("failed to remove directory", "path", dir, "error", err)
			return err
		}
	}

	if err := os.MkdirAll(dir, mode); err != nil {
		slog.Error("failed to ensure empty directory", "path", dir, "error", err)
		return err
	}
	return nil
}

// PathInSameDirectory returns the path of a file named name sitting in
// the same directory as base.
func PathInSameDirectory(base, name string) string {
	return filepath.Join(filepath.Dir(base), name)
}
