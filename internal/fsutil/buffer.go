// Package fsutil is the defensive filesystem layer of dbshift: whole-file
// reads and writes, existence predicates, and moves that survive
// filesystem boundaries without leaving partial state behind.
//
// Every operation is synchronous and self-contained. Failures are
// logged at the point they happen, with the offending path, and
// returned to the caller; nothing in this package panics.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// fileMode is the fixed creation mode for files written by this layer.
// The process umask still applies.
const fileMode = 0o644

// ReadFile reads the whole file at path into memory. The returned slice
// length is exactly the number of bytes read; embedded NUL bytes are
// preserved.
func ReadFile(path string) ([]byte, error) {
	data, err := readWhole(path)
	if err != nil {
		slog.Error("failed to read file", "path", path, "error", err)
		return nil, err
	}
	return data, nil
}

// ReadFileIfExists behaves like ReadFile but does not log when the file
// is missing: probing for an optional file is not noteworthy. The
// caller still receives the not-found error and can branch on it with
// errors.Is(err, fs.ErrNotExist).
func ReadFileIfExists(path string) ([]byte, error) {
	data, err := readWhole(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read file", "path", path, "error", err)
		}
		return nil, err
	}
	return data, nil
}

// readWhole measures the file by seeking to its end, rewinds, and reads
// exactly that many bytes. A file that shrinks between the measure and
// the read surfaces as io.ErrUnexpectedEOF instead of a silently short
// buffer.
func readWhole(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("seek end %s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind %s: %w", path, err)
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// WriteFile creates or truncates path and writes data in full. The
// close error is checked: on networked filesystems a failed close is a
// failed write. The descriptor is closed on every path.
func WriteFile(data []byte, path string) error {
	return writeAll(data, path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

// AppendFile writes data at the end of path, creating it if needed.
// Same contract as WriteFile otherwise.
func AppendFile(data []byte, path string) error {
	return writeAll(data, path, os.O_WRONLY|os.O_CREATE|os.O_APPEND)
}

func writeAll(data []byte, path string, flags int) error {
	f, err := os.OpenFile(path, flags, fileMode)
	if err != nil {
		slog.Error("failed to open file", "path", path, "error", err)
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		slog.Error("failed to write file", "path", path, "error", err)
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		slog.Error("failed to write file", "path", path, "error", err)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// WriteFileAtomic writes data to a uuid-suffixed temporary name in the
// same directory as path, syncs it, and renames it over path. Readers
// never observe a partially written file. Meant for state files that
// must be valid or absent.
func WriteFileAtomic(data []byte, path string) error {
	dir, base := filepath.Split(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.dbshift-tmp", base, uuid.New().String()[:8]))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		slog.Error("failed to create temporary file", "path", tmp, "error", err)
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		slog.Error("failed to write file", "path", tmp, "error", err)
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		slog.Error("failed to sync file", "path", tmp, "error", err)
		return fmt.Errorf("sync %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		slog.Error("failed to write file", "path", tmp, "error", err)
		return fmt.Errorf("close %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		slog.Error("failed to rename temporary file", "path", path, "error", err)
		return fmt.Errorf("rename %s to %s: %w", tmp, path, err)
	}
	return nil
}
