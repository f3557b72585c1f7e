package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/zeebo/blake3"
	"golang.org/x/sys/unix"

	"github.com/dbshift/dbshift/internal/platform"
)

// MoveFile moves src to dst the way mv(1) does: an atomic rename when
// both live on the same filesystem, a buffered duplicate plus unlink
// when they do not. The destination is never overwritten.
func MoveFile(src, dst string) error {
	if src == dst {
		// nothing to do
		slog.Warn("source and destination are the same, nothing to move", "path", src)
		return nil
	}

	if !Exists(src) {
		slog.Error("failed to move file, source does not exist", "path", src)
		return fmt.Errorf("move %s: %w", src, ErrSourceMissing)
	}
	if Exists(dst) {
		slog.Error("failed to move file, destination already exists", "path", dst)
		return fmt.Errorf("move to %s: %w", dst, ErrDestinationExists)
	}

	// First try the atomic move.
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !platform.IsCrossDevice(err) {
		slog.Error("failed to move file", "src", src, "dst", dst, "error", err)
		return fmt.Errorf("rename %s to %s: %w", src, dst, err)
	}

	// Different filesystems: copy the contents with ownership and mode,
	// then drop the source.
	if err := DuplicateFile(src, dst); err != nil {
		slog.Error("canceling file move due to errors", "src", src, "dst", dst)
		return err
	}

	// The source being already gone at this point is fine.
	_ = UnlinkFile(src)

	return nil
}

// DuplicateFile copies src to dst by reading the whole source into
// memory, writing it out, verifying the written bytes, and carrying the
// source's ownership and permissions onto the destination. It refuses
// to overwrite, and any failure after the write removes the partial
// destination: the caller sees the copy happen entirely or not at all.
func DuplicateFile(src, dst string) error {
	data, err := ReadFile(src)
	if err != nil {
		// errors are logged
		return err
	}

	if Exists(dst) {
		slog.Error("failed to duplicate, destination already exists", "path", dst)
		return fmt.Errorf("duplicate to %s: %w", dst, ErrDestinationExists)
	}

	if err := WriteFile(data, dst); err != nil {
		return err
	}

	if err := verifyDuplicate(data, dst); err != nil {
		_ = UnlinkFile(dst)
		return err
	}

	identity, err := platform.IdentityOf(src)
	if err != nil {
		slog.Error("failed to get ownership and permissions", "path", src, "error", err)
		_ = UnlinkFile(dst)
		return err
	}
	if err := identity.Apply(dst); err != nil {
		slog.Error("failed to set ownership and permissions", "path", dst, "error", err)
		_ = UnlinkFile(dst)
		return err
	}

	return nil
}

// verifyDuplicate re-reads the file written at path and compares its
// BLAKE3 digest against the source buffer it came from.
func verifyDuplicate(data []byte, path string) error {
	written, err := ReadFile(path)
	if err != nil {
		return err
	}
	if blake3.Sum256(written) != blake3.Sum256(data) {
		slog.Error("duplicated file does not match source", "path", path)
		return fmt.Errorf("verify %s: %w", path, ErrChecksumMismatch)
	}
	return nil
}

// UnlinkFile removes path. A file that is already gone is success, not
// failure.
func UnlinkFile(path string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, unix.ENOTDIR) {
			return nil
		}
		slog.Error("failed to remove file", "path", path, "error", err)
		return err
	}
	return nil
}

// CreateSymlink creates link pointing at target.
func CreateSymlink(target, link string) error {
	if err := os.Symlink(target, link); err != nil {
		slog.Error("failed to create symbolic link", "path", link, "error", err)
		return err
	}
	return nil
}
