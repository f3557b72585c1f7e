package fsutil

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"
)

// Presence is the tri-state result of probing a path. Callers that must
// tell a missing file from an unreadable one use Probe; the boolean
// predicates below are for call sites that genuinely don't care.
type Presence int

const (
	// Absent means the path does not exist.
	Absent Presence = iota
	// Present means the path exists and is accessible.
	Present
	// Unknown means the probe itself failed. The cause is returned
	// alongside; it is not the same thing as absence.
	Unknown
)

// Probe reports whether path exists, following symlinks. A failure of
// the check itself (permission on a parent directory, I/O error) is
// Unknown with the underlying error.
func Probe(path string) (Presence, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return Present, nil
	case errors.Is(err, fs.ErrNotExist) || errors.Is(err, unix.ENOTDIR):
		return Absent, nil
	default:
		return Unknown, err
	}
}

// Exists reports whether path is accessible. Errors other than
// not-found are logged but still yield false; callers that need to
// distinguish absence from failure use Probe.
func Exists(path string) bool {
	state, err := Probe(path)
	if state == Unknown {
		slog.Error("failed to check if file exists", "path", path, "error", err)
	}
	return state == Present
}

// IsDirectory reports whether path names an existing directory.
func IsDirectory(path string) bool {
	if !Exists(path) {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		slog.Error("failed to stat path", "path", path, "error", err)
		return false
	}
	return info.IsDir()
}

// IsEmpty reports whether path is an existing, readable, zero-length
// file. An unreadable file is false, not an error; callers that must
// tell "empty" from "unreadable" call ReadFile themselves.
func IsEmpty(path string) bool {
	if !Exists(path) {
		return false
	}

	data, err := ReadFile(path)
	if err != nil {
		// errors are logged
		return false
	}
	return len(data) == 0
}
