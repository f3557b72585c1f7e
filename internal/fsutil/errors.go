package fsutil

import "errors"

// Sentinel errors for callers that branch on failure cause. OS-level
// conditions (missing file, permission denied) come through as wrapped
// os errors and are matched with errors.Is against fs.ErrNotExist and
// fs.ErrPermission.
var (
	// ErrSourceMissing means a move was requested for a source path
	// that does not exist.
	ErrSourceMissing = errors.New("source file does not exist")

	// ErrDestinationExists means the move or duplicate target is
	// already present. This layer never overwrites.
	ErrDestinationExists = errors.New("destination file already exists")

	// ErrChecksumMismatch means a duplicated destination does not match
	// the source buffer it was written from.
	ErrChecksumMismatch = errors.New("destination content does not match source")
)
