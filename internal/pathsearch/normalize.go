package pathsearch

import (
	"fmt"
	"log/slog"

	"github.com/dbshift/dbshift/internal/fsutil"
)

// NormalizeFilename returns the canonical real path of filename when it
// exists on disk. A path that does not exist yet passes through
// unchanged: configuration may point at files that get created later.
// The result is idempotent, normalizing it again is a no-op.
func NormalizeFilename(filename string) (string, error) {
	if !fsutil.Exists(filename) {
		return filename, nil
	}

	resolved, err := realPath(filename)
	if err != nil {
		slog.Error("failed to normalize file name", "path", filename, "error", err)
		return "", fmt.Errorf("normalize %s: %w", filename, err)
	}
	if len(resolved) > MaxPathLength {
		slog.Error("real path exceeds maximum length",
			"path", resolved, "length", len(resolved), "max", MaxPathLength)
		return "", fmt.Errorf("normalize %s: %w", filename, ErrPathTooLong)
	}
	return resolved, nil
}
