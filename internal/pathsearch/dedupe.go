package pathsearch

import (
	"fmt"
	"log/slog"
	"path/filepath"
)

// realPath mirrors realpath(3): absolute, all symlinks resolved,
// redundant separators and dot segments removed.
func realPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// DeduplicateSymlinks collapses matches that resolve to the same file
// on disk. Debian-style /bin -> /usr/bin links otherwise make a single
// installed binary show up twice in a PATH search. Each kept entry is
// the fully resolved real path, in order of first appearance, which
// makes the operation idempotent. Any entry that fails to resolve fails
// the whole call; there is no partial result.
func DeduplicateSymlinks(matches []string) ([]string, error) {
	deduped := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))

	for _, match := range matches {
		resolved, err := realPath(match)
		if err != nil {
			slog.Error("failed to normalize file name", "path", match, "error", err)
			return nil, fmt.Errorf("resolve %s: %w", match, err)
		}
		if len(resolved) > MaxPathLength {
			slog.Error("real path exceeds maximum length",
				"path", resolved, "length", len(resolved), "max", MaxPathLength)
			return nil, fmt.Errorf("resolve %s: %w", match, ErrPathTooLong)
		}

		if _, ok := seen[resolved]; ok {
			slog.Debug("dedup: skipping duplicate", "path", match)
			continue
		}
		seen[resolved] = struct{}{}
		deduped = append(deduped, resolved)
	}

	return deduped, nil
}
