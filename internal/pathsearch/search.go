// Package pathsearch locates named files along the PATH environment
// variable and canonicalizes filesystem paths.
package pathsearch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dbshift/dbshift/internal/config"
	"github.com/dbshift/dbshift/internal/fsutil"
)

// Limits are installed once at startup from configuration. This layer
// consumes them, it does not define them. Everything here is
// single-threaded, so plain package variables are fine.
var (
	MaxPathLength  = config.DefaultMaxPathLength
	MaxPathMatches = config.DefaultMaxPathMatches
)

var (
	// ErrNotFound means no PATH directory contains the requested file.
	ErrNotFound = errors.New("not found in PATH")

	// ErrTooManyMatches means the match count exceeded MaxPathMatches.
	// Overflow is an explicit failure, never a silent truncation.
	ErrTooManyMatches = errors.New("too many PATH matches")

	// ErrPathTooLong means a resolved real path exceeded MaxPathLength.
	ErrPathTooLong = errors.New("path exceeds maximum length")
)

// SearchPath probes every directory of the PATH environment variable
// for filename and returns the full path of each hit, in PATH order.
// Empty segments mean the current directory, as the shell treats them.
// Candidates are cleaned lexically; they do not have to resolve to
// exist before being probed.
func SearchPath(filename string) ([]string, error) {
	pathList, ok := os.LookupEnv("PATH")
	if !ok {
		slog.Error("PATH environment variable is not set")
		return nil, fmt.Errorf("search %s: PATH is not set", filename)
	}

	var matches []string
	for _, dir := range strings.Split(pathList, string(filepath.ListSeparator)) {
		candidate := filepath.Join(dir, filename)
		if !fsutil.Exists(candidate) {
			continue
		}
		if len(matches) == MaxPathMatches {
			slog.Error("too many PATH matches", "filename", filename, "max", MaxPathMatches)
			return nil, fmt.Errorf("search %s: %w", filename, ErrTooManyMatches)
		}
		matches = append(matches, candidate)
	}
	return matches, nil
}

// SearchPathFirst returns the first PATH match for filename. The miss
// is logged at level: probe-style callers pass slog.LevelDebug, callers
// that require the file pass slog.LevelError.
func SearchPathFirst(filename string, level slog.Level) (string, error) {
	matches, err := SearchPath(filename)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		slog.Log(context.Background(), level, "failed to find command in PATH", "filename", filename)
		return "", fmt.Errorf("search %s: %w", filename, ErrNotFound)
	}
	return matches[0], nil
}
