package pathsearch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dbshift/dbshift/internal/platform"
)

// ErrSelfUnresolvable means the running program's own path could not be
// determined by any strategy. There is no sensible way to continue
// without it; the CLI maps this to its internal-error exit code.
var ErrSelfUnresolvable = errors.New("cannot resolve own executable path")

// ProgramPath resolves the absolute path of the running program. OS
// introspection comes first; failing that, an absolute argv[0] is used
// verbatim; failing that, PATH is searched for the invocation name.
// The shell leaves argv[0] as the bare name when the binary was found
// through PATH.
func ProgramPath() (string, error) {
	path, err := platform.SelfExe()
	if err == nil {
		slog.Debug("found absolute program path", "path", path)
		return path, nil
	}
	if !errors.Is(err, platform.ErrUnsupported) {
		slog.Error("failed to resolve own executable path", "error", err)
		return "", err
	}

	argv0 := os.Args[0]
	if filepath.IsAbs(argv0) {
		return argv0, nil
	}

	match, err := SearchPathFirst(argv0, slog.LevelDebug)
	if err != nil {
		slog.Error("failed to find program in PATH", "program", argv0)
		return "", fmt.Errorf("locate %s: %w", argv0, ErrSelfUnresolvable)
	}
	slog.Debug("found program in PATH", "program", argv0, "path", match)
	return match, nil
}
