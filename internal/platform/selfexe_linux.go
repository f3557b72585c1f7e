//go:build linux

package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// procEntries are the pseudo-files that link to the running executable.
// Linux comes first; the FreeBSD and Solaris entries cover emulation
// environments that expose their procfs layout.
var procEntries = []string{
	"/proc/self/exe",
	"/proc/curproc/file",
	"/proc/self/path/a.out",
}

// SelfExe resolves the absolute path of the running executable from the
// proc filesystem. A missing proc entry moves on to the next guess; any
// other readlink failure is reported.
func SelfExe() (string, error) {
	for _, entry := range procEntries {
		target, err := os.Readlink(entry)
		if err == nil {
			return target, nil
		}
		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, unix.ENOTDIR) {
			return "", fmt.Errorf("readlink %s: %w", entry, err)
		}
	}
	return "", ErrUnsupported
}
