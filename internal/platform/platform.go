// Package platform holds the OS-specific pieces of the file layer:
// file ownership and permissions, cross-device rename detection, and
// locating the running executable.
package platform

import "errors"

// ErrUnsupported reports that the platform offers no way to introspect
// the running executable's path. Callers fall back to argv[0] and a
// PATH search.
var ErrUnsupported = errors.New("executable introspection unsupported on this platform")
