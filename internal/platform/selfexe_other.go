//go:build !linux && !darwin

package platform

// SelfExe has no introspection path on this platform.
func SelfExe() (string, error) {
	return "", ErrUnsupported
}
