//go:build darwin

package platform

import "os"

// SelfExe resolves the absolute path of the running executable as
// reported by the OS (_NSGetExecutablePath under the hood).
func SelfExe() (string, error) {
	return os.Executable()
}
