package platform

import (
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// Identity is the ownership and permission state of a file at a point
// in time. It is read from a source file and reapplied to a
// destination, never invented.
type Identity struct {
	UID  uint32
	GID  uint32
	Mode fs.FileMode
}

// IdentityOf reads the identity of the file at path, following
// symlinks.
func IdentityOf(path string) (Identity, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Identity{}, fmt.Errorf("stat %s: %w", path, err)
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return Identity{}, fmt.Errorf("stat %s: no ownership information on this platform", path)
	}
	return Identity{
		UID:  st.Uid,
		GID:  st.Gid,
		Mode: info.Mode(),
	}, nil
}

// Apply sets the identity on the file at path. Ownership is applied
// before permissions so a chown failure never leaves a file with
// widened mode bits.
func (id Identity) Apply(path string) error {
	if err := os.Chown(path, int(id.UID), int(id.GID)); err != nil {
		return fmt.Errorf("chown %s: %w", path, err)
	}
	if err := os.Chmod(path, id.Mode.Perm()|id.Mode&(fs.ModeSetuid|fs.ModeSetgid|fs.ModeSticky)); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}
