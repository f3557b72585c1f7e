package platform

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// IsCrossDevice reports whether err is a rename failure caused by the
// source and destination living on different filesystems. rename(2)
// signals this with EXDEV, which os.Rename wraps in a *os.LinkError.
func IsCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return errors.Is(linkErr.Err, unix.EXDEV)
	}
	return errors.Is(err, unix.EXDEV)
}
