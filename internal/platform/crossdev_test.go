package platform

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestIsCrossDevice(t *testing.T) {
	linkErr := &os.LinkError{Op: "rename", Old: "/a", New: "/b", Err: unix.EXDEV}
	assert.True(t, IsCrossDevice(linkErr))
	assert.True(t, IsCrossDevice(unix.EXDEV))
}

func TestIsCrossDeviceOtherErrors(t *testing.T) {
	assert.False(t, IsCrossDevice(nil))
	assert.False(t, IsCrossDevice(errors.New("boom")))
	assert.False(t, IsCrossDevice(&os.LinkError{Op: "rename", Old: "/a", New: "/b", Err: unix.EACCES}))
}
