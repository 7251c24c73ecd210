//go:build linux && amd64

package syscall

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/carved4/go-lincall/pkg/errno"
	"github.com/carved4/go-lincall/pkg/sysnum"
)

// amd64 still has the legacy two-argument open, which keeps the classic
// open/read/close walk on the exact arities it historically used.
func TestLegacyOpenTwoArgs(t *testing.T) {
	path := []byte("/dev/zero\x00")

	fd, err := Syscall2(sysnum.SYS_OPEN, uintptr(unsafe.Pointer(&path[0])), unix.O_RDONLY)
	runtime.KeepAlive(path)
	require.Equal(t, errno.Errno(0), err)
	require.GreaterOrEqual(t, int(fd), 0)

	var buf [8]byte
	n, err := Syscall3(sysnum.SYS_READ, fd,
		uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	require.Equal(t, errno.Errno(0), err)
	require.Equal(t, uintptr(len(buf)), n)

	ret, err := Syscall1(sysnum.SYS_CLOSE, fd)
	require.Equal(t, errno.Errno(0), err)
	require.Equal(t, uintptr(0), ret)
}

func TestLegacyOpenMissingFile(t *testing.T) {
	path := []byte("/this/file/should/not/exist\x00")

	_, err := Syscall2(sysnum.SYS_OPEN,
		uintptr(unsafe.Pointer(&path[0])), unix.O_RDONLY|unix.O_CLOEXEC)
	runtime.KeepAlive(path)
	require.Equal(t, errno.ENOENT, err)
}
