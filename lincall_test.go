//go:build linux && (amd64 || arm64)

package lincall

import (
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/carved4/go-lincall/pkg/errno"
)

func TestGetpid(t *testing.T) {
	pid := Getpid()
	require.Greater(t, int(pid), 0)
	require.Equal(t, os.Getpid(), int(pid))
}

func TestCallDispatch(t *testing.T) {
	pid, err := Call("getpid")
	require.NoError(t, err)
	require.Equal(t, os.Getpid(), int(pid))

	// bad fd through the one-argument arity
	_, err = Call("close", uintptr(1<<20))
	require.Equal(t, errno.EBADF, err)
}

func TestCallUnknownName(t *testing.T) {
	_, err := Call("definitely_not_a_syscall")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown syscall")
}

func TestCallTooManyArguments(t *testing.T) {
	_, err := Call("read", 1, 2, 3, 4, 5, 6, 7)
	require.Error(t, err)
	require.Contains(t, err.Error(), "at most six")
}

func TestOpenReadClose(t *testing.T) {
	fd, e := Open("/dev/zero", O_RDONLY|O_CLOEXEC, 0)
	require.Equal(t, Errno(0), e)

	buf := make([]byte, 16)
	for i := range buf {
		buf[i] = 0xff
	}
	n, e := Read(fd, buf)
	require.Equal(t, Errno(0), e)
	require.Equal(t, uintptr(len(buf)), n)
	for i, b := range buf {
		require.Zero(t, b, "byte %d", i)
	}

	require.Equal(t, Errno(0), Close(fd))

	// closing again reports the kernel's own EBADF
	require.Equal(t, errno.EBADF, Close(fd))
}

func TestOpenMissingFile(t *testing.T) {
	_, e := Open("/this/file/should/not/exist", O_RDONLY|O_CLOEXEC, 0)
	require.Equal(t, errno.ENOENT, e)
}

func TestBytePtrFromString(t *testing.T) {
	p, err := BytePtrFromString("/dev/zero")
	require.NoError(t, err)

	b := unsafe.Slice(p, len("/dev/zero")+1)
	require.Equal(t, byte(0), b[len(b)-1])
	require.Equal(t, "/dev/zero", string(b[:len(b)-1]))

	_, err = BytePtrFromString("bad\x00path")
	require.Error(t, err)
}

func TestClockGettime(t *testing.T) {
	var ts Timespec
	require.Equal(t, Errno(0), ClockGettime(ClockMonotonic, &ts))
	require.True(t, ts.Sec > 0 || ts.Nsec > 0)
}
