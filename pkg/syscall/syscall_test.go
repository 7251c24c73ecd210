//go:build linux && (amd64 || arm64)

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

// neg builds the register bit pattern the kernel uses for -n.
func neg(n uintptr) uintptr {
	return ^n + 1
}

func TestSplit(t *testing.T) {
	cases := []struct {
		name    string
		raw     uintptr
		payload uintptr
		err     errno.Errno
	}{
		{"zero is success", 0, 0, 0},
		{"positive payload", 42, 42, 0},
		{"fd-sized payload", 3, 3, 0},
		{"largest non-negative", uintptr(1)<<63 - 1, uintptr(1)<<63 - 1, 0},
		{"minus one is EPERM", neg(1), 0, errno.EPERM},
		{"minus two is ENOENT", neg(2), 0, errno.ENOENT},
		{"minus 38 is ENOSYS", neg(38), 0, errno.ENOSYS},
		{"minus 133 is EHWPOISON", neg(133), 0, errno.EHWPOISON},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			payload, err := split(c.raw)
			require.Equal(t, c.payload, payload)
			require.Equal(t, c.err, err)
		})
	}
}

func TestSplitCoversWholeTable(t *testing.T) {
	// every table member must round-trip through the register encoding
	for code := errno.Errno(1); code <= errno.Max; code++ {
		if !code.Valid() {
			continue
		}
		payload, err := split(neg(uintptr(code)))
		require.Zero(t, payload)
		require.Equal(t, code, err)
	}
}

func TestGetpidNoArgs(t *testing.T) {
	pid, err := Syscall0(sysnum.SYS_GETPID)
	require.Equal(t, errno.Errno(0), err)
	require.Greater(t, int(pid), 0)
	require.Equal(t, unix.Getpid(), int(pid))
}

func TestOpenReadClose(t *testing.T) {
	path := []byte("/dev/zero\x00")

	fd, err := Syscall4(sysnum.SYS_OPENAT, ^uintptr(99), // AT_FDCWD
		uintptr(unsafe.Pointer(&path[0])), unix.O_RDONLY, 0)
	runtime.KeepAlive(path)
	require.Equal(t, errno.Errno(0), err)
	require.GreaterOrEqual(t, int(fd), 0)

	buf := [8]byte{2, 3, 5, 7, 11, 13, 17, 19}
	n, err := Syscall3(sysnum.SYS_READ, fd,
		uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	require.Equal(t, errno.Errno(0), err)
	require.Equal(t, uintptr(len(buf)), n)
	require.Equal(t, [8]byte{}, buf)

	ret, err := Syscall1(sysnum.SYS_CLOSE, fd)
	require.Equal(t, errno.Errno(0), err)
	require.Equal(t, uintptr(0), ret)
}

func TestOpenMissingFileIsENOENT(t *testing.T) {
	path := []byte("/this/file/should/not/exist\x00")

	_, err := Syscall4(sysnum.SYS_OPENAT, ^uintptr(99),
		uintptr(unsafe.Pointer(&path[0])), unix.O_RDONLY|unix.O_CLOEXEC, 0)
	runtime.KeepAlive(path)
	require.Equal(t, errno.ENOENT, err)
	require.Equal(t, uintptr(unix.ENOENT), uintptr(err))
}

func TestSixArgumentsViaMmap(t *testing.T) {
	const length = 4096

	addr, err := Syscall6(sysnum.SYS_MMAP,
		0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS,
		neg(1), 0)
	require.Equal(t, errno.Errno(0), err)
	require.NotZero(t, addr)

	// the mapping has to actually be usable
	mem := unsafe.Slice((*byte)(unsafe.Pointer(addr)), length)
	mem[0] = 0x5a
	mem[length-1] = 0xa5
	require.Equal(t, byte(0x5a), mem[0])

	ret, err := Syscall2(sysnum.SYS_MUNMAP, addr, length)
	require.Equal(t, errno.Errno(0), err)
	require.Equal(t, uintptr(0), ret)
}

func TestUnknownNumberIsENOSYS(t *testing.T) {
	// far above any number the kernel dispatches on, on every arity
	const bogus = 0xfffff

	_, err := Syscall0(bogus)
	require.Equal(t, errno.ENOSYS, err)

	_, err = Syscall3(bogus, 1, 2, 3)
	require.Equal(t, errno.ENOSYS, err)

	_, err = Syscall6(bogus, 1, 2, 3, 4, 5, 6)
	require.Equal(t, errno.ENOSYS, err)
}

func TestConcurrentInvocations(t *testing.T) {
	// the layer is stateless; hammering it from many goroutines must not
	// interfere across calls
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				pid, err := Syscall0(sysnum.SYS_GETPID)
				if err != 0 || int(pid) != unix.Getpid() {
					t.Errorf("getpid: pid=%d err=%v", pid, err)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
