//go:build linux && (amd64 || arm64)

// Package lincall issues Linux system calls directly, without the runtime
// syscall package or a libc in between. The fixed-arity entry points in
// pkg/syscall are the core; everything here is a thin convenience layer
// over them.
package lincall

import (
	"runtime"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/carved4/go-lincall/pkg/errno"
	"github.com/carved4/go-lincall/pkg/syscall"
	"github.com/carved4/go-lincall/pkg/sysnum"
	"github.com/carved4/go-lincall/pkg/vdso"
)

// Errno is the kernel error code type. The zero value means success.
type Errno = errno.Errno

// Timespec is the kernel timespec layout used by ClockGettime.
type Timespec = vdso.Timespec

// fixed-arity raw entry points. the arity is part of the contract: each
// one binds exactly that many argument registers and nothing else.
var (
	Syscall0 = syscall.Syscall0
	Syscall1 = syscall.Syscall1
	Syscall2 = syscall.Syscall2
	Syscall3 = syscall.Syscall3
	Syscall4 = syscall.Syscall4
	Syscall5 = syscall.Syscall5
	Syscall6 = syscall.Syscall6
)

// name registry and vDSO fast paths.
var (
	Lookup       = sysnum.Lookup
	ResolveVDSO  = vdso.Resolve
	ClockGettime = vdso.ClockGettime
)

// clock ids for ClockGettime.
const (
	ClockRealtime  = vdso.ClockRealtime
	ClockMonotonic = vdso.ClockMonotonic
)

const (
	// AT_FDCWD, as the kernel wants it in a register.
	atFdcwd = ^uintptr(99)

	O_RDONLY  = 0x0
	O_WRONLY  = 0x1
	O_RDWR    = 0x2
	O_CREAT   = 0x40
	O_TRUNC   = 0x200
	O_CLOEXEC = 0x80000
)

// Call looks a syscall up by name and dispatches it onto the entry point
// matching the argument count. It exists for callers that address syscalls
// symbolically; anything on a hot path should hold the number and use the
// fixed-arity entry points directly.
func Call(name string, args ...uintptr) (uintptr, error) {
	num, ok := sysnum.Lookup(name)
	if !ok {
		return 0, errors.Errorf("unknown syscall %q on this architecture", name)
	}

	var (
		r uintptr
		e errno.Errno
	)
	switch len(args) {
	case 0:
		r, e = syscall.Syscall0(num)
	case 1:
		r, e = syscall.Syscall1(num, args[0])
	case 2:
		r, e = syscall.Syscall2(num, args[0], args[1])
	case 3:
		r, e = syscall.Syscall3(num, args[0], args[1], args[2])
	case 4:
		r, e = syscall.Syscall4(num, args[0], args[1], args[2], args[3])
	case 5:
		r, e = syscall.Syscall5(num, args[0], args[1], args[2], args[3], args[4])
	case 6:
		r, e = syscall.Syscall6(num, args[0], args[1], args[2], args[3], args[4], args[5])
	default:
		return 0, errors.Errorf("%s: %d arguments, the register convention carries at most six", name, len(args))
	}
	if e != 0 {
		return 0, e
	}
	return r, nil
}

// BytePtrFromString returns a pointer to a NUL-terminated copy of s, the
// shape the kernel expects for path arguments. The caller must keep the
// result reachable across the syscall (runtime.KeepAlive).
func BytePtrFromString(s string) (*byte, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return nil, errors.New("string contains a NUL byte")
		}
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0], nil
}

// Getpid returns the current process id. It cannot fail.
func Getpid() uintptr {
	pid, _ := syscall.Syscall0(sysnum.SYS_GETPID)
	return pid
}

// Open opens path via openat(AT_FDCWD, ...), which exists on both
// architectures (plain open never made it into the arm64 table).
func Open(path string, flags uintptr, mode uintptr) (uintptr, Errno) {
	p, err := BytePtrFromString(path)
	if err != nil {
		return 0, errno.EINVAL
	}
	fd, e := syscall.Syscall4(sysnum.SYS_OPENAT, atFdcwd,
		uintptr(unsafe.Pointer(p)), flags, mode)
	runtime.KeepAlive(p)
	return fd, e
}

// Read reads up to len(p) bytes from fd into p.
func Read(fd uintptr, p []byte) (uintptr, Errno) {
	var buf uintptr
	if len(p) > 0 {
		buf = uintptr(unsafe.Pointer(&p[0]))
	}
	n, e := syscall.Syscall3(sysnum.SYS_READ, fd, buf, uintptr(len(p)))
	runtime.KeepAlive(p)
	return n, e
}

// Write writes p to fd.
func Write(fd uintptr, p []byte) (uintptr, Errno) {
	var buf uintptr
	if len(p) > 0 {
		buf = uintptr(unsafe.Pointer(&p[0]))
	}
	n, e := syscall.Syscall3(sysnum.SYS_WRITE, fd, buf, uintptr(len(p)))
	runtime.KeepAlive(p)
	return n, e
}

// Close closes fd. The payload is 0 on success.
func Close(fd uintptr) Errno {
	_, e := syscall.Syscall1(sysnum.SYS_CLOSE, fd)
	return e
}
