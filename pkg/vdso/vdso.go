//go:build linux && (amd64 || arm64)

// Package vdso resolves the fast-path symbols the kernel maps into every
// process and calls them without a libc.
//
// the kernel hands every process a small prelinked ELF image (the vDSO)
// and advertises its base address in the auxiliary vector under
// AT_SYSINFO_EHDR. symbols in it (clock_gettime and friends) run entirely
// in user mode, skipping the kernel transition for the hot clock paths.
// since we never link a libc there is nobody to do this lookup for us:
// this package reads the aux vector with the raw trampoline, parses the
// in-memory ELF image, and hands back callable addresses.
package vdso

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/Binject/debug/elf"
	"github.com/ebitengine/purego"
	"github.com/pkg/errors"

	"github.com/carved4/go-lincall/pkg/errno"
	"github.com/carved4/go-lincall/pkg/syscall"
	"github.com/carved4/go-lincall/pkg/sysnum"
)

// AT_SYSINFO_EHDR tag in the aux vector.
const atSysinfoEhdr = 33

const (
	atFdcwd  = ^uintptr(99) // AT_FDCWD (-100)
	oRdonly  = 0x0
	oCloexec = 0x80000
)

// Clock ids for ClockGettime.
const (
	ClockRealtime  = 0
	ClockMonotonic = 1
)

// Timespec matches the kernel's struct timespec on 64-bit.
type Timespec struct {
	Sec  int64
	Nsec int64
}

var (
	initOnce sync.Once
	initErr  error
	symbols  map[string]uintptr
)

// image reads straight out of the mapped vDSO. every offset handed to it
// comes from the image's own ELF headers, so reads stay inside the mapping.
type image struct {
	base uintptr
}

func (m *image) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.New("negative offset into vdso image")
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(m.base+uintptr(off))), len(p))
	return copy(p, src), nil
}

// sysinfoEhdr finds the vDSO base address in this process's aux vector,
// read through our own trampoline so the package works in the same no-libc
// world as its callers.
func sysinfoEhdr() (uintptr, error) {
	path := []byte("/proc/self/auxv\x00")
	fd, e := syscall.Syscall4(sysnum.SYS_OPENAT, atFdcwd,
		uintptr(unsafe.Pointer(&path[0])), oRdonly|oCloexec, 0)
	runtime.KeepAlive(path)
	if e != 0 {
		return 0, errors.Wrap(e, "open /proc/self/auxv")
	}
	defer syscall.Syscall1(sysnum.SYS_CLOSE, fd)

	// the aux vector is a short run of (tag, value) word pairs ending
	// with AT_NULL. one page of pairs is far more than any kernel emits.
	var aux [256]uintptr
	n, e := syscall.Syscall3(sysnum.SYS_READ, fd,
		uintptr(unsafe.Pointer(&aux[0])), unsafe.Sizeof(aux))
	if e != 0 {
		return 0, errors.Wrap(e, "read /proc/self/auxv")
	}

	words := int(n / unsafe.Sizeof(uintptr(0)))
	for i := 0; i+1 < words; i += 2 {
		if aux[i] == atSysinfoEhdr {
			return aux[i+1], nil
		}
	}
	return 0, errors.New("no AT_SYSINFO_EHDR in auxv")
}

// load parses the vDSO once and builds the symbol table. the image is
// prelinked at a link-time base of zero, so the usable address of a symbol
// is its st_value slid by the difference between the mapped base and the
// first PT_LOAD vaddr.
func load() {
	base, err := sysinfoEhdr()
	if err != nil {
		initErr = err
		return
	}

	f, err := elf.NewFile(&image{base: base})
	if err != nil {
		initErr = errors.Wrap(err, "parse vdso image")
		return
	}

	var slide uintptr
	found := false
	for _, p := range f.Progs {
		if p.Type == elf.PT_LOAD {
			slide = base + uintptr(p.Off) - uintptr(p.Vaddr)
			found = true
			break
		}
	}
	if !found {
		initErr = errors.New("vdso image has no PT_LOAD segment")
		return
	}

	syms, err := f.DynamicSymbols()
	if err != nil {
		initErr = errors.Wrap(err, "read vdso dynamic symbols")
		return
	}

	table := make(map[string]uintptr, len(syms))
	for _, s := range syms {
		if s.Value == 0 || s.Name == "" {
			continue
		}
		table[s.Name] = slide + uintptr(s.Value)
	}
	symbols = table
}

// Resolve returns the absolute address of a vDSO symbol, e.g.
// "__vdso_clock_gettime" on amd64 or "__kernel_clock_gettime" on arm64.
// The address stays valid for the life of the process.
func Resolve(name string) (uintptr, error) {
	initOnce.Do(load)
	if initErr != nil {
		return 0, initErr
	}
	addr, ok := symbols[name]
	if !ok {
		return 0, errors.Errorf("symbol %q not exported by vdso", name)
	}
	return addr, nil
}

var (
	clockOnce sync.Once
	clockAddr uintptr
)

// ClockGettime reads a kernel clock, through the vDSO fast path when it is
// available and through the ordinary trampoline otherwise. ts must point
// at writable memory.
func ClockGettime(clockid uintptr, ts *Timespec) errno.Errno {
	clockOnce.Do(func() {
		addr, err := Resolve(clockGettimeSym)
		if err == nil {
			clockAddr = addr
		}
	})

	if clockAddr != 0 {
		r1, _, _ := purego.SyscallN(clockAddr, clockid, uintptr(unsafe.Pointer(ts)))
		// the vdso function returns a C int: 0 or a negated errno.
		if v := int32(uint32(r1)); v < 0 {
			return errno.Errno(-v)
		}
		return 0
	}

	_, e := clockViaTrampoline(clockid, ts)
	return e
}

// clockViaTrampoline is the ordinary syscall path, used when the vDSO is
// unavailable (static SELinux-ish setups, stripped images).
func clockViaTrampoline(clockid uintptr, ts *Timespec) (uintptr, errno.Errno) {
	return syscall.Syscall2(sysnum.SYS_CLOCK_GETTIME, clockid, uintptr(unsafe.Pointer(ts)))
}
