//go:build linux && (amd64 || arm64)

// Package syscall issues raw Linux system calls without going through the
// runtime's syscall package or libc.
//
// x86-64 ABI/calling convention of syscall:
//
//	| register | usage    |
//	|----------|----------|
//	| rax      | call num | also holds the return value afterwards
//	| rdi      | 1st      |
//	| rsi      | 2nd      |
//	| rdx      | 3rd      |
//	| r10      | 4th      | !! 'rcx' for standard function calling
//	| r8       | 5th      |
//	| r9       | 6th      |
//
// the SYSCALL instruction itself stashes rip in rcx and rflags in r11, so
// the kernel transition repurposes the function-call convention's fourth
// argument register for its own bookkeeping and the fourth syscall argument
// has to move to r10. rcx and r11 are not restored when the kernel returns;
// the stubs declare nothing about their contents and callers must treat
// them as clobbered.
//
// arm64 is the easy case: call number in x8, arguments in x0-x5, SVC #0,
// result back in x0, nothing else touched.
//
// arguments past the sixth, and truly variadic syscalls, go through the
// stack-passing convention and are out of scope here - there is no Linux
// syscall that needs them.
//
// the raw return register is a signed machine word: >= 0 is the success
// payload (fd, byte count, ...), < 0 is a negated errno. there is no
// thread-local errno anywhere in this path.
package syscall

import (
	"github.com/carved4/go-lincall/pkg/errno"
)

// assembly trampolines, one per arity. bodies live in assembly_GOARCH.s.
// fixed arities instead of one variadic stub: the register binding differs
// structurally per argument count, and a variadic form would drag a slice
// header and a runtime switch into a path that must not allocate.

//go:noescape
func do_syscall0(num uintptr) uintptr

//go:noescape
func do_syscall1(num, a1 uintptr) uintptr

//go:noescape
func do_syscall2(num, a1, a2 uintptr) uintptr

//go:noescape
func do_syscall3(num, a1, a2, a3 uintptr) uintptr

//go:noescape
func do_syscall4(num, a1, a2, a3, a4 uintptr) uintptr

//go:noescape
func do_syscall5(num, a1, a2, a3, a4, a5 uintptr) uintptr

//go:noescape
func do_syscall6(num, a1, a2, a3, a4, a5, a6 uintptr) uintptr

// split classifies the raw return register. this is the only branch in the
// whole layer: negative means failure and the magnitude is the errno key,
// anything else is the success payload reinterpreted as unsigned.
func split(raw uintptr) (uintptr, errno.Errno) {
	if v := int64(raw); v < 0 {
		return 0, errno.Errno(-v)
	}
	return raw, 0
}

// Syscall0 invokes syscall num with no arguments. A zero Errno means
// success. The kernel does not validate num for us beyond returning
// ENOSYS through the ordinary failure path.
func Syscall0(num uintptr) (uintptr, errno.Errno) {
	return split(do_syscall0(num))
}

// Syscall1 invokes syscall num with one argument. Pointer arguments are
// passed as their raw bit pattern; keeping the pointed-to memory valid for
// whatever the specific syscall does with it is entirely the caller's
// problem - this layer has no idea what num expects.
func Syscall1(num, a1 uintptr) (uintptr, errno.Errno) {
	return split(do_syscall1(num, a1))
}

// Syscall2 invokes syscall num with two arguments.
func Syscall2(num, a1, a2 uintptr) (uintptr, errno.Errno) {
	return split(do_syscall2(num, a1, a2))
}

// Syscall3 invokes syscall num with three arguments.
func Syscall3(num, a1, a2, a3 uintptr) (uintptr, errno.Errno) {
	return split(do_syscall3(num, a1, a2, a3))
}

// Syscall4 invokes syscall num with four arguments. The fourth lands in
// r10 on amd64, not rcx.
func Syscall4(num, a1, a2, a3, a4 uintptr) (uintptr, errno.Errno) {
	return split(do_syscall4(num, a1, a2, a3, a4))
}

// Syscall5 invokes syscall num with five arguments.
func Syscall5(num, a1, a2, a3, a4, a5 uintptr) (uintptr, errno.Errno) {
	return split(do_syscall5(num, a1, a2, a3, a4, a5))
}

// Syscall6 invokes syscall num with six arguments, the most the register
// convention carries.
func Syscall6(num, a1, a2, a3, a4, a5, a6 uintptr) (uintptr, errno.Errno) {
	return split(do_syscall6(num, a1, a2, a3, a4, a5, a6))
}
