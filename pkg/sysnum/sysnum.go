//go:build linux && (amd64 || arm64)

// Package sysnum maps human-readable syscall names to the numeric
// identifiers the kernel dispatches on. The tables are per-architecture:
// amd64 keeps the historical x86-64 numbering while arm64 uses the
// asm-generic one, which never had the legacy calls (open, dup2, rename,
// ...) - only their *at successors exist there. A name missing from an
// architecture's table is simply absent, never mapped to a guessed number.
package sysnum

// Lookup returns the syscall number for a name like "openat" or "getpid"
// on the current architecture.
func Lookup(name string) (uintptr, bool) {
	num, ok := byName[name]
	return num, ok
}

// Names returns how many syscalls the current architecture's table knows.
// Mostly useful for sanity checks.
func Names() int {
	return len(byName)
}
