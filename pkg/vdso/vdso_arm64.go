//go:build linux && arm64

package vdso

// arm64 uses the __kernel_ prefix for its vDSO exports.
const clockGettimeSym = "__kernel_clock_gettime"
