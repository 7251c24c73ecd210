//go:build linux && amd64

package vdso

// amd64 exports its vDSO symbols under the __vdso_ prefix (the versioned
// LINUX_2.6 names alias them).
const clockGettimeSym = "__vdso_clock_gettime"
