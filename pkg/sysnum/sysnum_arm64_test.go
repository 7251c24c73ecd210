//go:build linux && arm64

package sysnum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// the generic table never had the legacy calls; the registry must report
// them as absent instead of guessing a number.
func TestLegacyNamesAbsentOnArm64(t *testing.T) {
	for _, name := range []string{"open", "dup2", "fork", "rename", "unlink", "pipe"} {
		_, ok := Lookup(name)
		require.False(t, ok, name)
	}

	for _, name := range []string{"openat", "dup3", "clone", "renameat", "unlinkat", "pipe2"} {
		_, ok := Lookup(name)
		require.True(t, ok, name)
	}
}
