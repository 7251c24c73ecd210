//go:build linux && amd64

package sysnum

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestLegacyNamesOnAmd64(t *testing.T) {
	legacy := map[string]uintptr{
		"open":   unix.SYS_OPEN,
		"dup2":   unix.SYS_DUP2,
		"fork":   unix.SYS_FORK,
		"rename": unix.SYS_RENAME,
		"unlink": unix.SYS_UNLINK,
	}
	for name, want := range legacy {
		got, ok := Lookup(name)
		require.True(t, ok, name)
		require.Equal(t, want, got, name)
	}
}
