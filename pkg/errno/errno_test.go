package errno

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestAliases(t *testing.T) {
	require.Equal(t, EAGAIN, EWOULDBLOCK)
	require.Equal(t, EDEADLK, EDEADLOCK)

	// the aliases are the same tag, so they render under the canonical name
	require.Equal(t, "EAGAIN", EWOULDBLOCK.Name())
	require.Equal(t, "EDEADLK", EDEADLOCK.Name())
}

func TestTableIsTotalOverMembers(t *testing.T) {
	count := 0
	for code := Errno(1); code <= Max; code++ {
		if !code.Valid() {
			continue
		}
		count++
		require.NotEmpty(t, code.Name(), "code %d", code)
		require.NotEmpty(t, messages[code], "code %d", code)
		got, ok := FromCode(uintptr(code))
		require.True(t, ok)
		require.Equal(t, code, got)
	}
	// 133 slots minus the two retired holes
	require.Equal(t, 131, count)
}

func TestRetiredSlotsStayHoles(t *testing.T) {
	for _, code := range []Errno{41, 58} {
		require.False(t, code.Valid())
		require.Empty(t, code.Name())
		_, ok := FromCode(uintptr(code))
		require.False(t, ok)
		require.Contains(t, code.Error(), "unrecognized")
	}
}

func TestUnrecognizedCodes(t *testing.T) {
	for _, code := range []Errno{0, 134, 200, 4096} {
		require.False(t, code.Valid())
		require.Contains(t, code.Error(), "unrecognized")
	}
	require.Equal(t, "errno 200 (unrecognized)", Errno(200).Error())
}

// the numbering must match the host kernel's exactly; x/sys/unix is the
// independent record of that numbering.
func TestValuesMatchHostKernel(t *testing.T) {
	pairs := []struct {
		ours   Errno
		theirs unix.Errno
	}{
		{EPERM, unix.EPERM},
		{ENOENT, unix.ENOENT},
		{EINTR, unix.EINTR},
		{EBADF, unix.EBADF},
		{EAGAIN, unix.EAGAIN},
		{ENOMEM, unix.ENOMEM},
		{EACCES, unix.EACCES},
		{EFAULT, unix.EFAULT},
		{EEXIST, unix.EEXIST},
		{EINVAL, unix.EINVAL},
		{ERANGE, unix.ERANGE},
		{EDEADLK, unix.EDEADLK},
		{ENOSYS, unix.ENOSYS},
		{ELOOP, unix.ELOOP},
		{ENOTSOCK, unix.ENOTSOCK},
		{EOPNOTSUPP, unix.EOPNOTSUPP},
		{EADDRINUSE, unix.EADDRINUSE},
		{ECONNREFUSED, unix.ECONNREFUSED},
		{ETIMEDOUT, unix.ETIMEDOUT},
		{EDQUOT, unix.EDQUOT},
		{ECANCELED, unix.ECANCELED},
		{EOWNERDEAD, unix.EOWNERDEAD},
		{EHWPOISON, unix.EHWPOISON},
		{EWOULDBLOCK, unix.EWOULDBLOCK},
		{EDEADLOCK, unix.EDEADLOCK},
	}
	for _, p := range pairs {
		require.Equal(t, uintptr(p.theirs), uintptr(p.ours), "%s", p.ours.Name())
	}
}

func TestErrorRendering(t *testing.T) {
	require.Equal(t, "ENOENT: no such file or directory", ENOENT.Error())
	require.Equal(t, "ENOSYS: function not implemented", ENOSYS.Error())

	// Errno satisfies error by value; no boxing surprises
	var err error = EIO
	require.EqualError(t, err, "EIO: input/output error")
}
