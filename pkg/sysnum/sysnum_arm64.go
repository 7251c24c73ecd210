//go:build linux && arm64

package sysnum

// arm64 syscall numbers, from include/uapi/asm-generic/unistd.h. the
// generic table never carried open/dup2/rename/&co - use the *at forms.
const (
	SYS_GETCWD         = 17
	SYS_DUP            = 23
	SYS_DUP3           = 24
	SYS_FCNTL          = 25
	SYS_IOCTL          = 29
	SYS_FLOCK          = 32
	SYS_MKDIRAT        = 34
	SYS_UNLINKAT       = 35
	SYS_SYMLINKAT      = 36
	SYS_LINKAT         = 37
	SYS_RENAMEAT       = 38
	SYS_STATFS         = 43
	SYS_TRUNCATE       = 45
	SYS_FTRUNCATE      = 46
	SYS_FACCESSAT      = 48
	SYS_CHDIR          = 49
	SYS_FCHDIR         = 50
	SYS_FCHMOD         = 52
	SYS_FCHMODAT       = 53
	SYS_FCHOWNAT       = 54
	SYS_FCHOWN         = 55
	SYS_OPENAT         = 56
	SYS_CLOSE          = 57
	SYS_PIPE2          = 59
	SYS_GETDENTS64     = 61
	SYS_LSEEK          = 62
	SYS_READ           = 63
	SYS_WRITE          = 64
	SYS_READV          = 65
	SYS_WRITEV         = 66
	SYS_PREAD64        = 67
	SYS_PWRITE64       = 68
	SYS_SENDFILE       = 71
	SYS_PPOLL          = 73
	SYS_READLINKAT     = 78
	SYS_NEWFSTATAT     = 79
	SYS_FSTAT          = 80
	SYS_SYNC           = 81
	SYS_FSYNC          = 82
	SYS_FDATASYNC      = 83
	SYS_UTIMENSAT      = 88
	SYS_EXIT           = 93
	SYS_EXIT_GROUP     = 94
	SYS_WAITID         = 95
	SYS_FUTEX          = 98
	SYS_NANOSLEEP      = 101
	SYS_CLOCK_GETTIME  = 113
	SYS_CLOCK_GETRES   = 114
	SYS_SCHED_YIELD    = 124
	SYS_KILL           = 129
	SYS_TGKILL         = 131
	SYS_SIGALTSTACK    = 132
	SYS_RT_SIGACTION   = 134
	SYS_RT_SIGPROCMASK = 135
	SYS_RT_SIGRETURN   = 139
	SYS_TIMES          = 153
	SYS_SETPGID        = 154
	SYS_GETPGID        = 155
	SYS_GETSID         = 156
	SYS_SETSID         = 157
	SYS_UNAME          = 160
	SYS_GETRUSAGE      = 165
	SYS_UMASK          = 166
	SYS_GETTIMEOFDAY   = 169
	SYS_SETTIMEOFDAY   = 170
	SYS_GETPID         = 172
	SYS_GETPPID        = 173
	SYS_GETUID         = 174
	SYS_GETEUID        = 175
	SYS_GETGID         = 176
	SYS_GETEGID        = 177
	SYS_GETTID         = 178
	SYS_SYSINFO        = 179
	SYS_SOCKET         = 198
	SYS_SOCKETPAIR     = 199
	SYS_BIND           = 200
	SYS_LISTEN         = 201
	SYS_ACCEPT         = 202
	SYS_CONNECT        = 203
	SYS_GETSOCKNAME    = 204
	SYS_GETPEERNAME    = 205
	SYS_SENDTO         = 206
	SYS_RECVFROM       = 207
	SYS_SETSOCKOPT     = 208
	SYS_GETSOCKOPT     = 209
	SYS_SHUTDOWN       = 210
	SYS_SENDMSG        = 211
	SYS_RECVMSG        = 212
	SYS_BRK            = 214
	SYS_MUNMAP         = 215
	SYS_MREMAP         = 216
	SYS_CLONE          = 220
	SYS_EXECVE         = 221
	SYS_MMAP           = 222
	SYS_MPROTECT       = 226
	SYS_MSYNC          = 227
	SYS_MADVISE        = 233
	SYS_WAIT4          = 260
	SYS_PRLIMIT64      = 261
	SYS_GETRANDOM      = 278
	SYS_MEMFD_CREATE   = 279
)

var byName = map[string]uintptr{
	"getcwd":         SYS_GETCWD,
	"dup":            SYS_DUP,
	"dup3":           SYS_DUP3,
	"fcntl":          SYS_FCNTL,
	"ioctl":          SYS_IOCTL,
	"flock":          SYS_FLOCK,
	"mkdirat":        SYS_MKDIRAT,
	"unlinkat":       SYS_UNLINKAT,
	"symlinkat":      SYS_SYMLINKAT,
	"linkat":         SYS_LINKAT,
	"renameat":       SYS_RENAMEAT,
	"statfs":         SYS_STATFS,
	"truncate":       SYS_TRUNCATE,
	"ftruncate":      SYS_FTRUNCATE,
	"faccessat":      SYS_FACCESSAT,
	"chdir":          SYS_CHDIR,
	"fchdir":         SYS_FCHDIR,
	"fchmod":         SYS_FCHMOD,
	"fchmodat":       SYS_FCHMODAT,
	"fchownat":       SYS_FCHOWNAT,
	"fchown":         SYS_FCHOWN,
	"openat":         SYS_OPENAT,
	"close":          SYS_CLOSE,
	"pipe2":          SYS_PIPE2,
	"getdents64":     SYS_GETDENTS64,
	"lseek":          SYS_LSEEK,
	"read":           SYS_READ,
	"write":          SYS_WRITE,
	"readv":          SYS_READV,
	"writev":         SYS_WRITEV,
	"pread64":        SYS_PREAD64,
	"pwrite64":       SYS_PWRITE64,
	"sendfile":       SYS_SENDFILE,
	"ppoll":          SYS_PPOLL,
	"readlinkat":     SYS_READLINKAT,
	"newfstatat":     SYS_NEWFSTATAT,
	"fstat":          SYS_FSTAT,
	"sync":           SYS_SYNC,
	"fsync":          SYS_FSYNC,
	"fdatasync":      SYS_FDATASYNC,
	"utimensat":      SYS_UTIMENSAT,
	"exit":           SYS_EXIT,
	"exit_group":     SYS_EXIT_GROUP,
	"waitid":         SYS_WAITID,
	"futex":          SYS_FUTEX,
	"nanosleep":      SYS_NANOSLEEP,
	"clock_gettime":  SYS_CLOCK_GETTIME,
	"clock_getres":   SYS_CLOCK_GETRES,
	"sched_yield":    SYS_SCHED_YIELD,
	"kill":           SYS_KILL,
	"tgkill":         SYS_TGKILL,
	"sigaltstack":    SYS_SIGALTSTACK,
	"rt_sigaction":   SYS_RT_SIGACTION,
	"rt_sigprocmask": SYS_RT_SIGPROCMASK,
	"rt_sigreturn":   SYS_RT_SIGRETURN,
	"times":          SYS_TIMES,
	"setpgid":        SYS_SETPGID,
	"getpgid":        SYS_GETPGID,
	"getsid":         SYS_GETSID,
	"setsid":         SYS_SETSID,
	"uname":          SYS_UNAME,
	"getrusage":      SYS_GETRUSAGE,
	"umask":          SYS_UMASK,
	"gettimeofday":   SYS_GETTIMEOFDAY,
	"settimeofday":   SYS_SETTIMEOFDAY,
	"getpid":         SYS_GETPID,
	"getppid":        SYS_GETPPID,
	"getuid":         SYS_GETUID,
	"geteuid":        SYS_GETEUID,
	"getgid":         SYS_GETGID,
	"getegid":        SYS_GETEGID,
	"gettid":         SYS_GETTID,
	"sysinfo":        SYS_SYSINFO,
	"socket":         SYS_SOCKET,
	"socketpair":     SYS_SOCKETPAIR,
	"bind":           SYS_BIND,
	"listen":         SYS_LISTEN,
	"accept":         SYS_ACCEPT,
	"connect":        SYS_CONNECT,
	"getsockname":    SYS_GETSOCKNAME,
	"getpeername":    SYS_GETPEERNAME,
	"sendto":         SYS_SENDTO,
	"recvfrom":       SYS_RECVFROM,
	"setsockopt":     SYS_SETSOCKOPT,
	"getsockopt":     SYS_GETSOCKOPT,
	"shutdown":       SYS_SHUTDOWN,
	"sendmsg":        SYS_SENDMSG,
	"recvmsg":        SYS_RECVMSG,
	"brk":            SYS_BRK,
	"munmap":         SYS_MUNMAP,
	"mremap":         SYS_MREMAP,
	"clone":          SYS_CLONE,
	"execve":         SYS_EXECVE,
	"mmap":           SYS_MMAP,
	"mprotect":       SYS_MPROTECT,
	"msync":          SYS_MSYNC,
	"madvise":        SYS_MADVISE,
	"wait4":          SYS_WAIT4,
	"prlimit64":      SYS_PRLIMIT64,
	"getrandom":      SYS_GETRANDOM,
	"memfd_create":   SYS_MEMFD_CREATE,
}
