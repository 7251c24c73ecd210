//go:build linux && amd64

package sysnum

// x86-64 syscall numbers, from arch/x86/entry/syscalls/syscall_64.tbl.
const (
	SYS_READ           = 0
	SYS_WRITE          = 1
	SYS_OPEN           = 2
	SYS_CLOSE          = 3
	SYS_STAT           = 4
	SYS_FSTAT          = 5
	SYS_LSTAT          = 6
	SYS_POLL           = 7
	SYS_LSEEK          = 8
	SYS_MMAP           = 9
	SYS_MPROTECT       = 10
	SYS_MUNMAP         = 11
	SYS_BRK            = 12
	SYS_RT_SIGACTION   = 13
	SYS_RT_SIGPROCMASK = 14
	SYS_RT_SIGRETURN   = 15
	SYS_IOCTL          = 16
	SYS_PREAD64        = 17
	SYS_PWRITE64       = 18
	SYS_READV          = 19
	SYS_WRITEV         = 20
	SYS_ACCESS         = 21
	SYS_PIPE           = 22
	SYS_SELECT         = 23
	SYS_SCHED_YIELD    = 24
	SYS_MREMAP         = 25
	SYS_MSYNC          = 26
	SYS_MINCORE        = 27
	SYS_MADVISE        = 28
	SYS_DUP            = 32
	SYS_DUP2           = 33
	SYS_PAUSE          = 34
	SYS_NANOSLEEP      = 35
	SYS_GETITIMER      = 36
	SYS_ALARM          = 37
	SYS_SETITIMER      = 38
	SYS_GETPID         = 39
	SYS_SENDFILE       = 40
	SYS_SOCKET         = 41
	SYS_CONNECT        = 42
	SYS_ACCEPT         = 43
	SYS_SENDTO         = 44
	SYS_RECVFROM       = 45
	SYS_SENDMSG        = 46
	SYS_RECVMSG        = 47
	SYS_SHUTDOWN       = 48
	SYS_BIND           = 49
	SYS_LISTEN         = 50
	SYS_GETSOCKNAME    = 51
	SYS_GETPEERNAME    = 52
	SYS_SOCKETPAIR     = 53
	SYS_SETSOCKOPT     = 54
	SYS_GETSOCKOPT     = 55
	SYS_CLONE          = 56
	SYS_FORK           = 57
	SYS_VFORK          = 58
	SYS_EXECVE         = 59
	SYS_EXIT           = 60
	SYS_WAIT4          = 61
	SYS_KILL           = 62
	SYS_UNAME          = 63
	SYS_FCNTL          = 72
	SYS_FLOCK          = 73
	SYS_FSYNC          = 74
	SYS_FDATASYNC      = 75
	SYS_TRUNCATE       = 76
	SYS_FTRUNCATE      = 77
	SYS_GETDENTS       = 78
	SYS_GETCWD         = 79
	SYS_CHDIR          = 80
	SYS_FCHDIR         = 81
	SYS_RENAME         = 82
	SYS_MKDIR          = 83
	SYS_RMDIR          = 84
	SYS_CREAT          = 85
	SYS_LINK           = 86
	SYS_UNLINK         = 87
	SYS_SYMLINK        = 88
	SYS_READLINK       = 89
	SYS_CHMOD          = 90
	SYS_FCHMOD         = 91
	SYS_CHOWN          = 92
	SYS_FCHOWN         = 93
	SYS_UMASK          = 95
	SYS_GETTIMEOFDAY   = 96
	SYS_GETRLIMIT      = 97
	SYS_GETRUSAGE      = 98
	SYS_SYSINFO        = 99
	SYS_TIMES          = 100
	SYS_GETUID         = 102
	SYS_GETGID         = 104
	SYS_GETEUID        = 107
	SYS_GETEGID        = 108
	SYS_SETPGID        = 109
	SYS_GETPPID        = 110
	SYS_GETPGRP        = 111
	SYS_SETSID         = 112
	SYS_GETSID         = 124
	SYS_SETTIMEOFDAY   = 164
	SYS_GETTID         = 186
	SYS_FUTEX          = 202
	SYS_GETDENTS64     = 217
	SYS_CLOCK_GETTIME  = 228
	SYS_CLOCK_GETRES   = 229
	SYS_EXIT_GROUP     = 231
	SYS_TGKILL         = 234
	SYS_OPENAT         = 257
	SYS_MKDIRAT        = 258
	SYS_NEWFSTATAT     = 262
	SYS_UNLINKAT       = 263
	SYS_READLINKAT     = 267
	SYS_FACCESSAT      = 269
	SYS_DUP3           = 292
	SYS_PIPE2          = 293
	SYS_PRLIMIT64      = 302
	SYS_GETRANDOM      = 318
	SYS_MEMFD_CREATE   = 319
)

var byName = map[string]uintptr{
	"read":           SYS_READ,
	"write":          SYS_WRITE,
	"open":           SYS_OPEN,
	"close":          SYS_CLOSE,
	"stat":           SYS_STAT,
	"fstat":          SYS_FSTAT,
	"lstat":          SYS_LSTAT,
	"poll":           SYS_POLL,
	"lseek":          SYS_LSEEK,
	"mmap":           SYS_MMAP,
	"mprotect":       SYS_MPROTECT,
	"munmap":         SYS_MUNMAP,
	"brk":            SYS_BRK,
	"rt_sigaction":   SYS_RT_SIGACTION,
	"rt_sigprocmask": SYS_RT_SIGPROCMASK,
	"rt_sigreturn":   SYS_RT_SIGRETURN,
	"ioctl":          SYS_IOCTL,
	"pread64":        SYS_PREAD64,
	"pwrite64":       SYS_PWRITE64,
	"readv":          SYS_READV,
	"writev":         SYS_WRITEV,
	"access":         SYS_ACCESS,
	"pipe":           SYS_PIPE,
	"select":         SYS_SELECT,
	"sched_yield":    SYS_SCHED_YIELD,
	"mremap":         SYS_MREMAP,
	"msync":          SYS_MSYNC,
	"mincore":        SYS_MINCORE,
	"madvise":        SYS_MADVISE,
	"dup":            SYS_DUP,
	"dup2":           SYS_DUP2,
	"pause":          SYS_PAUSE,
	"nanosleep":      SYS_NANOSLEEP,
	"getitimer":      SYS_GETITIMER,
	"alarm":          SYS_ALARM,
	"setitimer":      SYS_SETITIMER,
	"getpid":         SYS_GETPID,
	"sendfile":       SYS_SENDFILE,
	"socket":         SYS_SOCKET,
	"connect":        SYS_CONNECT,
	"accept":         SYS_ACCEPT,
	"sendto":         SYS_SENDTO,
	"recvfrom":       SYS_RECVFROM,
	"sendmsg":        SYS_SENDMSG,
	"recvmsg":        SYS_RECVMSG,
	"shutdown":       SYS_SHUTDOWN,
	"bind":           SYS_BIND,
	"listen":         SYS_LISTEN,
	"getsockname":    SYS_GETSOCKNAME,
	"getpeername":    SYS_GETPEERNAME,
	"socketpair":     SYS_SOCKETPAIR,
	"setsockopt":     SYS_SETSOCKOPT,
	"getsockopt":     SYS_GETSOCKOPT,
	"clone":          SYS_CLONE,
	"fork":           SYS_FORK,
	"vfork":          SYS_VFORK,
	"execve":         SYS_EXECVE,
	"exit":           SYS_EXIT,
	"wait4":          SYS_WAIT4,
	"kill":           SYS_KILL,
	"uname":          SYS_UNAME,
	"fcntl":          SYS_FCNTL,
	"flock":          SYS_FLOCK,
	"fsync":          SYS_FSYNC,
	"fdatasync":      SYS_FDATASYNC,
	"truncate":       SYS_TRUNCATE,
	"ftruncate":      SYS_FTRUNCATE,
	"getdents":       SYS_GETDENTS,
	"getcwd":         SYS_GETCWD,
	"chdir":          SYS_CHDIR,
	"fchdir":         SYS_FCHDIR,
	"rename":         SYS_RENAME,
	"mkdir":          SYS_MKDIR,
	"rmdir":          SYS_RMDIR,
	"creat":          SYS_CREAT,
	"link":           SYS_LINK,
	"unlink":         SYS_UNLINK,
	"symlink":        SYS_SYMLINK,
	"readlink":       SYS_READLINK,
	"chmod":          SYS_CHMOD,
	"fchmod":         SYS_FCHMOD,
	"chown":          SYS_CHOWN,
	"fchown":         SYS_FCHOWN,
	"umask":          SYS_UMASK,
	"gettimeofday":   SYS_GETTIMEOFDAY,
	"getrlimit":      SYS_GETRLIMIT,
	"getrusage":      SYS_GETRUSAGE,
	"sysinfo":        SYS_SYSINFO,
	"times":          SYS_TIMES,
	"getuid":         SYS_GETUID,
	"getgid":         SYS_GETGID,
	"geteuid":        SYS_GETEUID,
	"getegid":        SYS_GETEGID,
	"setpgid":        SYS_SETPGID,
	"getppid":        SYS_GETPPID,
	"getpgrp":        SYS_GETPGRP,
	"setsid":         SYS_SETSID,
	"getsid":         SYS_GETSID,
	"settimeofday":   SYS_SETTIMEOFDAY,
	"gettid":         SYS_GETTID,
	"futex":          SYS_FUTEX,
	"getdents64":     SYS_GETDENTS64,
	"clock_gettime":  SYS_CLOCK_GETTIME,
	"clock_getres":   SYS_CLOCK_GETRES,
	"exit_group":     SYS_EXIT_GROUP,
	"tgkill":         SYS_TGKILL,
	"openat":         SYS_OPENAT,
	"mkdirat":        SYS_MKDIRAT,
	"newfstatat":     SYS_NEWFSTATAT,
	"unlinkat":       SYS_UNLINKAT,
	"readlinkat":     SYS_READLINKAT,
	"faccessat":      SYS_FACCESSAT,
	"dup3":           SYS_DUP3,
	"pipe2":          SYS_PIPE2,
	"prlimit64":      SYS_PRLIMIT64,
	"getrandom":      SYS_GETRANDOM,
	"memfd_create":   SYS_MEMFD_CREATE,
}
