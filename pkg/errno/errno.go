// Package errno carries the Linux errno numbering as a closed, typed set.
//
// when a syscall fails, the kernel places the negated error code in the
// return register. there is no libc between us and the kernel, so there is
// no thread-local `errno` variable either - the only place the code ever
// exists is the return value of the trampoline, and this package is how
// that number gets a name.
//
// the numbering follows the kernel's asm-generic set (errno-base.h for
// 1-34, errno.h for 35-133). slots 41 and 58 were retired upstream and are
// intentionally absent here; they must stay holes, not zero-filled members.
package errno

import "strconv"

// Errno is a kernel error code as reported in the syscall return register.
// The zero value means "no error" and is never a table member. Values are
// small constant tags; copy them freely.
type Errno uintptr

// Values from include/uapi/asm-generic/errno-base.h.
const (
	EPERM   Errno = 1  /* Operation not permitted */
	ENOENT  Errno = 2  /* No such file or directory */
	ESRCH   Errno = 3  /* No such process */
	EINTR   Errno = 4  /* Interrupted system call */
	EIO     Errno = 5  /* I/O error */
	ENXIO   Errno = 6  /* No such device or address */
	E2BIG   Errno = 7  /* Argument list too long */
	ENOEXEC Errno = 8  /* Exec format error */
	EBADF   Errno = 9  /* Bad file number */
	ECHILD  Errno = 10 /* No child processes */
	EAGAIN  Errno = 11 /* Try again */
	ENOMEM  Errno = 12 /* Out of memory */
	EACCES  Errno = 13 /* Permission denied */
	EFAULT  Errno = 14 /* Bad address */
	ENOTBLK Errno = 15 /* Block device required */
	EBUSY   Errno = 16 /* Device or resource busy */
	EEXIST  Errno = 17 /* File exists */
	EXDEV   Errno = 18 /* Cross-device link */
	ENODEV  Errno = 19 /* No such device */
	ENOTDIR Errno = 20 /* Not a directory */
	EISDIR  Errno = 21 /* Is a directory */
	EINVAL  Errno = 22 /* Invalid argument */
	ENFILE  Errno = 23 /* File table overflow */
	EMFILE  Errno = 24 /* Too many open files */
	ENOTTY  Errno = 25 /* Not a typewriter */
	ETXTBSY Errno = 26 /* Text file busy */
	EFBIG   Errno = 27 /* File too large */
	ENOSPC  Errno = 28 /* No space left on device */
	ESPIPE  Errno = 29 /* Illegal seek */
	EROFS   Errno = 30 /* Read-only file system */
	EMLINK  Errno = 31 /* Too many links */
	EPIPE   Errno = 32 /* Broken pipe */
	EDOM    Errno = 33 /* Math argument out of domain of func */
	ERANGE  Errno = 34 /* Math result not representable */
)

// Values from include/uapi/asm-generic/errno.h. 41 (was EAGAIN's duplicate
// slot) and 58 are reserved holes in the kernel numbering.
const (
	EDEADLK      Errno = 35 /* Resource deadlock would occur */
	ENAMETOOLONG Errno = 36 /* File name too long */
	ENOLCK       Errno = 37 /* No record locks available */

	// ENOSYS is what the arch syscall entry code returns for a syscall
	// number the kernel does not implement. well-behaved syscalls avoid
	// returning it themselves so the two cases stay distinguishable.
	ENOSYS Errno = 38 /* Invalid system call number */

	ENOTEMPTY       Errno = 39  /* Directory not empty */
	ELOOP           Errno = 40  /* Too many symbolic links encountered */
	ENOMSG          Errno = 42  /* No message of desired type */
	EIDRM           Errno = 43  /* Identifier removed */
	ECHRNG          Errno = 44  /* Channel number out of range */
	EL2NSYNC        Errno = 45  /* Level 2 not synchronized */
	EL3HLT          Errno = 46  /* Level 3 halted */
	EL3RST          Errno = 47  /* Level 3 reset */
	ELNRNG          Errno = 48  /* Link number out of range */
	EUNATCH         Errno = 49  /* Protocol driver not attached */
	ENOCSI          Errno = 50  /* No CSI structure available */
	EL2HLT          Errno = 51  /* Level 2 halted */
	EBADE           Errno = 52  /* Invalid exchange */
	EBADR           Errno = 53  /* Invalid request descriptor */
	EXFULL          Errno = 54  /* Exchange full */
	ENOANO          Errno = 55  /* No anode */
	EBADRQC         Errno = 56  /* Invalid request code */
	EBADSLT         Errno = 57  /* Invalid slot */
	EBFONT          Errno = 59  /* Bad font file format */
	ENOSTR          Errno = 60  /* Device not a stream */
	ENODATA         Errno = 61  /* No data available */
	ETIME           Errno = 62  /* Timer expired */
	ENOSR           Errno = 63  /* Out of streams resources */
	ENONET          Errno = 64  /* Machine is not on the network */
	ENOPKG          Errno = 65  /* Package not installed */
	EREMOTE         Errno = 66  /* Object is remote */
	ENOLINK         Errno = 67  /* Link has been severed */
	EADV            Errno = 68  /* Advertise error */
	ESRMNT          Errno = 69  /* Srmount error */
	ECOMM           Errno = 70  /* Communication error on send */
	EPROTO          Errno = 71  /* Protocol error */
	EMULTIHOP       Errno = 72  /* Multihop attempted */
	EDOTDOT         Errno = 73  /* RFS specific error */
	EBADMSG         Errno = 74  /* Not a data message */
	EOVERFLOW       Errno = 75  /* Value too large for defined data type */
	ENOTUNIQ        Errno = 76  /* Name not unique on network */
	EBADFD          Errno = 77  /* File descriptor in bad state */
	EREMCHG         Errno = 78  /* Remote address changed */
	ELIBACC         Errno = 79  /* Can not access a needed shared library */
	ELIBBAD         Errno = 80  /* Accessing a corrupted shared library */
	ELIBSCN         Errno = 81  /* .lib section in a.out corrupted */
	ELIBMAX         Errno = 82  /* Attempting to link in too many shared libraries */
	ELIBEXEC        Errno = 83  /* Cannot exec a shared library directly */
	EILSEQ          Errno = 84  /* Illegal byte sequence */
	ERESTART        Errno = 85  /* Interrupted system call should be restarted */
	ESTRPIPE        Errno = 86  /* Streams pipe error */
	EUSERS          Errno = 87  /* Too many users */
	ENOTSOCK        Errno = 88  /* Socket operation on non-socket */
	EDESTADDRREQ    Errno = 89  /* Destination address required */
	EMSGSIZE        Errno = 90  /* Message too long */
	EPROTOTYPE      Errno = 91  /* Protocol wrong type for socket */
	ENOPROTOOPT     Errno = 92  /* Protocol not available */
	EPROTONOSUPPORT Errno = 93  /* Protocol not supported */
	ESOCKTNOSUPPORT Errno = 94  /* Socket type not supported */
	EOPNOTSUPP      Errno = 95  /* Operation not supported on transport endpoint */
	EPFNOSUPPORT    Errno = 96  /* Protocol family not supported */
	EAFNOSUPPORT    Errno = 97  /* Address family not supported by protocol */
	EADDRINUSE      Errno = 98  /* Address already in use */
	EADDRNOTAVAIL   Errno = 99  /* Cannot assign requested address */
	ENETDOWN        Errno = 100 /* Network is down */
	ENETUNREACH     Errno = 101 /* Network is unreachable */
	ENETRESET       Errno = 102 /* Network dropped connection because of reset */
	ECONNABORTED    Errno = 103 /* Software caused connection abort */
	ECONNRESET      Errno = 104 /* Connection reset by peer */
	ENOBUFS         Errno = 105 /* No buffer space available */
	EISCONN         Errno = 106 /* Transport endpoint is already connected */
	ENOTCONN        Errno = 107 /* Transport endpoint is not connected */
	ESHUTDOWN       Errno = 108 /* Cannot send after transport endpoint shutdown */
	ETOOMANYREFS    Errno = 109 /* Too many references: cannot splice */
	ETIMEDOUT       Errno = 110 /* Connection timed out */
	ECONNREFUSED    Errno = 111 /* Connection refused */
	EHOSTDOWN       Errno = 112 /* Host is down */
	EHOSTUNREACH    Errno = 113 /* No route to host */
	EALREADY        Errno = 114 /* Operation already in progress */
	EINPROGRESS     Errno = 115 /* Operation now in progress */
	ESTALE          Errno = 116 /* Stale file handle */
	EUCLEAN         Errno = 117 /* Structure needs cleaning */
	ENOTNAM         Errno = 118 /* Not a XENIX named type file */
	ENAVAIL         Errno = 119 /* No XENIX semaphores available */
	EISNAM          Errno = 120 /* Is a named type file */
	EREMOTEIO       Errno = 121 /* Remote I/O error */
	EDQUOT          Errno = 122 /* Quota exceeded */
	ENOMEDIUM       Errno = 123 /* No medium found */
	EMEDIUMTYPE     Errno = 124 /* Wrong medium type */
	ECANCELED       Errno = 125 /* Operation Canceled */
	ENOKEY          Errno = 126 /* Required key not available */
	EKEYEXPIRED     Errno = 127 /* Key has expired */
	EKEYREVOKED     Errno = 128 /* Key has been revoked */
	EKEYREJECTED    Errno = 129 /* Key was rejected by service */

	/* for robust mutexes */
	EOWNERDEAD      Errno = 130 /* Owner died */
	ENOTRECOVERABLE Errno = 131 /* State not recoverable */

	ERFKILL   Errno = 132 /* Operation not possible due to RF-kill */
	EHWPOISON Errno = 133 /* Memory page has hardware error */
)

// Aliases. These are the same constants as their canonical names, not
// distinct members, so numeric comparison behaves identically either way.
const (
	EWOULDBLOCK = EAGAIN  /* Operation would block */
	EDEADLOCK   = EDEADLK /* Resource deadlock would occur */
)

// Max is the highest code in the table.
const Max Errno = EHWPOISON

var names = [Max + 1]string{
	EPERM:           "EPERM",
	ENOENT:          "ENOENT",
	ESRCH:           "ESRCH",
	EINTR:           "EINTR",
	EIO:             "EIO",
	ENXIO:           "ENXIO",
	E2BIG:           "E2BIG",
	ENOEXEC:         "ENOEXEC",
	EBADF:           "EBADF",
	ECHILD:          "ECHILD",
	EAGAIN:          "EAGAIN",
	ENOMEM:          "ENOMEM",
	EACCES:          "EACCES",
	EFAULT:          "EFAULT",
	ENOTBLK:         "ENOTBLK",
	EBUSY:           "EBUSY",
	EEXIST:          "EEXIST",
	EXDEV:           "EXDEV",
	ENODEV:          "ENODEV",
	ENOTDIR:         "ENOTDIR",
	EISDIR:          "EISDIR",
	EINVAL:          "EINVAL",
	ENFILE:          "ENFILE",
	EMFILE:          "EMFILE",
	ENOTTY:          "ENOTTY",
	ETXTBSY:         "ETXTBSY",
	EFBIG:           "EFBIG",
	ENOSPC:          "ENOSPC",
	ESPIPE:          "ESPIPE",
	EROFS:           "EROFS",
	EMLINK:          "EMLINK",
	EPIPE:           "EPIPE",
	EDOM:            "EDOM",
	ERANGE:          "ERANGE",
	EDEADLK:         "EDEADLK",
	ENAMETOOLONG:    "ENAMETOOLONG",
	ENOLCK:          "ENOLCK",
	ENOSYS:          "ENOSYS",
	ENOTEMPTY:       "ENOTEMPTY",
	ELOOP:           "ELOOP",
	ENOMSG:          "ENOMSG",
	EIDRM:           "EIDRM",
	ECHRNG:          "ECHRNG",
	EL2NSYNC:        "EL2NSYNC",
	EL3HLT:          "EL3HLT",
	EL3RST:          "EL3RST",
	ELNRNG:          "ELNRNG",
	EUNATCH:         "EUNATCH",
	ENOCSI:          "ENOCSI",
	EL2HLT:          "EL2HLT",
	EBADE:           "EBADE",
	EBADR:           "EBADR",
	EXFULL:          "EXFULL",
	ENOANO:          "ENOANO",
	EBADRQC:         "EBADRQC",
	EBADSLT:         "EBADSLT",
	EBFONT:          "EBFONT",
	ENOSTR:          "ENOSTR",
	ENODATA:         "ENODATA",
	ETIME:           "ETIME",
	ENOSR:           "ENOSR",
	ENONET:          "ENONET",
	ENOPKG:          "ENOPKG",
	EREMOTE:         "EREMOTE",
	ENOLINK:         "ENOLINK",
	EADV:            "EADV",
	ESRMNT:          "ESRMNT",
	ECOMM:           "ECOMM",
	EPROTO:          "EPROTO",
	EMULTIHOP:       "EMULTIHOP",
	EDOTDOT:         "EDOTDOT",
	EBADMSG:         "EBADMSG",
	EOVERFLOW:       "EOVERFLOW",
	ENOTUNIQ:        "ENOTUNIQ",
	EBADFD:          "EBADFD",
	EREMCHG:         "EREMCHG",
	ELIBACC:         "ELIBACC",
	ELIBBAD:         "ELIBBAD",
	ELIBSCN:         "ELIBSCN",
	ELIBMAX:         "ELIBMAX",
	ELIBEXEC:        "ELIBEXEC",
	EILSEQ:          "EILSEQ",
	ERESTART:        "ERESTART",
	ESTRPIPE:        "ESTRPIPE",
	EUSERS:          "EUSERS",
	ENOTSOCK:        "ENOTSOCK",
	EDESTADDRREQ:    "EDESTADDRREQ",
	EMSGSIZE:        "EMSGSIZE",
	EPROTOTYPE:      "EPROTOTYPE",
	ENOPROTOOPT:     "ENOPROTOOPT",
	EPROTONOSUPPORT: "EPROTONOSUPPORT",
	ESOCKTNOSUPPORT: "ESOCKTNOSUPPORT",
	EOPNOTSUPP:      "EOPNOTSUPP",
	EPFNOSUPPORT:    "EPFNOSUPPORT",
	EAFNOSUPPORT:    "EAFNOSUPPORT",
	EADDRINUSE:      "EADDRINUSE",
	EADDRNOTAVAIL:   "EADDRNOTAVAIL",
	ENETDOWN:        "ENETDOWN",
	ENETUNREACH:     "ENETUNREACH",
	ENETRESET:       "ENETRESET",
	ECONNABORTED:    "ECONNABORTED",
	ECONNRESET:      "ECONNRESET",
	ENOBUFS:         "ENOBUFS",
	EISCONN:         "EISCONN",
	ENOTCONN:        "ENOTCONN",
	ESHUTDOWN:       "ESHUTDOWN",
	ETOOMANYREFS:    "ETOOMANYREFS",
	ETIMEDOUT:       "ETIMEDOUT",
	ECONNREFUSED:    "ECONNREFUSED",
	EHOSTDOWN:       "EHOSTDOWN",
	EHOSTUNREACH:    "EHOSTUNREACH",
	EALREADY:        "EALREADY",
	EINPROGRESS:     "EINPROGRESS",
	ESTALE:          "ESTALE",
	EUCLEAN:         "EUCLEAN",
	ENOTNAM:         "ENOTNAM",
	ENAVAIL:         "ENAVAIL",
	EISNAM:          "EISNAM",
	EREMOTEIO:       "EREMOTEIO",
	EDQUOT:          "EDQUOT",
	ENOMEDIUM:       "ENOMEDIUM",
	EMEDIUMTYPE:     "EMEDIUMTYPE",
	ECANCELED:       "ECANCELED",
	ENOKEY:          "ENOKEY",
	EKEYEXPIRED:     "EKEYEXPIRED",
	EKEYREVOKED:     "EKEYREVOKED",
	EKEYREJECTED:    "EKEYREJECTED",
	EOWNERDEAD:      "EOWNERDEAD",
	ENOTRECOVERABLE: "ENOTRECOVERABLE",
	ERFKILL:         "ERFKILL",
	EHWPOISON:       "EHWPOISON",
}

var messages = [Max + 1]string{
	EPERM:           "operation not permitted",
	ENOENT:          "no such file or directory",
	ESRCH:           "no such process",
	EINTR:           "interrupted system call",
	EIO:             "input/output error",
	ENXIO:           "no such device or address",
	E2BIG:           "argument list too long",
	ENOEXEC:         "exec format error",
	EBADF:           "bad file descriptor",
	ECHILD:          "no child processes",
	EAGAIN:          "resource temporarily unavailable",
	ENOMEM:          "cannot allocate memory",
	EACCES:          "permission denied",
	EFAULT:          "bad address",
	ENOTBLK:         "block device required",
	EBUSY:           "device or resource busy",
	EEXIST:          "file exists",
	EXDEV:           "invalid cross-device link",
	ENODEV:          "no such device",
	ENOTDIR:         "not a directory",
	EISDIR:          "is a directory",
	EINVAL:          "invalid argument",
	ENFILE:          "too many open files in system",
	EMFILE:          "too many open files",
	ENOTTY:          "inappropriate ioctl for device",
	ETXTBSY:         "text file busy",
	EFBIG:           "file too large",
	ENOSPC:          "no space left on device",
	ESPIPE:          "illegal seek",
	EROFS:           "read-only file system",
	EMLINK:          "too many links",
	EPIPE:           "broken pipe",
	EDOM:            "numerical argument out of domain",
	ERANGE:          "numerical result out of range",
	EDEADLK:         "resource deadlock avoided",
	ENAMETOOLONG:    "file name too long",
	ENOLCK:          "no locks available",
	ENOSYS:          "function not implemented",
	ENOTEMPTY:       "directory not empty",
	ELOOP:           "too many levels of symbolic links",
	ENOMSG:          "no message of desired type",
	EIDRM:           "identifier removed",
	ECHRNG:          "channel number out of range",
	EL2NSYNC:        "level 2 not synchronized",
	EL3HLT:          "level 3 halted",
	EL3RST:          "level 3 reset",
	ELNRNG:          "link number out of range",
	EUNATCH:         "protocol driver not attached",
	ENOCSI:          "no CSI structure available",
	EL2HLT:          "level 2 halted",
	EBADE:           "invalid exchange",
	EBADR:           "invalid request descriptor",
	EXFULL:          "exchange full",
	ENOANO:          "no anode",
	EBADRQC:         "invalid request code",
	EBADSLT:         "invalid slot",
	EBFONT:          "bad font file format",
	ENOSTR:          "device not a stream",
	ENODATA:         "no data available",
	ETIME:           "timer expired",
	ENOSR:           "out of streams resources",
	ENONET:          "machine is not on the network",
	ENOPKG:          "package not installed",
	EREMOTE:         "object is remote",
	ENOLINK:         "link has been severed",
	EADV:            "advertise error",
	ESRMNT:          "srmount error",
	ECOMM:           "communication error on send",
	EPROTO:          "protocol error",
	EMULTIHOP:       "multihop attempted",
	EDOTDOT:         "RFS specific error",
	EBADMSG:         "bad message",
	EOVERFLOW:       "value too large for defined data type",
	ENOTUNIQ:        "name not unique on network",
	EBADFD:          "file descriptor in bad state",
	EREMCHG:         "remote address changed",
	ELIBACC:         "can not access a needed shared library",
	ELIBBAD:         "accessing a corrupted shared library",
	ELIBSCN:         ".lib section in a.out corrupted",
	ELIBMAX:         "attempting to link in too many shared libraries",
	ELIBEXEC:        "cannot exec a shared library directly",
	EILSEQ:          "invalid or incomplete multibyte or wide character",
	ERESTART:        "interrupted system call should be restarted",
	ESTRPIPE:        "streams pipe error",
	EUSERS:          "too many users",
	ENOTSOCK:        "socket operation on non-socket",
	EDESTADDRREQ:    "destination address required",
	EMSGSIZE:        "message too long",
	EPROTOTYPE:      "protocol wrong type for socket",
	ENOPROTOOPT:     "protocol not available",
	EPROTONOSUPPORT: "protocol not supported",
	ESOCKTNOSUPPORT: "socket type not supported",
	EOPNOTSUPP:      "operation not supported",
	EPFNOSUPPORT:    "protocol family not supported",
	EAFNOSUPPORT:    "address family not supported by protocol",
	EADDRINUSE:      "address already in use",
	EADDRNOTAVAIL:   "cannot assign requested address",
	ENETDOWN:        "network is down",
	ENETUNREACH:     "network is unreachable",
	ENETRESET:       "network dropped connection on reset",
	ECONNABORTED:    "software caused connection abort",
	ECONNRESET:      "connection reset by peer",
	ENOBUFS:         "no buffer space available",
	EISCONN:         "transport endpoint is already connected",
	ENOTCONN:        "transport endpoint is not connected",
	ESHUTDOWN:       "cannot send after transport endpoint shutdown",
	ETOOMANYREFS:    "too many references: cannot splice",
	ETIMEDOUT:       "connection timed out",
	ECONNREFUSED:    "connection refused",
	EHOSTDOWN:       "host is down",
	EHOSTUNREACH:    "no route to host",
	EALREADY:        "operation already in progress",
	EINPROGRESS:     "operation now in progress",
	ESTALE:          "stale file handle",
	EUCLEAN:         "structure needs cleaning",
	ENOTNAM:         "not a XENIX named type file",
	ENAVAIL:         "no XENIX semaphores available",
	EISNAM:          "is a named type file",
	EREMOTEIO:       "remote I/O error",
	EDQUOT:          "disk quota exceeded",
	ENOMEDIUM:       "no medium found",
	EMEDIUMTYPE:     "wrong medium type",
	ECANCELED:       "operation canceled",
	ENOKEY:          "required key not available",
	EKEYEXPIRED:     "key has expired",
	EKEYREVOKED:     "key has been revoked",
	EKEYREJECTED:    "key was rejected by service",
	EOWNERDEAD:      "owner died",
	ENOTRECOVERABLE: "state not recoverable",
	ERFKILL:         "operation not possible due to RF-kill",
	EHWPOISON:       "memory page has hardware error",
}

// Valid reports whether e is a member of the table. The retired slots 41
// and 58 are not members, and neither is zero.
func (e Errno) Valid() bool {
	return e <= Max && names[e] != ""
}

// Name returns the symbolic name ("ENOENT") for a table member, or the
// empty string for anything else.
func (e Errno) Name() string {
	if e <= Max {
		return names[e]
	}
	return ""
}

// Error renders a table member as "ENOENT: no such file or directory".
// Codes outside the table render as "errno <n> (unrecognized)" so an
// unknown code never masquerades as a named condition.
func (e Errno) Error() string {
	if e.Valid() {
		return names[e] + ": " + messages[e]
	}
	return "errno " + strconv.FormatUint(uint64(e), 10) + " (unrecognized)"
}

// FromCode looks up a raw numeric code. The bool is false for codes that
// are not table members, including the retired slots.
func FromCode(code uintptr) (Errno, bool) {
	e := Errno(code)
	return e, e.Valid()
}
