// go-lincall demo: walks the layers bottom to top using nothing but raw
// syscalls - pid, open/read/close on a device, a deliberate failure, and
// the vDSO clock fast path.
package main

import (
	"os"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	lincall "github.com/carved4/go-lincall"
)

var (
	path  = pflag.String("path", "/dev/zero", "file to open and read through the trampoline")
	count = pflag.Int("count", 8, "bytes to read from it")
)

func main() {
	pflag.Parse()

	log := hclog.New(&hclog.LoggerOptions{Name: "lincall"})
	if os.Getenv("TRACE") != "" {
		log.SetLevel(hclog.Trace)
	}

	// arity 0
	log.Info("getpid through the trampoline", "pid", uint64(lincall.Getpid()))

	// name registry dispatch
	if tid, err := lincall.Call("gettid"); err == nil {
		log.Info("gettid via the name registry", "tid", uint64(tid))
	} else {
		log.Error("gettid failed", "error", err)
	}

	// open / read / close
	fd, e := lincall.Open(*path, lincall.O_RDONLY|lincall.O_CLOEXEC, 0)
	if e != 0 {
		log.Error("open failed", "path", *path, "errno", e.Error())
		os.Exit(1)
	}
	buf := make([]byte, *count)
	n, e := lincall.Read(fd, buf)
	if e != 0 {
		log.Error("read failed", "errno", e.Error())
		os.Exit(1)
	}
	if e := lincall.Close(fd); e != 0 {
		log.Error("close failed", "errno", e.Error())
		os.Exit(1)
	}
	log.Info("read through the trampoline", "path", *path, "bytes", uint64(n))

	// failures come back as the kernel's errno, untranslated
	if _, e := lincall.Open("/this/file/should/not/exist", lincall.O_RDONLY, 0); e != 0 {
		log.Info("expected failure", "name", e.Name(), "rendered", e.Error())
	}

	// vDSO fast path, falling back to the trampoline when absent
	var ts lincall.Timespec
	if e := lincall.ClockGettime(lincall.ClockMonotonic, &ts); e != 0 {
		log.Error("clock_gettime failed", "errno", e.Error())
		os.Exit(1)
	}
	log.Info("monotonic clock", "sec", ts.Sec, "nsec", ts.Nsec)
}
