//go:build linux || darwin || freebsd || netbsd || openbsd

package bench

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// maxRSSKiB returns the peak resident set size of the process in KiB.
func maxRSSKiB() int64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	// Darwin reports bytes, the BSDs and Linux report KiB.
	if runtime.GOOS == "darwin" {
		return int64(ru.Maxrss) / 1024
	}
	return int64(ru.Maxrss)
}
