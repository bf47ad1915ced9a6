//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package bench

func maxRSSKiB() int64 { return 0 }
