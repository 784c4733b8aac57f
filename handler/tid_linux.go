//go:build linux

package handler

import "golang.org/x/sys/unix"

// ThreadID returns the kernel id of the calling thread.
func ThreadID() uint64 {
	return uint64(unix.Gettid())
}
