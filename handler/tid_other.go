//go:build !linux

package handler

// ThreadID returns 0 where the platform has no cheap thread id syscall.
func ThreadID() uint64 {
	return 0
}
