//go:build unix

package sink

import "golang.org/x/sys/unix"

// Write issues a single write(2) of p and returns the byte count the kernel
// reported. A failed call returns -1.
func (fd FD) Write(p []byte) int {
	if !fd.Valid() {
		return -1
	}
	n, err := unix.Write(int(fd), p)
	if err != nil {
		return -1
	}
	return n
}

// Sync forces written data to stable storage. Errors are ignored; on
// descriptors that cannot be synced (pipes, terminals) this is a no-op.
func (fd FD) Sync() {
	if fd.Valid() {
		_ = unix.Fsync(int(fd))
	}
}
