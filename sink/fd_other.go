//go:build !unix

package sink

// Write is unsupported outside unix and always fails.
func (fd FD) Write(_ []byte) int {
	return -1
}

// Sync is a no-op outside unix.
func (fd FD) Sync() {}
