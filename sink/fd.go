package sink

// FD is a caller-owned file descriptor. Negative values are invalid.
// The package never opens or closes it.
type FD int

// Invalid is the conventional unset descriptor.
const Invalid FD = -1

// Valid reports whether fd refers to a descriptor.
func (fd FD) Valid() bool {
	return fd >= 0
}
