package report

import (
	"github.com/wippyai/crashreport/sink"
	"github.com/wippyai/crashreport/textconv"
)

// Primitive writers. Each performs exactly one write and returns its result
// unchanged: bytes transferred, or a non-positive value on failure.

func writeLiteral(fd sink.FD, lit []byte) int {
	return fd.Write(lit)
}

func writeInt32(fd sink.FD, v int32) int {
	var buf [textconv.Int32Size]byte
	return fd.Write(textconv.FormatInt32(buf[:], v))
}

func writeInt64(fd sink.FD, v int64) int {
	var buf [textconv.Int64Size]byte
	return fd.Write(textconv.FormatInt64(buf[:], v))
}

func writeUint64(fd sink.FD, v uint64) int {
	var buf [textconv.Uint64Size]byte
	return fd.Write(textconv.FormatUint64(buf[:], v))
}

func writePointer(fd sink.FD, p uintptr) int {
	var buf [textconv.PointerSize]byte
	return fd.Write(textconv.FormatPointer(buf[:], p))
}
