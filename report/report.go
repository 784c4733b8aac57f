package report

import (
	"math"

	"github.com/wippyai/crashreport/sink"
)

const (
	// Failure is returned when the destination is invalid or nothing could
	// be written.
	Failure = -1

	// SafetyBound caps the bytes written before the frame loop gives up.
	// It leaves headroom for the end marker inside ConsumerBufferSize.
	SafetyBound = 4000

	// ConsumerBufferSize is the capacity of the buffer readers of the
	// report have historically used.
	ConsumerBufferSize = 4096
)

// Literal sections of the report.
const (
	SignalLabel     = "Signal: "
	TimestampLabel  = "\nTimestamp: "
	ThreadIDLabel   = "\nThreadID: "
	FrameCountLabel = "\nFrames_count: "
	FramesHeader    = "\nFrames (raw addresses):\n"
	FrameIndent     = "  "
	NilFrameLine    = "  0x0 (nil)\n"
	EndMarker       = "--- C Minimal Report End ---\n"
)

// Byte forms of the literals, built once so writes never convert.
var (
	signalLabel     = []byte(SignalLabel)
	timestampLabel  = []byte(TimestampLabel)
	threadIDLabel   = []byte(ThreadIDLabel)
	frameCountLabel = []byte(FrameCountLabel)
	framesHeader    = []byte(FramesHeader)
	frameIndent     = []byte(FrameIndent)
	nilFrameLine    = []byte(NilFrameLine)
	newline         = []byte("\n")
	endMarker       = []byte(EndMarker)
)

// Crash holds the inputs of one report.
type Crash struct {
	// Frames are raw return addresses; 0 marks a missing frame.
	Frames []uintptr
	// Timestamp is seconds since the Unix epoch.
	Timestamp int64
	ThreadID  uint64
	Signal    int32
	// FrameCount is the number of entries of Frames to emit. It is printed
	// as a 32-bit value, saturated at the int32 limits; emission is limited
	// to len(Frames).
	FrameCount int
}

// WriteMinimalCrashInfo writes a crash report to fd and flushes it to
// stable storage.
//
// It returns the number of bytes written, or Failure if fd is negative or
// no write succeeded. An invalid fd causes no system calls at all.
func WriteMinimalCrashInfo(fd int, signal int32, timestamp int64, threadID uint64, frames []uintptr, frameCount int) int {
	c := Crash{
		Frames:     frames,
		Timestamp:  timestamp,
		ThreadID:   threadID,
		Signal:     signal,
		FrameCount: frameCount,
	}
	return Write(sink.FD(fd), &c)
}

// Write is WriteMinimalCrashInfo taking its inputs as a Crash.
func Write(fd sink.FD, c *Crash) int {
	if !fd.Valid() || c == nil {
		return Failure
	}

	var total int
	add := func(n int) {
		if n > 0 {
			total += n
		}
	}

	add(writeLiteral(fd, signalLabel))
	add(writeInt32(fd, c.Signal))
	add(writeLiteral(fd, timestampLabel))
	add(writeInt64(fd, c.Timestamp))
	add(writeLiteral(fd, threadIDLabel))
	add(writeUint64(fd, c.ThreadID))
	add(writeLiteral(fd, frameCountLabel))
	add(writeInt32(fd, clampInt32(c.FrameCount)))
	add(writeLiteral(fd, framesHeader))

	n := c.FrameCount
	if n > len(c.Frames) {
		n = len(c.Frames)
	}
	for i := 0; i < n; i++ {
		if p := c.Frames[i]; p != 0 {
			add(writeLiteral(fd, frameIndent))
			add(writePointer(fd, p))
			add(writeLiteral(fd, newline))
		} else {
			add(writeLiteral(fd, nilFrameLine))
		}
		if total > SafetyBound {
			break
		}
	}

	add(writeLiteral(fd, endMarker))

	fd.Sync()

	if total > 0 {
		return total
	}
	return Failure
}

func clampInt32(n int) int32 {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	}
	return int32(n)
}
