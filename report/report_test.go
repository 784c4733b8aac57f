//go:build unix

package report

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/wippyai/crashreport/sink"
)

// capture runs fn against a fresh temp file and returns what was written.
func capture(t *testing.T, fn func(fd int) int) (string, int) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crash.txt")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	n := fn(int(f.Fd()))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data), n
}

func TestWriteMinimalCrashInfo_Example(t *testing.T) {
	frames := []uintptr{0xDEADBEEF, 0}
	out, n := capture(t, func(fd int) int {
		return WriteMinimalCrashInfo(fd, 11, 1700000000, 123456789012, frames, 2)
	})

	want := "Signal: 11\n" +
		"Timestamp: 1700000000\n" +
		"ThreadID: 123456789012\n" +
		"Frames_count: 2\n" +
		"Frames (raw addresses):\n" +
		"  0xdeadbeef\n" +
		"  0x0 (nil)\n" +
		"--- C Minimal Report End ---\n"

	if out != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", out, want)
	}
	if n != len(want) {
		t.Errorf("returned %d, want %d", n, len(want))
	}
}

func TestWriteMinimalCrashInfo_NoFrames(t *testing.T) {
	out, n := capture(t, func(fd int) int {
		return WriteMinimalCrashInfo(fd, 6, 0, 0, nil, 0)
	})

	want := "Signal: 6\nTimestamp: 0\nThreadID: 0\nFrames_count: 0\n" +
		"Frames (raw addresses):\n" + EndMarker
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
	if n != len(want) {
		t.Errorf("returned %d, want %d", n, len(want))
	}
}

func TestWriteMinimalCrashInfo_InvalidDestination(t *testing.T) {
	for _, fd := range []int{-1, -2, -1000} {
		if n := WriteMinimalCrashInfo(fd, 11, 1, 1, []uintptr{1}, 1); n != Failure {
			t.Errorf("fd %d: returned %d, want %d", fd, n, Failure)
		}
	}
}

func TestWrite_NilCrash(t *testing.T) {
	out, n := capture(t, func(fd int) int {
		return Write(sink.FD(fd), nil)
	})
	if n != Failure || out != "" {
		t.Errorf("Write(nil) = %d with %q written, want Failure and nothing", n, out)
	}
}

func TestWriteMinimalCrashInfo_NothingWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ro.txt")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if n := WriteMinimalCrashInfo(int(f.Fd()), 11, 1, 1, []uintptr{0x1}, 1); n != Failure {
		t.Errorf("read-only fd: returned %d, want %d", n, Failure)
	}
}

func TestWriteMinimalCrashInfo_SafetyBound(t *testing.T) {
	frames := make([]uintptr, 10000)
	for i := range frames {
		frames[i] = uintptr(0x7f0000000000 + i*16)
	}

	out, n := capture(t, func(fd int) int {
		return WriteMinimalCrashInfo(fd, 11, 1700000000, 1, frames, len(frames))
	})

	if n <= 0 {
		t.Fatalf("returned %d, want positive", n)
	}
	if n != len(out) {
		t.Errorf("returned %d, file holds %d bytes", n, len(out))
	}
	if strings.Count(out, EndMarker) != 1 || !strings.HasSuffix(out, EndMarker) {
		t.Error("end marker must appear exactly once, at the end")
	}
	if !strings.Contains(out, "Frames_count: 10000\n") {
		t.Error("frame count should be printed as given")
	}

	// One frame line may straddle the bound.
	longestLine := len(FrameIndent) + 2 + 16 + 1
	if limit := SafetyBound + longestLine + len(EndMarker); n > limit {
		t.Errorf("wrote %d bytes, exceeds %d", n, limit)
	}
	if n > ConsumerBufferSize {
		t.Errorf("wrote %d bytes, larger than consumer buffer %d", n, ConsumerBufferSize)
	}

	lines := strings.Count(out, "\n  0x")
	if lines == 0 || lines >= len(frames) {
		t.Errorf("emitted %d frame lines, want early stop", lines)
	}
}

func TestWriteMinimalCrashInfo_FrameCountExceedsSlice(t *testing.T) {
	out, _ := capture(t, func(fd int) int {
		return WriteMinimalCrashInfo(fd, 11, 1, 1, []uintptr{0xabc}, 5)
	})
	if !strings.Contains(out, "Frames_count: 5\n") {
		t.Errorf("frame count not printed as given: %q", out)
	}
	if got := strings.Count(out, "\n  0x"); got != 1 {
		t.Errorf("emitted %d frame lines, want 1", got)
	}
}

func TestWriteMinimalCrashInfo_FrameCountSaturates(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("int is 32 bits wide")
	}
	wide := int64(1)<<32 + 3

	tests := []struct {
		count int
		want  string
	}{
		{int(wide), "Frames_count: 2147483647\n"},
		{int(-wide), "Frames_count: -2147483648\n"},
		{math.MaxInt32, "Frames_count: 2147483647\n"},
	}
	for _, tc := range tests {
		out, _ := capture(t, func(fd int) int {
			return WriteMinimalCrashInfo(fd, 11, 1, 1, []uintptr{0xabc, 0}, tc.count)
		})
		if !strings.Contains(out, tc.want) {
			t.Errorf("count %d: output %q lacks %q", tc.count, out, tc.want)
		}
	}
}

func TestWriteMinimalCrashInfo_NegativeFrameCount(t *testing.T) {
	out, _ := capture(t, func(fd int) int {
		return WriteMinimalCrashInfo(fd, 11, 1, 1, []uintptr{0xabc}, -3)
	})
	want := "Frames_count: -3\nFrames (raw addresses):\n" + EndMarker
	if !strings.HasSuffix(out, want) {
		t.Errorf("got %q, want suffix %q", out, want)
	}
}

func TestWriteMinimalCrashInfo_WideTimestamp(t *testing.T) {
	tests := []struct {
		ts   int64
		want string
	}{
		{1700000000, "Timestamp: 1700000000\n"},
		{4102444800, "Timestamp: 4102444800\n"}, // 2100-01-01, beyond int32
		{-86400, "Timestamp: -86400\n"},
	}
	for _, tc := range tests {
		out, _ := capture(t, func(fd int) int {
			return WriteMinimalCrashInfo(fd, 1, tc.ts, 1, nil, 0)
		})
		if !strings.Contains(out, tc.want) {
			t.Errorf("timestamp %d: output %q lacks %q", tc.ts, out, tc.want)
		}
	}
}

func TestWriteMinimalCrashInfo_NoAllocs(t *testing.T) {
	f, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Skipf("open %s: %v", os.DevNull, err)
	}
	defer f.Close()
	fd := int(f.Fd())

	frames := []uintptr{0xdeadbeef, 0, 0x1234}
	allocs := testing.AllocsPerRun(50, func() {
		WriteMinimalCrashInfo(fd, 11, 1700000000, 42, frames, len(frames))
	})
	if allocs != 0 {
		t.Errorf("WriteMinimalCrashInfo allocated %v times per run", allocs)
	}
}
