// Package parse reads a crash report produced by package report back into
// structured form.
//
// Reports are best effort, so a missing end marker or fewer frame lines than
// Frames_count announces are not errors; they are surfaced through Complete
// and Truncated. Malformed header values are errors.
package parse

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wippyai/crashreport/errors"
	"github.com/wippyai/crashreport/report"
)

// Report is a parsed crash report.
type Report struct {
	// Frames holds one entry per frame line; 0 for "(nil)" frames.
	Frames     []uintptr
	Timestamp  int64
	ThreadID   uint64
	FrameCount int
	Signal     int32
	// Complete is set when the end marker was found.
	Complete bool
}

// Truncated reports whether fewer frames were read than announced.
func (r *Report) Truncated() bool {
	return len(r.Frames) < r.FrameCount
}

// NilFrames returns the number of null frame entries.
func (r *Report) NilFrames() int {
	var n int
	for _, f := range r.Frames {
		if f == 0 {
			n++
		}
	}
	return n
}

// Crash converts r to the inputs that would reproduce it.
func (r *Report) Crash() report.Crash {
	return report.Crash{
		Frames:     r.Frames,
		Timestamp:  r.Timestamp,
		ThreadID:   r.ThreadID,
		Signal:     r.Signal,
		FrameCount: r.FrameCount,
	}
}

// header sections in emission order, with labels stripped of newlines.
var headers = []string{
	strings.TrimPrefix(report.SignalLabel, "\n"),
	strings.TrimPrefix(report.TimestampLabel, "\n"),
	strings.TrimPrefix(report.ThreadIDLabel, "\n"),
	strings.TrimPrefix(report.FrameCountLabel, "\n"),
}

var (
	framesHeader = strings.Trim(report.FramesHeader, "\n")
	endMarker    = strings.TrimSuffix(report.EndMarker, "\n")
	nilFrame     = strings.TrimSuffix(report.NilFrameLine, "\n")
)

// File parses the report stored at path.
func File(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.IO(errors.PhaseParse, path, err)
	}
	defer f.Close()

	rep, err := Parse(f)
	if e, ok := err.(*errors.Error); ok {
		e.Path = path
	}
	return rep, err
}

// Parse reads a report from r.
func Parse(r io.Reader) (*Report, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 256), report.ConsumerBufferSize)

	rep := &Report{}
	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return sc.Text(), true
	}

	values := make([]string, len(headers))
	for i, label := range headers {
		text, ok := next()
		if !ok {
			return nil, scanErr(sc, headerName(label))
		}
		v, found := strings.CutPrefix(text, label)
		if !found {
			return nil, errors.New(errors.PhaseParse, errors.KindMissingSection).
				Line(line).
				Section(headerName(label)).
				Detail("expected %q, got %q", label, text).
				Build()
		}
		values[i] = v
	}

	if err := rep.setHeader(values); err != nil {
		return nil, err
	}

	text, ok := next()
	if !ok {
		return nil, scanErr(sc, framesHeader)
	}
	if text != framesHeader {
		return nil, errors.New(errors.PhaseParse, errors.KindMissingSection).
			Line(line).
			Section(framesHeader).
			Detail("got %q", text).
			Build()
	}

	for {
		text, ok := next()
		if !ok {
			break
		}
		if text == endMarker {
			rep.Complete = true
			break
		}
		p, err := parseFrame(text)
		if err != nil {
			err.Line = line
			return nil, err
		}
		rep.Frames = append(rep.Frames, p)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindIO, err, "read report")
	}

	return rep, nil
}

func (r *Report) setHeader(values []string) error {
	sig, err := strconv.ParseInt(values[0], 10, 32)
	if err != nil {
		return numErr(1, headers[0], values[0], err)
	}
	ts, err := strconv.ParseInt(values[1], 10, 64)
	if err != nil {
		return numErr(2, headers[1], values[1], err)
	}
	tid, err := strconv.ParseUint(values[2], 10, 64)
	if err != nil {
		return numErr(3, headers[2], values[2], err)
	}
	count, err := strconv.ParseInt(values[3], 10, 32)
	if err != nil {
		return numErr(4, headers[3], values[3], err)
	}

	r.Signal = int32(sig)
	r.Timestamp = ts
	r.ThreadID = tid
	r.FrameCount = int(count)
	return nil
}

func parseFrame(text string) (uintptr, *errors.Error) {
	if text == nilFrame {
		return 0, nil
	}
	hex, ok := strings.CutPrefix(text, report.FrameIndent+"0x")
	if !ok || hex == "" {
		return 0, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Section("Frames").
			Detail("malformed frame line %q", text).
			Build()
	}
	v, err := strconv.ParseUint(hex, 16, strconv.IntSize)
	if err != nil {
		return 0, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Section("Frames").
			Value(text).
			Cause(err).
			Detail("bad address %q", hex).
			Build()
	}
	return uintptr(v), nil
}

func headerName(label string) string {
	return strings.TrimSuffix(label, ": ")
}

func numErr(line int, label, value string, cause error) *errors.Error {
	return errors.New(errors.PhaseParse, errors.KindInvalidData).
		Line(line).
		Section(headerName(label)).
		Value(value).
		Cause(cause).
		Detail("bad number %q", value).
		Build()
}

func scanErr(sc *bufio.Scanner, section string) error {
	if err := sc.Err(); err != nil {
		return errors.Wrap(errors.PhaseParse, errors.KindIO, err, "read report")
	}
	return errors.MissingSection(section)
}
