// Package crashreport writes a minimal, allocation-free crash report from a
// fatal signal.
//
// The report is plain text, built from fixed-size stack buffers and emitted
// with raw write(2) calls followed by fsync(2), so it can be produced while
// the rest of the process is in an inconsistent state.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	crashreport/
//	├── textconv/        Integer and address to ASCII converters over fixed buffers
//	├── sink/            Raw file descriptor destination (write, fsync)
//	├── report/          Report composer: sections, frame loop, safety bound
//	├── parse/           Reads a report back into structured form
//	├── handler/         Signal and panic hooks that capture frames and call report
//	├── errors/          Structured error types for the non-crash-time surface
//	└── cmd/crashreport  CLI to write, view and browse reports
//
// # Quick Start
//
// Write a report directly:
//
//	frames := []uintptr{0xdeadbeef, 0}
//	n := report.WriteMinimalCrashInfo(fd, 11, time.Now().Unix(), 42, frames, len(frames))
//
// Or arm a handler for the process:
//
//	h, err := handler.Install(handler.NewConfig().WithPath("/var/crash/app.txt"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer h.Close()
//	defer h.Recover()
//
// # Report Format
//
//	Signal: 11
//	Timestamp: 1700000000
//	ThreadID: 123456789012
//	Frames_count: 2
//	Frames (raw addresses):
//	  0xdeadbeef
//	  0x0 (nil)
//	--- C Minimal Report End ---
//
// Addresses are never symbolized.
package crashreport
