// Package report composes the minimal crash report written from a fatal
// signal.
//
// The report is plain ASCII with a fixed layout:
//
//	Signal: <int>
//	Timestamp: <int>
//	ThreadID: <uint>
//	Frames_count: <int>
//	Frames (raw addresses):
//	  <0xHEX or "0x0 (nil)">
//	  ...
//	--- C Minimal Report End ---
//
// Labels and punctuation are a compatibility surface: tools downstream parse
// them verbatim.
//
// # Signal Safety
//
// WriteMinimalCrashInfo may run while the rest of the process is in an
// arbitrary state. It allocates nothing on the heap, takes no locks and
// performs I/O only through write(2) and a final fsync(2). Each number is
// converted into its own fixed array declared in the writer that emits it.
//
// # Best Effort
//
// Every section is attempted regardless of the outcome of the previous one.
// A failed or short write is simply not counted. The frame loop stops once
// more than SafetyBound bytes have been written, and the end marker is
// emitted afterwards in every case.
package report
