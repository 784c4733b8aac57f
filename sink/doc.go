// Package sink provides the raw destination a crash report is written to.
//
// FD wraps an already-open file descriptor and talks to the kernel directly
// through write(2) and fsync(2). There is no buffering, no locking and no
// retry: a short or failed write is reported to the caller as-is.
package sink
