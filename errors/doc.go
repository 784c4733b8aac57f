// Package errors provides structured error types for crashreport's
// supporting surface: handler installation, report parsing and the CLI.
//
// The signal-time writer in package report never returns errors; it only
// reports byte counts. Everything around it uses this package.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidData).
//		Line(3).
//		Section("ThreadID").
//		Detail("not an unsigned integer: %q", text).
//		Build()
//
// Or the convenience constructors:
//
//	err := errors.MissingSection("Frames_count")
//	err := errors.IO(errors.PhaseOpen, "/var/crash/app.txt", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
