// Package handler arms a process to write a crash report when it receives a
// fatal signal or panics.
//
// Everything that is unsafe to do at crash time happens in Install: the
// destination is opened, the signal set is registered and logging is done.
// When a signal arrives the handler captures up to Depth return addresses
// into a stack-local array, reads the thread id and the wall clock, and
// calls report.Write. Nothing else runs before the report is flushed.
//
//	h, err := handler.Install(handler.NewConfig().
//		WithPath("/var/crash/app.txt"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer h.Close()
//	defer h.Recover()
//
// Go delivers signals sent to the process (kill, raise) to the handler's
// goroutine through os/signal. Faults raised by Go code itself become
// panics, which Recover turns into a report with signal SIGABRT before
// re-panicking.
//
// After the report the signal is re-raised with its default action, so
// SIGABRT, SIGSEGV and the other fatal signals still end the process. A
// handler writes at most one report. Later triggers are ignored.
package handler
