//go:build !unix

package handler

import (
	"os"
	"syscall"

	"github.com/wippyai/crashreport/errors"
	"github.com/wippyai/crashreport/sink"
)

const abortSignal = syscall.Signal(6)

// DefaultSignals returns no signals on platforms without POSIX signals.
func DefaultSignals() []os.Signal {
	return nil
}

func openDestination(path string) (sink.FD, error) {
	return sink.Invalid, errors.New(errors.PhaseOpen, errors.KindUnsupported).
		Path(path).
		Detail("raw file descriptors are not supported on this platform").
		Build()
}

func syncDestination(sink.FD) error { return nil }

func closeDestination(sink.FD) error { return nil }

func signalNumber(sig os.Signal) int32 {
	if s, ok := sig.(syscall.Signal); ok {
		return int32(s)
	}
	return 0
}

func reraise(os.Signal) {}
