//go:build unix

package handler

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/wippyai/crashreport/errors"
	"github.com/wippyai/crashreport/sink"
)

const abortSignal = unix.SIGABRT

// DefaultSignals returns the fatal signals a handler listens for unless
// configured otherwise.
func DefaultSignals() []os.Signal {
	return []os.Signal{
		unix.SIGABRT,
		unix.SIGBUS,
		unix.SIGFPE,
		unix.SIGILL,
		unix.SIGSEGV,
	}
}

func openDestination(path string) (sink.FD, error) {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CREAT|unix.O_APPEND|unix.O_CLOEXEC, 0o600)
	if err != nil {
		return sink.Invalid, errors.IO(errors.PhaseOpen, path, err)
	}
	return sink.FD(fd), nil
}

func syncDestination(fd sink.FD) error {
	err := unix.Fsync(int(fd))
	// Pipes and character devices cannot be synced.
	if err == unix.EINVAL || err == unix.EROFS {
		return nil
	}
	return err
}

func closeDestination(fd sink.FD) error {
	return unix.Close(int(fd))
}

func signalNumber(sig os.Signal) int32 {
	if s, ok := sig.(syscall.Signal); ok {
		return int32(s)
	}
	return 0
}

// reraise restores the default action for sig and sends it to the process.
func reraise(sig os.Signal) {
	s, ok := sig.(syscall.Signal)
	if !ok {
		return
	}
	signal.Reset(s)
	_ = unix.Kill(unix.Getpid(), s)
}
