package handler

import (
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/crashreport/errors"
	"github.com/wippyai/crashreport/report"
	"github.com/wippyai/crashreport/sink"
)

// Frames skipped by runtime.Callers: Callers itself, write, and the
// function that called write.
const callerSkip = 3

// Handler writes one crash report to a pre-opened destination.
type Handler struct {
	ch       chan os.Signal
	done     chan struct{}
	reported chan struct{}
	path     string
	signals  []os.Signal
	fd       sink.FD
	depth    int
	written  atomic.Int64
	fired    atomic.Bool
	closed   atomic.Bool
	owned    bool
	reraise  bool
}

// Install validates cfg, opens the destination and starts listening for
// cfg's signals.
func Install(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidInput(errors.PhaseInstall, "nil config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	h := &Handler{
		done:     make(chan struct{}),
		reported: make(chan struct{}),
		path:     cfg.path,
		signals:  append([]os.Signal(nil), cfg.signals...),
		fd:       sink.FD(cfg.fd),
		depth:    cfg.depth,
		reraise:  cfg.reraise,
	}

	if cfg.path != "" {
		fd, err := openDestination(cfg.path)
		if err != nil {
			return nil, err
		}
		h.fd = fd
		h.owned = true
	}

	if len(h.signals) > 0 {
		h.ch = make(chan os.Signal, 1)
		signal.Notify(h.ch, h.signals...)
		go h.loop()
	} else {
		close(h.done)
	}

	Logger().Info("crash handler installed",
		zap.String("path", h.path),
		zap.Int("fd", int(h.fd)),
		zap.Int("depth", h.depth),
		zap.Strings("signals", signalNames(h.signals)),
		zap.Bool("reraise", h.reraise))

	return h, nil
}

// FD returns the destination descriptor.
func (h *Handler) FD() int {
	return int(h.fd)
}

// Done is closed once a report has been written or the handler is closed.
func (h *Handler) Done() <-chan struct{} {
	return h.reported
}

// Written returns the byte count of the report, report.Failure if writing
// failed, or 0 if no report was written yet.
func (h *Handler) Written() int {
	return int(h.written.Load())
}

// Report writes a report for sig with the caller's stack.
// It returns the bytes written, report.Failure on failure, or 0 when a
// report was already written or the handler is closed.
func (h *Handler) Report(sig int32) int {
	return h.write(sig, callerSkip)
}

// Recover writes a report for a panic in progress and re-panics with the
// same value. It must be called directly by defer.
func (h *Handler) Recover() {
	r := recover()
	if r == nil {
		return
	}
	h.write(int32(abortSignal), callerSkip)
	panic(r)
}

// Close stops signal delivery, waits for a report in flight and closes the
// destination if Install opened it.
func (h *Handler) Close() error {
	if !h.closed.CompareAndSwap(false, true) {
		return errors.Closed(errors.PhaseClose)
	}

	if h.ch != nil {
		signal.Stop(h.ch)
		close(h.ch)
	}
	<-h.done

	// Disarm, or wait for the report that won the race.
	if h.fired.CompareAndSwap(false, true) {
		close(h.reported)
	} else {
		<-h.reported
	}

	var err error
	if h.owned {
		err = multierr.Append(
			syncDestination(h.fd),
			closeDestination(h.fd),
		)
		if err != nil {
			err = errors.IO(errors.PhaseClose, h.path, err)
			Logger().Error("close crash destination", zap.Error(err))
		}
	}

	Logger().Debug("crash handler closed", zap.String("path", h.path))
	return err
}

func (h *Handler) loop() {
	defer close(h.done)
	for sig := range h.ch {
		// The interrupted goroutine is not observable here; the report
		// carries the delivering goroutine's own stack.
		h.write(signalNumber(sig), callerSkip-1)
		if h.reraise {
			reraise(sig)
		}
	}
}

// write is the crash-time path. Until report.Write returns it logs nothing
// and uses only stack-local buffers.
func (h *Handler) write(sig int32, skip int) int {
	if !h.fired.CompareAndSwap(false, true) {
		return 0
	}

	var pcs [MaxDepth]uintptr
	n := runtime.Callers(skip, pcs[:h.depth])

	c := report.Crash{
		Frames:     pcs[:n],
		Timestamp:  time.Now().Unix(),
		ThreadID:   ThreadID(),
		Signal:     sig,
		FrameCount: n,
	}
	written := report.Write(h.fd, &c)
	h.written.Store(int64(written))
	close(h.reported)

	Logger().Warn("crash report written",
		zap.Int32("signal", sig),
		zap.Int("frames", n),
		zap.Int("bytes", written),
		zap.String("path", h.path))

	return written
}

func signalNames(sigs []os.Signal) []string {
	names := make([]string, len(sigs))
	for i, s := range sigs {
		names[i] = s.String()
	}
	return names
}
