package handler

import (
	"os"

	"github.com/wippyai/crashreport/errors"
)

const (
	// MaxDepth is the largest number of frames a report can carry.
	MaxDepth = 64

	// DefaultDepth is the frame depth used when none is configured.
	DefaultDepth = 32
)

// Config describes how a Handler is armed.
type Config struct {
	path    string
	signals []os.Signal
	fd      int
	depth   int
	reraise bool
}

// NewConfig returns a configuration for DefaultSignals and DefaultDepth with
// no destination set. Re-raising is on.
func NewConfig() *Config {
	return &Config{
		fd:      -1,
		depth:   DefaultDepth,
		signals: DefaultSignals(),
		reraise: true,
	}
}

// WithPath sets a file to open for appending at install time.
// The handler owns the descriptor and closes it on Close.
func (c *Config) WithPath(path string) *Config {
	c.path = path
	return c
}

// WithFD sets an already-open descriptor. The caller keeps ownership.
func (c *Config) WithFD(fd int) *Config {
	c.fd = fd
	return c
}

// WithSignals replaces the signal set. No signals means the handler only
// reports through Report and Recover.
func (c *Config) WithSignals(sigs ...os.Signal) *Config {
	c.signals = sigs
	return c
}

// WithDepth sets the number of frames to capture, 1 to MaxDepth.
func (c *Config) WithDepth(n int) *Config {
	c.depth = n
	return c
}

// WithReraise controls whether the handler restores the default
// disposition and sends the signal again after the report is written, so
// the process terminates the way it would have without the handler.
// Signals Go ignores by default, such as SIGUSR1 and SIGUSR2, do not
// terminate the process either way. With re-raising off, the first signal
// is reported and every later one is dropped.
func (c *Config) WithReraise(enabled bool) *Config {
	c.reraise = enabled
	return c
}

func (c *Config) validate() error {
	switch {
	case c.path == "" && c.fd < 0:
		return errors.InvalidInput(errors.PhaseInstall, "no destination: set a path or a file descriptor")
	case c.path != "" && c.fd >= 0:
		return errors.InvalidInput(errors.PhaseInstall, "both path and file descriptor set")
	case c.depth < 1:
		return errors.New(errors.PhaseInstall, errors.KindInvalidInput).
			Value(c.depth).
			Detail("depth must be positive, got %d", c.depth).
			Build()
	case c.depth > MaxDepth:
		return errors.Overflow(errors.PhaseInstall, c.depth, MaxDepth)
	}
	for _, s := range c.signals {
		if s == nil {
			return errors.InvalidInput(errors.PhaseInstall, "nil signal in signal set")
		}
	}
	return nil
}
