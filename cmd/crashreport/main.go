// Command crashreport writes, views and browses minimal crash reports.
//
//	crashreport [-out file] [-signal n] [-depth n]   write a report of this process
//	crashreport -raise -out file                     arm a handler and send SIGUSR1 to self
//	crashreport -view file                           print a parsed report
//	crashreport -i file                              browse a report interactively
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/crashreport/handler"
	"github.com/wippyai/crashreport/parse"
	"github.com/wippyai/crashreport/report"
)

func main() {
	var (
		out         = flag.String("out", "", "Report destination (default stdout)")
		sigNum      = flag.Int("signal", 6, "Signal number recorded in the report")
		depth       = flag.Int("depth", handler.DefaultDepth, "Frames to capture (1-64)")
		viewFile    = flag.String("view", "", "Parse and print a report file")
		interactive = flag.String("i", "", "Browse a report file in a TUI")
		raise       = flag.Bool("raise", false, "Install a handler on -out and raise SIGUSR1")
		verbose     = flag.Bool("v", false, "Log handler activity to stderr")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		handler.SetLogger(logger)
	}

	var err error
	switch {
	case *interactive != "":
		err = runInteractive(*interactive)
	case *viewFile != "":
		err = view(*viewFile)
	case *raise:
		err = raiseSelf(*out, *depth)
	default:
		err = write(*out, *sigNum, *depth)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func write(out string, sigNum, depth int) error {
	if depth < 1 || depth > handler.MaxDepth {
		return fmt.Errorf("depth %d out of range 1-%d", depth, handler.MaxDepth)
	}

	fd := int(os.Stdout.Fd())
	name := "stdout"
	if out != "" {
		f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open destination: %w", err)
		}
		defer f.Close()
		fd = int(f.Fd())
		name = out
	}

	var pcs [handler.MaxDepth]uintptr
	n := runtime.Callers(1, pcs[:depth])

	written := report.WriteMinimalCrashInfo(fd, int32(sigNum), time.Now().Unix(), handler.ThreadID(), pcs[:n], n)
	if written == report.Failure {
		return fmt.Errorf("write report to %s: nothing written", name)
	}
	if out != "" {
		fmt.Fprintf(os.Stderr, "wrote %d bytes to %s\n", written, out)
	}
	return nil
}

func raiseSelf(out string, depth int) error {
	if out == "" {
		return fmt.Errorf("-raise needs -out")
	}

	h, err := handler.Install(handler.NewConfig().
		WithPath(out).
		WithDepth(depth).
		WithSignals(userSignal).
		WithReraise(false))
	if err != nil {
		return fmt.Errorf("install handler: %w", err)
	}
	defer h.Close()

	if err := sendSelf(userSignal); err != nil {
		return fmt.Errorf("raise: %w", err)
	}

	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		return fmt.Errorf("no report written within 5s")
	}

	fmt.Fprintf(os.Stderr, "handler wrote %d bytes to %s\n", h.Written(), out)
	return nil
}

func view(path string) error {
	rep, err := parse.File(path)
	if err != nil {
		return err
	}
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Print(render(path, rep, styled))
	return nil
}
