//go:build unix

package handler

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/wippyai/crashreport/parse"
)

const (
	helperPathEnv = "CRASHREPORT_HELPER_PATH"
	helperModeEnv = "CRASHREPORT_HELPER_MODE"

	// Exit code of a helper that outlived its signal.
	survivedExit = 3
)

// TestReraiseHelper is the child side of the re-raise tests.
func TestReraiseHelper(t *testing.T) {
	path := os.Getenv(helperPathEnv)
	if path == "" {
		t.Skip("helper process only")
	}

	var (
		cfg *Config
		sig unix.Signal
	)
	switch os.Getenv(helperModeEnv) {
	case "term":
		cfg = NewConfig().WithPath(path).WithSignals(syscall.SIGTERM).WithReraise(true)
		sig = unix.SIGTERM
	case "default":
		cfg = NewConfig().WithPath(path)
		sig = unix.SIGABRT
	default:
		os.Exit(4)
	}

	h, err := Install(cfg)
	if err != nil {
		os.Exit(5)
	}
	_ = unix.Kill(unix.Getpid(), sig)
	_ = unix.Kill(unix.Getpid(), sig)

	// The re-raised signal ends the process before this expires.
	time.Sleep(10 * time.Second)
	_ = h.Close()
	os.Exit(survivedExit)
}

func runHelper(t *testing.T, mode string) (string, *exec.ExitError) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crash.txt")

	cmd := exec.Command(os.Args[0], "-test.run=^TestReraiseHelper$")
	cmd.Env = append(os.Environ(), helperPathEnv+"="+path, helperModeEnv+"="+mode)
	err := cmd.Run()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("helper exited cleanly: %v", err)
	}
	if exitErr.ExitCode() == survivedExit {
		t.Fatalf("helper survived its signal: %v", err)
	}
	return path, exitErr
}

func checkHelperReport(t *testing.T, path string, sig unix.Signal) {
	t.Helper()
	rep, err := parse.File(path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rep.Signal != int32(sig) || !rep.Complete {
		t.Errorf("report signal=%d complete=%v, want %d complete", rep.Signal, rep.Complete, sig)
	}
}

func TestHandler_Reraise(t *testing.T) {
	path, exitErr := runHelper(t, "term")

	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok || !status.Signaled() || status.Signal() != syscall.SIGTERM {
		t.Fatalf("helper exit = %v, want death by SIGTERM", exitErr)
	}
	checkHelperReport(t, path, unix.SIGTERM)
}

func TestHandler_DefaultConfigTerminates(t *testing.T) {
	path, exitErr := runHelper(t, "default")

	// The Go runtime handles a default-disposition SIGABRT by dumping
	// goroutines and exiting with status 2.
	if code := exitErr.ExitCode(); code != 2 {
		t.Fatalf("helper exit = %v, want exit status 2", exitErr)
	}
	checkHelperReport(t, path, unix.SIGABRT)
}
