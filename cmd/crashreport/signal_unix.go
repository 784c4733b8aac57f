//go:build unix

package main

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

var userSignal os.Signal = unix.SIGUSR1

func sendSelf(sig os.Signal) error {
	return unix.Kill(unix.Getpid(), sig.(syscall.Signal))
}
