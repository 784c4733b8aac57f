//go:build !unix

package main

import (
	"fmt"
	"os"
)

var userSignal os.Signal = os.Interrupt

func sendSelf(os.Signal) error {
	return fmt.Errorf("sending signals to self is not supported on this platform")
}
