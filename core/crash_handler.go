// Package core holds process-level plumbing shared by the frontend
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	resetMu   sync.Mutex
	resetHook func()

	// exit and crashOutput are replaced in tests
	exit                  = os.Exit
	crashOutput io.Writer = os.Stderr
)

// RegisterResetHook sets the function that restores the terminal before a crash report
// Typically the tcell screen's Fini; nil clears it
func RegisterResetHook(fn func()) {
	resetMu.Lock()
	resetHook = fn
	resetMu.Unlock()
}

// HandleCrash restores the terminal, prints the panic with its stack and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	resetMu.Lock()
	hook := resetHook
	resetHook = nil
	resetMu.Unlock()

	if hook != nil {
		func() {
			// A failing reset must not hide the original panic
			defer func() { _ = recover() }()
			hook()
		}()
	}

	fmt.Fprintf(crashOutput, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
}

// Go runs fn in a new goroutine with crash recovery
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
