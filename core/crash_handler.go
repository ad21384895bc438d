package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// CrashFunc receives a recovered panic value and the stack of the panicking goroutine
type CrashFunc func(r any, stack []byte)

var crashHandler atomic.Pointer[CrashFunc]

// SetCrashHandler installs the function run when a goroutine started with Go panics
// The front end uses it to restore the terminal and log before exiting
func SetCrashHandler(fn CrashFunc) {
	if fn == nil {
		crashHandler.Store(nil)
		return
	}
	crashHandler.Store(&fn)
}

// HandleCrash passes r to the installed handler, or dumps it to stderr and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}
	stack := debug.Stack()

	if fn := crashHandler.Load(); fn != nil {
		(*fn)(r, stack)
		return
	}

	fmt.Fprintf(os.Stderr, "\r\npanic: %v\r\n%s\r\n", r, stack)
	os.Exit(2)
}

// Go starts fn on a new goroutine whose panics reach HandleCrash
func Go(fn func()) {
	go func() {
		defer func() {
			HandleCrash(recover())
		}()
		fn()
	}()
}
