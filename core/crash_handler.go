package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// HandleCrash runs the restore hook, prints the panic and stack trace, then exits
func HandleCrash(r any, restore func()) {
	if r == nil {
		return
	}

	// Restore terminal to sane state before printing
	if restore != nil {
		restore()
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}
