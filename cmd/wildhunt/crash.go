package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// resetSequence leaves the alternate screen, shows the cursor and clears attributes
const resetSequence = "\x1b[?1049l\x1b[?25h\x1b[0m\x1b[?1000l\x1b[?1006l"

// emergencyReset restores a usable terminal after a crash
func emergencyReset(screen tcell.Screen, w io.Writer) {
	if screen != nil {
		screen.Fini()
	}
	io.WriteString(w, resetSequence)
}

// crash restores the terminal, prints the panic with its stack and exits
// Uses \r\n for raw mode compatibility
func crash(screen tcell.Screen, where string, r any) {
	emergencyReset(screen, os.Stdout)
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", where, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}
