package util

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is connected to a terminal. Used to decide if an interactive
// prompt should be printed.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
