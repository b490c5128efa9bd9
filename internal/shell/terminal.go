package shell

import (
	"os"

	"golang.org/x/term"
)

const defaultWidth = 100

// DetectTerminal reports whether f is an interactive terminal and, if so, its
// width in columns.
func DetectTerminal(f *os.File) (interactive bool, width int) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return false, defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return true, defaultWidth
	}
	return true, w
}
