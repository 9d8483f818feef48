//go:build !windows

package console

import (
	"os"

	"golang.org/x/term"
)

// Attach reports whether stderr already is a terminal; processes outside
// Windows inherit their console.
func Attach() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
