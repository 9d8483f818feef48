// Package console attaches the launcher to a console so that diagnostics
// are visible during interactive runs.
package console

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Echo returns where log lines should be mirrored: stderr when it is an
// attached terminal, nil otherwise.
func Echo(attached bool) io.Writer {
	if !attached || !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	return os.Stderr
}
