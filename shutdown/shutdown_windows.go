//go:build windows

package shutdown

import (
	"os"
	"os/signal"
)

// Interrupts delivers Ctrl+C / Ctrl+Break from an attached console.
func Interrupts() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	return ch
}
