//go:build !windows

package shutdown

import (
	"os"
	"os/signal"
	"syscall"
)

func Interrupts() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	return ch
}
