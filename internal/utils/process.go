package utils

import (
	"os"
	"os/signal"
	"syscall"
)

// OnInterruptOrKill calls fn once from a background goroutine when the
// process receives an interrupt (Ctrl+C) or SIGTERM. The returned function
// stops listening.
func OnInterruptOrKill(fn func(os.Signal)) (stop func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigChan:
			fn(sig)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
