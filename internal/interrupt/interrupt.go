// Package interrupt coordinates Ctrl+C handling between the signal
// delivery path and the countdown loop.
//
// The only shared state is a process-wide atomic flag. The goroutine
// draining the signal channel does a single lock-free store per
// delivered signal; everything else (printing, terminal restore, exit)
// happens on the main goroutine once it observes the flag.
package interrupt

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
)

var (
	requested   atomic.Bool
	installOnce sync.Once
)

// Install registers for the interrupt signal and starts the goroutine
// that sets the flag. The first call installs the handler; later calls
// are no-ops.
func Install() {
	installOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt)
		go func() {
			for range ch {
				requested.Store(true)
			}
		}()
	})
}

// Requested reports whether an interrupt has been delivered. Safe to
// call repeatedly from any goroutine; never blocks.
func Requested() bool {
	return requested.Load()
}

// Reset clears the flag. Only tests need this: once set during a real
// run, the flag stays set until the process exits.
func Reset() {
	requested.Store(false)
}
