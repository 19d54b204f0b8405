// Package countdown runs the timer loop.
package countdown

import (
	"time"

	"github.com/marcus-grant/timerterm/internal/log"
)

// Quantum is the sleep interval between exit-condition checks. It
// bounds how long the loop keeps running after an interrupt arrives.
const Quantum = 100 * time.Millisecond

// Reason states why the countdown stopped.
type Reason int

const (
	// Elapsed means the full duration ran out.
	Elapsed Reason = iota
	// Interrupted means the stop was requested before the deadline.
	Interrupted
)

func (r Reason) String() string {
	switch r {
	case Elapsed:
		return "elapsed"
	case Interrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Run counts down the given duration, polling the interrupted check
// every quantum. It returns when the deadline passes or the check
// reports true, whichever it observes first. Both outcomes are normal
// completion; the reason only tells the caller what to report.
//
// The interrupted check is read on every iteration and must be cheap
// and non-blocking; the caller normally passes interrupt.Requested.
func Run(total time.Duration, interrupted func() bool) Reason {
	deadline := time.Now().Add(total)
	log.Debug("countdown started", "total", total, "deadline", deadline.Format(time.TimeOnly))

	for {
		// Interrupt wins over the deadline when both hold, so a
		// Ctrl+C inside the final quantum still reports as one.
		if interrupted() {
			log.Debug("countdown stopped", "reason", Interrupted)
			return Interrupted
		}
		if !time.Now().Before(deadline) {
			log.Debug("countdown stopped", "reason", Elapsed)
			return Elapsed
		}
		time.Sleep(Quantum)
	}
}
