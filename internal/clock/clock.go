// Package clock provides the scheduling primitive behind the countdown tick
// loop. Production code uses Real; tests drive a Manual clock by hand.
package clock

import "time"

// Clock schedules one-shot callbacks.
type Clock interface {
	// AfterFunc waits for the duration to elapse and then calls f.
	// Returns a Timer that can be used to cancel the call.
	AfterFunc(d time.Duration, f func()) Timer

	// Now returns the current time.
	Now() time.Time
}

// Timer represents a pending AfterFunc callback.
type Timer interface {
	// Stop prevents the Timer from firing. Returns true if the call was
	// stopped, false if it already fired or was stopped before.
	Stop() bool
}

// Real implements Clock using the standard time package.
type Real struct{}

// NewReal creates a new Real clock.
func NewReal() *Real {
	return &Real{}
}

// AfterFunc implements Clock.AfterFunc using time.AfterFunc.
func (c *Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Now implements Clock.Now using time.Now.
func (c *Real) Now() time.Time {
	return time.Now()
}
