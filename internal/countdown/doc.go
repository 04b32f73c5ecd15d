package countdown

// Package countdown implements the timer's tick loop on top of the clock
// package. It owns the countdown state, serializes user actions with ticks,
// and propagates every change to a single UI subscriber.
