package model

// TotalSeconds is the fixed countdown duration.
const TotalSeconds = 30

// Countdown holds the mutable timer state.
//
// Remaining always stays within [0, Total] and Running is never true while
// Remaining is zero. Methods return true when they changed the state.
type Countdown struct {
	Total     int  // fixed duration in seconds
	Remaining int  // seconds left before expiry
	Running   bool // whether the tick loop is counting down
}

// Snapshot is an immutable copy of the countdown handed to subscribers
type Snapshot struct {
	Total     int
	Remaining int
	Running   bool
	State     TimerState
	Progress  float64 // Remaining/Total, 0.0 to 1.0
}

// NewCountdown creates a countdown resting at the full duration
func NewCountdown() *Countdown {
	return &Countdown{
		Total:     TotalSeconds,
		Remaining: TotalSeconds,
	}
}

// Start sets the running flag unless already running or expired
func (c *Countdown) Start() bool {
	if c.Running || c.Remaining <= 0 {
		return false
	}
	c.Running = true
	return true
}

// Pause clears the running flag, leaving the remaining time untouched
func (c *Countdown) Pause() bool {
	if !c.Running {
		return false
	}
	c.Running = false
	return true
}

// Stop halts the countdown and restores the full duration
func (c *Countdown) Stop() bool {
	changed := c.Running || c.Remaining != c.Total
	c.Running = false
	c.Remaining = c.Total
	return changed
}

// Tick decrements the remaining time by one second if running.
// Reaching zero clears the running flag.
func (c *Countdown) Tick() bool {
	if !c.Running || c.Remaining <= 0 {
		return false
	}
	c.Remaining--
	if c.Remaining == 0 {
		c.Running = false
	}
	return true
}

// Progress returns the remaining fraction of the total duration
func (c *Countdown) Progress() float64 {
	if c.Total <= 0 {
		return 0
	}
	return float64(c.Remaining) / float64(c.Total)
}

// State derives the timer state from the remaining time and running flag
func (c *Countdown) State() TimerState {
	switch {
	case c.Running:
		return StateRunning
	case c.Remaining == 0:
		return StateExpired
	case c.Remaining == c.Total:
		return StateIdle
	default:
		return StatePaused
	}
}

// Snapshot returns a copy of the current state
func (c *Countdown) Snapshot() Snapshot {
	return Snapshot{
		Total:     c.Total,
		Remaining: c.Remaining,
		Running:   c.Running,
		State:     c.State(),
		Progress:  c.Progress(),
	}
}
