package model

// TimerState represents the observable state of the countdown
type TimerState string

const (
	// StateIdle means the countdown is stopped at the full duration
	StateIdle TimerState = "Idle"

	// StateRunning means the tick loop is counting down
	StateRunning TimerState = "Running"

	// StatePaused means the countdown is halted part way through
	StatePaused TimerState = "Paused"

	// StateExpired means the countdown reached zero
	StateExpired TimerState = "Expired"
)

// String returns the string representation of TimerState
func (ts TimerState) String() string {
	return string(ts)
}

// IsActive returns true if the tick loop should be running in this state
func (ts TimerState) IsActive() bool {
	return ts == StateRunning
}

// CanStart returns true if a start action would move the countdown to Running
func (ts TimerState) CanStart() bool {
	return ts == StateIdle || ts == StatePaused
}
