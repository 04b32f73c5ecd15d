package countdown

import (
	"github.com/ytget/countdown/internal/model"
)

// Controller defines the interface for the countdown service.
type Controller interface {
	SetUpdateCallback(func(model.Snapshot))
	Snapshot() model.Snapshot

	// Start begins counting down. Returns false when already running or expired.
	Start() bool

	// Pause halts the countdown without touching the remaining time.
	Pause() bool

	// Stop halts the countdown and restores the full duration.
	Stop()

	// Close cancels any pending tick.
	Close()
}
