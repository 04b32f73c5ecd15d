package countdown

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/countdown/internal/clock"
	"github.com/ytget/countdown/internal/model"
)

// TickInterval is the time between two decrements.
const TickInterval = time.Second

// Service runs the countdown
type Service struct {
	mu        sync.Mutex
	countdown *model.Countdown
	clock     clock.Clock
	dispatch  func(func())
	logger    *zap.Logger

	// Tick loop: at most one pending timer, owned by the current run.
	pending clock.Timer
	runID   uuid.UUID

	onUpdate func(model.Snapshot) // callback for UI updates
}

// NewService creates a new countdown service resting at the full duration
func NewService(opts ...Option) *Service {
	s := &Service{
		countdown: model.NewCountdown(),
		clock:     clock.NewReal(),
		dispatch:  func(f func()) { f() },
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetUpdateCallback sets the callback function for state updates
func (s *Service) SetUpdateCallback(callback func(model.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Snapshot returns the current countdown state
func (s *Service) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countdown.Snapshot()
}

// Start begins counting down and schedules the first tick
func (s *Service) Start() bool {
	s.mu.Lock()
	if !s.countdown.Start() {
		snap := s.countdown.Snapshot()
		s.mu.Unlock()
		s.logger.Debug("start ignored",
			zap.Stringer("state", snap.State),
			zap.Int("remaining", snap.Remaining))
		return false
	}

	s.runID = uuid.New()
	s.schedule(s.runID)
	run := s.runID
	snap := s.countdown.Snapshot()
	s.mu.Unlock()

	s.logger.Debug("countdown started",
		zap.Stringer("run", run),
		zap.Int("remaining", snap.Remaining))
	s.notifyUpdate(snap)
	return true
}

// Pause halts the countdown, leaving the remaining time untouched
func (s *Service) Pause() bool {
	s.mu.Lock()
	if !s.countdown.Pause() {
		s.mu.Unlock()
		return false
	}

	run := s.runID
	s.cancel()
	snap := s.countdown.Snapshot()
	s.mu.Unlock()

	s.logger.Debug("countdown paused",
		zap.Stringer("run", run),
		zap.Int("remaining", snap.Remaining))
	s.notifyUpdate(snap)
	return true
}

// Stop halts the countdown and restores the full duration
func (s *Service) Stop() {
	s.mu.Lock()
	run := s.runID
	s.countdown.Stop()
	s.cancel()
	snap := s.countdown.Snapshot()
	s.mu.Unlock()

	s.logger.Debug("countdown stopped", zap.Stringer("run", run))
	s.notifyUpdate(snap)
}

// Close cancels any pending tick without notifying
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel()
}

// schedule arms the next tick for run. Caller must hold s.mu.
func (s *Service) schedule(run uuid.UUID) {
	s.pending = s.clock.AfterFunc(TickInterval, func() {
		s.dispatch(func() { s.tick(run) })
	})
}

// cancel stops the pending tick and retires the current run. Caller must hold s.mu.
func (s *Service) cancel() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.runID = uuid.Nil
}

// tick performs one decrement for run
func (s *Service) tick(run uuid.UUID) {
	s.mu.Lock()
	// A tick already in flight when the run was paused or stopped lands here.
	if run != s.runID || !s.countdown.Running {
		s.mu.Unlock()
		s.logger.Debug("stale tick dropped", zap.Stringer("run", run))
		return
	}

	s.countdown.Tick()
	if s.countdown.Running {
		s.schedule(run)
	} else {
		s.pending = nil
		s.runID = uuid.Nil
	}
	snap := s.countdown.Snapshot()
	s.mu.Unlock()

	if snap.State == model.StateExpired {
		s.logger.Info("countdown expired", zap.Stringer("run", run))
	}
	s.notifyUpdate(snap)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(snap model.Snapshot) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(snap)
	}
}
