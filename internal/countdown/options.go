package countdown

import (
	"go.uber.org/zap"

	"github.com/ytget/countdown/internal/clock"
)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the clock used to schedule ticks.
func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithDispatcher sets the function used to deliver ticks onto the control
// thread. The app passes fyne.Do so ticks run alongside tap handlers.
func WithDispatcher(dispatch func(func())) Option {
	return func(s *Service) {
		if dispatch != nil {
			s.dispatch = dispatch
		}
	}
}
