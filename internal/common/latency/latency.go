// internal/common/latency/latency.go
// Simulated network latency for the in-memory backend.
// The mobile client was built against a mock service that delayed every
// response; the delay is configurable here (zero disables it) so tests
// run without waiting.

package latency

import (
	"context"
	"time"
)

// Simulator delays operations by a fixed duration to mimic network
// round trips. The zero value performs no delay.
type Simulator struct {
	delay time.Duration
}

// NewSimulator creates a simulator with the given delay. Durations <= 0
// disable the delay entirely.
func NewSimulator(delay time.Duration) *Simulator {
	if delay < 0 {
		delay = 0
	}
	return &Simulator{delay: delay}
}

// Wait blocks for the configured delay or until ctx is cancelled.
func (s *Simulator) Wait(ctx context.Context) error {
	if s == nil || s.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Delay returns the configured delay.
func (s *Simulator) Delay() time.Duration {
	if s == nil {
		return 0
	}
	return s.delay
}
