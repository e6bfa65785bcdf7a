package core

import "time"

// DefaultMaxDelta caps a single frame's elapsed time, so a suspended
// terminal does not replay seconds of simulation in one step.
const DefaultMaxDelta = 100 * time.Millisecond

// StepFunc advances a simulation by dt seconds and reports whether it
// wants further frames.
type StepFunc func(dt float64) bool

// FrameTimer turns host tick timestamps into elapsed-time deltas.
// It is the only place wall-clock time enters a simulation.
type FrameTimer struct {
	last     time.Time
	maxDelta time.Duration
}

// NewFrameTimer creates a timer that clamps deltas to maxDelta.
// A non-positive maxDelta selects DefaultMaxDelta.
func NewFrameTimer(maxDelta time.Duration) *FrameTimer {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &FrameTimer{maxDelta: maxDelta}
}

// Advance returns the seconds elapsed since the previous call.
// The first call after creation or Reset returns 0.
func (t *FrameTimer) Advance(now time.Time) float64 {
	if t.last.IsZero() {
		t.last = now
		return 0
	}

	d := now.Sub(t.last)
	t.last = now

	if d < 0 {
		d = 0
	}
	if d > t.maxDelta {
		d = t.maxDelta
	}
	return d.Seconds()
}

// Reset forgets the previous timestamp.
func (t *FrameTimer) Reset() {
	t.last = time.Time{}
}

// RunFixed drives step with a constant dt for at most n frames, stopping
// early when step returns false. It returns the number of frames run.
func RunFixed(step StepFunc, dt float64, n int) int {
	for i := 0; i < n; i++ {
		if !step(dt) {
			return i + 1
		}
	}
	return n
}
