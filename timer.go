package gamewin

import "time"

// Clock returns the time elapsed since some fixed reference point.
type Clock func() time.Duration

// SystemClock returns a Clock measuring the time elapsed since its creation.
func SystemClock() Clock {
	t0 := time.Now()
	return func() time.Duration {
		return time.Since(t0)
	}
}

// Timer is an application time based timer supporting pause and resume.
type Timer struct {
	clock Clock

	// the clock time when the timer started
	startTicks time.Duration
	// the ticks stored when the timer was paused
	pausedTicks time.Duration

	paused  bool
	started bool
}

// NewTimer creates a stopped timer. A nil clock defaults to SystemClock.
func NewTimer(clock Clock) *Timer {
	if clock == nil {
		clock = SystemClock()
	}
	return &Timer{clock: clock}
}

// Start starts (or restarts) the timer.
func (t *Timer) Start() {
	t.started = true
	t.paused = false

	t.startTicks = t.clock()
	t.pausedTicks = 0
}

// Stop stops the timer and clears its ticks.
func (t *Timer) Stop() {
	t.started = false
	t.paused = false

	t.startTicks = 0
	t.pausedTicks = 0
}

// Pause pauses a running timer.
func (t *Timer) Pause() {
	if t.started && !t.paused {
		t.paused = true

		t.pausedTicks = t.clock() - t.startTicks
		t.startTicks = 0
	}
}

// Unpause resumes a paused timer.
func (t *Timer) Unpause() {
	if t.started && t.paused {
		t.paused = false

		t.startTicks = t.clock() - t.pausedTicks
		t.pausedTicks = 0
	}
}

// Ticks returns the time measured by the timer.
func (t *Timer) Ticks() time.Duration {
	if !t.started {
		return 0
	}
	if t.paused {
		return t.pausedTicks
	}
	return t.clock() - t.startTicks
}

// IsStarted reports whether the timer is running, paused or not.
func (t *Timer) IsStarted() bool {
	return t.started
}

// IsPaused reports whether the timer is running and paused.
func (t *Timer) IsPaused() bool {
	return t.paused && t.started
}
