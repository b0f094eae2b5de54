// Package pomodoro holds the timer, the work/break cycle state machine and the
// controller the terminal UI drives.
package pomodoro

import "time"

// Timer is a pause-aware stopwatch measured against a fixed duration.
//
// Elapsed time is cached and only refreshed by Update, so callers must call
// Update before reading TimeLeft or IsFinished while the timer is running.
type Timer struct {
	total      time.Duration
	launchedAt time.Time
	passed     time.Duration
	pausedAt   *time.Time
	pauseTotal time.Duration
	now        func() time.Time
}

// NewTimer starts a timer for total using the wall clock.
func NewTimer(total time.Duration) *Timer {
	return NewTimerWithClock(total, time.Now)
}

// NewTimerWithClock starts a timer that reads the current instant from now.
func NewTimerWithClock(total time.Duration, now func() time.Time) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{
		total:      total,
		launchedAt: now(),
		now:        now,
	}
}

// Update recomputes the elapsed running time. No-op while paused.
func (t *Timer) Update() {
	if t.pausedAt != nil {
		return
	}
	passed := t.now().Sub(t.launchedAt) - t.pauseTotal
	if passed < 0 {
		passed = 0
	}
	t.passed = passed
}

// TimeLeft returns the remaining duration, never negative.
func (t *Timer) TimeLeft() time.Duration {
	if t.passed >= t.total {
		return 0
	}
	return t.total - t.passed
}

// Pause freezes the timer. Pausing twice keeps the first pause instant.
func (t *Timer) Pause() {
	if t.pausedAt != nil {
		return
	}
	at := t.now()
	t.pausedAt = &at
}

// Resume adds the time spent paused to the accumulated pause total.
func (t *Timer) Resume() {
	if t.pausedAt == nil {
		return
	}
	if gap := t.now().Sub(*t.pausedAt); gap > 0 {
		t.pauseTotal += gap
	}
	t.pausedAt = nil
}

// IsPaused reports whether a pause is in progress.
func (t *Timer) IsPaused() bool {
	return t.pausedAt != nil
}

// IsFinished reports whether the elapsed time has strictly passed the total.
// Elapsed time exactly equal to the total does not count; the next Update
// normally pushes it over.
func (t *Timer) IsFinished() bool {
	return t.passed > t.total
}

// Total returns the configured duration.
func (t *Timer) Total() time.Duration {
	return t.total
}

// Elapsed returns the cached running time as of the last Update.
func (t *Timer) Elapsed() time.Duration {
	return t.passed
}

// Paused returns the accumulated time spent paused, excluding a pause still in progress.
func (t *Timer) Paused() time.Duration {
	return t.pauseTotal
}
