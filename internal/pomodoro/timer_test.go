package pomodoro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestNewTimer_FreshState(t *testing.T) {
	for _, d := range []time.Duration{0, time.Second, 25 * time.Minute, 99 * time.Minute} {
		timer := NewTimerWithClock(d, newFakeClock().Now)
		assert.Equal(t, d, timer.TimeLeft())
		assert.False(t, timer.IsFinished())
		assert.False(t, timer.IsPaused())
	}
}

func TestTimer_UpdateTracksElapsed(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimerWithClock(time.Minute, clock.Now)

	clock.Advance(20 * time.Second)
	assert.Equal(t, time.Minute, timer.TimeLeft(), "stale until Update")

	timer.Update()
	assert.Equal(t, 40*time.Second, timer.TimeLeft())
	assert.Equal(t, 20*time.Second, timer.Elapsed())
}

func TestTimer_TimeLeftSaturates(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimerWithClock(time.Second, clock.Now)

	clock.Advance(time.Hour)
	timer.Update()
	assert.Equal(t, time.Duration(0), timer.TimeLeft())
	assert.True(t, timer.IsFinished())
}

func TestTimer_FinishIsStrict(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimerWithClock(10*time.Second, clock.Now)

	clock.Advance(10 * time.Second)
	timer.Update()
	assert.Equal(t, time.Duration(0), timer.TimeLeft())
	assert.False(t, timer.IsFinished(), "elapsed == total is not finished")

	clock.Advance(time.Millisecond)
	timer.Update()
	assert.True(t, timer.IsFinished())
}

func TestTimer_PauseFreezesTimeLeft(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimerWithClock(time.Minute, clock.Now)

	clock.Advance(10 * time.Second)
	timer.Update()
	timer.Pause()
	before := timer.TimeLeft()

	for i := 0; i < 5; i++ {
		clock.Advance(30 * time.Second)
		timer.Update()
		assert.Equal(t, before, timer.TimeLeft())
	}
	assert.True(t, timer.IsPaused())
	assert.False(t, timer.IsFinished())
}

func TestTimer_PauseResumeAccumulates(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimerWithClock(10*time.Minute, clock.Now)

	gaps := []time.Duration{3 * time.Second, 0, 45 * time.Second, 2 * time.Minute}
	var run, paused time.Duration
	for _, gap := range gaps {
		clock.Advance(5 * time.Second)
		run += 5 * time.Second

		timer.Pause()
		clock.Advance(gap)
		timer.Resume()
		paused += gap
	}

	timer.Update()
	assert.Equal(t, paused, timer.Paused())
	assert.Equal(t, run, timer.Elapsed())
	assert.Equal(t, 10*time.Minute-run, timer.TimeLeft())
}

func TestTimer_PauseIsIdempotent(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimerWithClock(time.Minute, clock.Now)

	timer.Pause()
	clock.Advance(10 * time.Second)
	timer.Pause() // must not move the pause instant
	clock.Advance(10 * time.Second)
	timer.Resume()

	assert.Equal(t, 20*time.Second, timer.Paused())

	timer.Resume() // not paused: no effect
	assert.Equal(t, 20*time.Second, timer.Paused())
	assert.False(t, timer.IsPaused())
}
