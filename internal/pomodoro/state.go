package pomodoro

import "fmt"

// Phase is one interval kind of the cycle.
type Phase int

const (
	PhasePomodoro Phase = iota
	PhaseShortBreak
	PhaseLongBreak
)

func (p Phase) String() string {
	switch p {
	case PhasePomodoro:
		return "Pomodoro"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// CycleState is the current phase plus the number of pomodoros left before
// the next long break. Remaining is always zero for PhaseLongBreak.
type CycleState struct {
	Phase     Phase
	Remaining int
}

// Pomodoro returns a work phase with n pomodoros left before the long break.
func Pomodoro(n int) CycleState {
	return CycleState{Phase: PhasePomodoro, Remaining: clampCount(n)}
}

// ShortBreak returns a short break phase carrying n.
func ShortBreak(n int) CycleState {
	return CycleState{Phase: PhaseShortBreak, Remaining: clampCount(n)}
}

// LongBreak returns the long break phase.
func LongBreak() CycleState {
	return CycleState{Phase: PhaseLongBreak}
}

func (s CycleState) String() string {
	if s.Phase == PhaseLongBreak {
		return s.Phase.String()
	}
	return fmt.Sprintf("%s (%d left)", s.Phase, s.Remaining)
}

// Advance returns the phase that follows s. The count only drops when a
// pomodoro ends, and a long break restarts the count at threshold.
func Advance(s CycleState, threshold int) CycleState {
	switch s.Phase {
	case PhasePomodoro:
		if s.Remaining <= 0 {
			return LongBreak()
		}
		return ShortBreak(s.Remaining - 1)
	case PhaseShortBreak:
		return Pomodoro(s.Remaining)
	default:
		return Pomodoro(threshold)
	}
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
