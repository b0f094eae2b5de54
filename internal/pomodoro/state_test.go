package pomodoro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name      string
		in        CycleState
		threshold int
		want      CycleState
	}{
		{"last pomodoro goes to long break", Pomodoro(0), 4, LongBreak()},
		{"pomodoro goes to short break", Pomodoro(3), 4, ShortBreak(2)},
		{"one left", Pomodoro(1), 4, ShortBreak(0)},
		{"short break keeps count", ShortBreak(2), 4, Pomodoro(2)},
		{"short break at zero", ShortBreak(0), 4, Pomodoro(0)},
		{"long break restarts lap", LongBreak(), 4, Pomodoro(4)},
		{"long break uses new threshold", LongBreak(), 7, Pomodoro(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Advance(tt.in, tt.threshold))
		})
	}
}

func TestAdvance_LapPassesOneLongBreak(t *testing.T) {
	for _, k := range []int{0, 1, 4, 9} {
		s := Pomodoro(k)
		longBreaks := 0
		// 2k steps walk down to Pomodoro(0), one more reaches the long break,
		// and the last one starts the next lap.
		for i := 0; i < 2*k+2; i++ {
			s = Advance(s, 4)
			if s.Phase == PhaseLongBreak {
				longBreaks++
			}
		}
		assert.Equal(t, Pomodoro(4), s, "k=%d", k)
		assert.Equal(t, 1, longBreaks, "k=%d", k)
	}
}

func TestLongBreakCarriesNoCount(t *testing.T) {
	assert.Equal(t, 0, LongBreak().Remaining)
	assert.Equal(t, 0, Pomodoro(-3).Remaining)
	assert.Equal(t, "Long Break", LongBreak().String())
	assert.Equal(t, "Pomodoro (2 left)", Pomodoro(2).String())
}
