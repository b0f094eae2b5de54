package pomodoro

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSettings_Valid(t *testing.T) {
	s, err := ParseSettings("25", "5", "15", "4")
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Second, s.Work)
	assert.Equal(t, 300*time.Second, s.ShortBreak)
	assert.Equal(t, 900*time.Second, s.LongBreak)
	assert.Equal(t, 4, s.Threshold)
}

func TestParseSettings_Invalid(t *testing.T) {
	tests := []struct {
		name                string
		work, sb, lb, count string
		want                error
	}{
		{"letters", "abc", "5", "15", "4", ErrInvalidNumber},
		{"empty", "", "5", "15", "4", ErrInvalidNumber},
		{"negative", "25", "-5", "15", "4", ErrInvalidNumber},
		{"ceiling", "150", "5", "15", "4", ErrOutOfRange},
		{"exactly ceiling", "25", "5", "100", "4", ErrOutOfRange},
		{"threshold not a number", "25", "5", "15", "x", ErrInvalidNumber},
		{"overflow", "99999999999", "5", "15", "4", ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSettings(tt.work, tt.sb, tt.lb, tt.count)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestParseSettings_Bounds(t *testing.T) {
	s, err := ParseSettings("0", "99", "99", "0")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), s.Work)
	assert.Equal(t, 99*time.Minute, s.LongBreak)
	assert.Equal(t, 0, s.Threshold)
}

func TestSettings_Duration(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 25*time.Minute, s.Duration(PhasePomodoro))
	assert.Equal(t, 5*time.Minute, s.Duration(PhaseShortBreak))
	assert.Equal(t, 15*time.Minute, s.Duration(PhaseLongBreak))
}

func TestSettingsForm_Editing(t *testing.T) {
	f := NewSettingsForm(DefaultSettings())
	assert.Equal(t, FieldWork, f.Selected())

	f.Clear()
	for _, r := range "4a2x" {
		f.Push(r)
	}
	assert.Equal(t, "42", f.Value(FieldWork), "non-digits are dropped")

	f.Push('1')
	f.Push('2')
	f.Push('3')
	assert.Equal(t, "4212", f.Value(FieldWork), "capped at four digits")

	f.Pop()
	assert.Equal(t, "421", f.Value(FieldWork))

	f.Prev()
	assert.Equal(t, FieldThreshold, f.Selected())
	f.Next()
	f.Next()
	assert.Equal(t, FieldShortBreak, f.Selected())

	rows := f.Rows()
	require.Len(t, rows, 4)
	assert.True(t, rows[1].Selected)
	assert.Equal(t, ">> Short Break Length: ", rows[1].Display())
	assert.Equal(t, "Timer Length: ", rows[0].Display())
}

func TestTaskForm_Estimate(t *testing.T) {
	var f TaskForm
	assert.Equal(t, 1, f.Estimate())

	f.Next()
	f.Next()
	assert.Equal(t, FieldEstimate, f.Selected())
	f.Push('0')
	assert.Equal(t, 1, f.Estimate(), "zero becomes the default")
	f.Clear()
	f.Push('x')
	f.Push('3')
	assert.Equal(t, 3, f.Estimate())
}

func TestTaskForm_PopMultibyte(t *testing.T) {
	var f TaskForm
	for _, r := range "café" {
		f.Push(r)
	}
	f.Pop()
	assert.Equal(t, "caf", f.Value(FieldTitle))
	f.Pop()
	f.Pop()
	f.Pop()
	f.Pop()
	assert.Equal(t, "", f.Value(FieldTitle))
}
