package pomodoro

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWorkMinutes and friends are the built-in interval lengths.
	DefaultWorkMinutes       = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
	DefaultThreshold         = 4

	// MaxMinutes is the exclusive ceiling for any interval; the clock shows two minute digits.
	MaxMinutes = 100
)

// Sentinel errors for settings validation.
var (
	ErrInvalidNumber = errors.New("not a non-negative integer")
	ErrOutOfRange    = errors.New("value out of range")
)

// Settings are the committed interval lengths and the long break threshold.
type Settings struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
	// Threshold is the number of pomodoros completed before a long break.
	Threshold int
}

// DefaultSettings returns 25/5/15 minutes with a long break every 4 pomodoros.
func DefaultSettings() Settings {
	return Settings{
		Work:       DefaultWorkMinutes * time.Minute,
		ShortBreak: DefaultShortBreakMinutes * time.Minute,
		LongBreak:  DefaultLongBreakMinutes * time.Minute,
		Threshold:  DefaultThreshold,
	}
}

// NewSettings builds settings from minute counts, checking the same limits as ParseSettings.
func NewSettings(work, short, long, threshold int) (Settings, error) {
	for _, f := range []struct {
		name string
		v    int
	}{{"work", work}, {"short break", short}, {"long break", long}} {
		if f.v < 0 {
			return Settings{}, fmt.Errorf("%s length %d: %w", f.name, f.v, ErrInvalidNumber)
		}
		if f.v >= MaxMinutes {
			return Settings{}, fmt.Errorf("%s length %d: %w", f.name, f.v, ErrOutOfRange)
		}
	}
	if threshold < 0 {
		return Settings{}, fmt.Errorf("pomodoros per long break %d: %w", threshold, ErrInvalidNumber)
	}
	return Settings{
		Work:       time.Duration(work) * time.Minute,
		ShortBreak: time.Duration(short) * time.Minute,
		LongBreak:  time.Duration(long) * time.Minute,
		Threshold:  threshold,
	}, nil
}

// ParseSettings validates the four text fields of the settings form.
func ParseSettings(work, short, long, threshold string) (Settings, error) {
	w, err := parseCount("work", work)
	if err != nil {
		return Settings{}, err
	}
	s, err := parseCount("short break", short)
	if err != nil {
		return Settings{}, err
	}
	l, err := parseCount("long break", long)
	if err != nil {
		return Settings{}, err
	}
	n, err := parseCount("pomodoros per long break", threshold)
	if err != nil {
		return Settings{}, err
	}
	return NewSettings(w, s, l, n)
}

// Duration returns the configured length of phase p.
func (s Settings) Duration(p Phase) time.Duration {
	switch p {
	case PhaseShortBreak:
		return s.ShortBreak
	case PhaseLongBreak:
		return s.LongBreak
	default:
		return s.Work
	}
}

// Minutes renders the settings as the text the form shows.
func (s Settings) Minutes() (work, short, long, threshold string) {
	return strconv.Itoa(int(s.Work / time.Minute)),
		strconv.Itoa(int(s.ShortBreak / time.Minute)),
		strconv.Itoa(int(s.LongBreak / time.Minute)),
		strconv.Itoa(s.Threshold)
}

func parseCount(name, text string) (int, error) {
	text = strings.TrimSpace(text)
	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%s %q: %w", name, text, ErrOutOfRange)
		}
		return 0, fmt.Errorf("%s %q: %w", name, text, ErrInvalidNumber)
	}
	return int(v), nil
}
