// Package config loads pomotui settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fentz26/pomotui/internal/keymap"
	"github.com/fentz26/pomotui/internal/pomodoro"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFPS is how often the clock redraws per second.
	DefaultFPS = 30
	// MaxFPS caps the redraw rate.
	MaxFPS = 120
)

// Config is the on-disk configuration.
type Config struct {
	Timer TimerConfig         `yaml:"timer"`
	UI    UIConfig            `yaml:"ui"`
	Log   LogConfig           `yaml:"log"`
	Tasks TasksConfig         `yaml:"tasks"`
	Keys  map[string][]string `yaml:"keys"`
}

// TimerConfig holds the default interval lengths in minutes.
type TimerConfig struct {
	WorkMinutes           int `yaml:"work_minutes"`
	ShortBreakMinutes     int `yaml:"short_break_minutes"`
	LongBreakMinutes      int `yaml:"long_break_minutes"`
	PomodorosPerLongBreak int `yaml:"pomodoros_per_long_break"`
}

// UIConfig controls rendering.
type UIConfig struct {
	// FPS is the number of clock refreshes per second.
	FPS int `yaml:"fps"`
}

// LogConfig selects the log level and sink. An empty File discards logs.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// TasksConfig lists tasks added at startup.
type TasksConfig struct {
	Seed []string `yaml:"seed"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			WorkMinutes:           pomodoro.DefaultWorkMinutes,
			ShortBreakMinutes:     pomodoro.DefaultShortBreakMinutes,
			LongBreakMinutes:      pomodoro.DefaultLongBreakMinutes,
			PomodorosPerLongBreak: pomodoro.DefaultThreshold,
		},
		UI:    UIConfig{FPS: DefaultFPS},
		Log:   LogConfig{Level: "info"},
		Tasks: TasksConfig{Seed: []string{}},
		Keys:  map[string][]string{},
	}
}

// LoadConfig reads path over the defaults. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// HomePath returns ~/.pomotui/config.yaml.
func HomePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}
	return filepath.Join(home, ".pomotui", "config.yaml"), nil
}

// LoadConfigFromHome loads ~/.pomotui/config.yaml, or the defaults when
// there is no home directory.
func LoadConfigFromHome() (*Config, error) {
	path, err := HomePath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// SaveConfig writes cfg to path, creating parent directories if needed.
func SaveConfig(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Marshal renders cfg as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := c.Settings(); err != nil {
		return fmt.Errorf("timer: %w", err)
	}

	if c.UI.FPS < 1 || c.UI.FPS > MaxFPS {
		return fmt.Errorf("ui.fps must be between 1 and %d, got %d", MaxFPS, c.UI.FPS)
	}

	if _, err := log.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	if _, err := keymap.New(c.Keys); err != nil {
		return err
	}
	return nil
}

// Settings converts the timer section into committed pomodoro settings.
func (c *Config) Settings() (pomodoro.Settings, error) {
	return pomodoro.NewSettings(
		c.Timer.WorkMinutes,
		c.Timer.ShortBreakMinutes,
		c.Timer.LongBreakMinutes,
		c.Timer.PomodorosPerLongBreak,
	)
}

// SeedTasks returns the non-blank seed titles.
func (c *Config) SeedTasks() []string {
	var titles []string
	for _, t := range c.Tasks.Seed {
		if t = strings.TrimSpace(t); t != "" {
			titles = append(titles, t)
		}
	}
	return titles
}
