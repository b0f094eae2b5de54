package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fentz26/pomotui/internal/pomodoro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, pomodoro.DefaultSettings(), s)
	assert.Equal(t, DefaultFPS, cfg.UI.FPS)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, pomodoro.DefaultWorkMinutes, cfg.Timer.WorkMinutes)
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := writeConfig(t, `
timer:
  work_minutes: 50
  pomodoros_per_long_break: 2
ui:
  fps: 10
tasks:
  seed: ["Read mail", "  ", "Write report"]
keys:
  toggle_timer: ["t"]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, 50*time.Minute, s.Work)
	assert.Equal(t, 5*time.Minute, s.ShortBreak, "unset field keeps its default")
	assert.Equal(t, 2, s.Threshold)
	assert.Equal(t, 10, cfg.UI.FPS)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"t"}, cfg.Keys["toggle_timer"])
	assert.Equal(t, []string{"Read mail", "Write report"}, cfg.SeedTasks())
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"minutes ceiling", "timer:\n  work_minutes: 100\n", "timer"},
		{"negative threshold", "timer:\n  pomodoros_per_long_break: -1\n", "timer"},
		{"fps zero", "ui:\n  fps: 0\n", "ui.fps"},
		{"fps too high", "ui:\n  fps: 500\n", "ui.fps"},
		{"log level", "log:\n  level: loud\n", "log.level"},
		{"unknown action", "keys:\n  fly: [\"f\"]\n", "keys.fly"},
		{"bad yaml", "timer: [", "parsing config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Timer.LongBreakMinutes = 30
	cfg.Log.File = "/tmp/pomotui.log"

	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30, loaded.Timer.LongBreakMinutes)
	assert.Equal(t, "/tmp/pomotui.log", loaded.Log.File)
}

func TestSaveConfigRejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UI.FPS = 0
	assert.Error(t, SaveConfig(filepath.Join(t.TempDir(), "c.yaml"), cfg))
	assert.Error(t, SaveConfig(filepath.Join(t.TempDir(), "c.yaml"), nil))
}
