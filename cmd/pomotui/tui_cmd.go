package main

import (
	"fmt"

	"github.com/fentz26/pomotui/internal/config"
	"github.com/fentz26/pomotui/internal/keymap"
	"github.com/fentz26/pomotui/internal/logging"
	"github.com/fentz26/pomotui/internal/models"
	"github.com/fentz26/pomotui/internal/pomodoro"
	"github.com/fentz26/pomotui/internal/store"
	"github.com/fentz26/pomotui/internal/tasklist"
	"github.com/fentz26/pomotui/internal/tui"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closeLog()

	defaults, err := cfg.Settings()
	if err != nil {
		return err
	}

	keys, err := keymap.New(cfg.Keys)
	if err != nil {
		return err
	}

	// Tasks live for the session only.
	s, err := store.New(store.MemoryDSN)
	if err != nil {
		return fmt.Errorf("failed to open task store: %w", err)
	}
	defer s.Close()
	if err := s.Ping(cmd.Context()); err != nil {
		return fmt.Errorf("task store unavailable: %w", err)
	}

	for _, title := range cfg.SeedTasks() {
		if _, err := s.CreateTask(title, "", models.DefaultEstimate); err != nil {
			return fmt.Errorf("failed to seed task %q: %w", title, err)
		}
	}

	tasks, err := tasklist.New(s)
	if err != nil {
		return err
	}

	ctrl := pomodoro.NewController(tasks,
		pomodoro.WithDefaults(defaults),
		pomodoro.WithLogger(logger),
	)

	count, err := s.CountTasks()
	if err != nil {
		return err
	}
	logger.Info("starting", "fps", cfg.UI.FPS, "settings", defaults, "tasks", count)
	app := tui.New(ctrl, keys, tui.WithFPS(cfg.UI.FPS))
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	logger.Info("exiting", "state", ctrl.State())
	return nil
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.UI.FPS = fps
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
}
