// Package models defines the core domain types for pomotui.
package models

import "time"

// DefaultEstimate is the pomodoro estimate a task gets when none is given.
const DefaultEstimate = 1

// Task is an entry in the task list.
type Task struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Notes     string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	Estimate  int       `json:"estimate" yaml:"estimate"` // pomodoros, always >= 1
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
