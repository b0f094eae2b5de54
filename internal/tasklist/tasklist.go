// Package tasklist keeps the ordered task list and its single selection.
package tasklist

import (
	"fmt"

	"github.com/fentz26/pomotui/internal/models"
)

// Backend is the storage the list reads through.
type Backend interface {
	CreateTask(title, notes string, estimate int) (*models.Task, error)
	ListTasks() ([]models.Task, error)
	DeleteTask(id string) error
}

// NoSelection is the selected index of an empty list.
const NoSelection = -1

// List is an ordered task collection with at most one selected entry.
// The selection is NoSelection exactly when the list is empty.
type List struct {
	backend  Backend
	items    []models.Task
	selected int
}

// New loads the current tasks from backend and selects the first one.
func New(backend Backend) (*List, error) {
	l := &List{backend: backend, selected: NoSelection}
	if err := l.reload(); err != nil {
		return nil, err
	}
	if len(l.items) > 0 {
		l.selected = 0
	}
	return l, nil
}

// Items returns a copy of the tasks in order.
func (l *List) Items() []models.Task {
	out := make([]models.Task, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List) Len() int {
	return len(l.items)
}

// Selected returns the selected index, or NoSelection.
func (l *List) Selected() int {
	return l.selected
}

// SelectedTask returns the selected task, if any.
func (l *List) SelectedTask() (models.Task, bool) {
	if l.selected < 0 || l.selected >= len(l.items) {
		return models.Task{}, false
	}
	return l.items[l.selected], true
}

// Add appends a task and selects it.
func (l *List) Add(title, notes string, estimate int) (models.Task, error) {
	task, err := l.backend.CreateTask(title, notes, estimate)
	if err != nil {
		return models.Task{}, fmt.Errorf("add task: %w", err)
	}
	if err := l.reload(); err != nil {
		return models.Task{}, err
	}
	l.selected = len(l.items) - 1
	return *task, nil
}

// Delete removes the selected task. It is a no-op on an empty list.
func (l *List) Delete() (models.Task, bool, error) {
	task, ok := l.SelectedTask()
	if !ok {
		return models.Task{}, false, nil
	}
	if err := l.backend.DeleteTask(task.ID); err != nil {
		return models.Task{}, false, fmt.Errorf("delete task: %w", err)
	}
	if err := l.reload(); err != nil {
		return models.Task{}, false, err
	}
	l.clamp()
	return task, true, nil
}

// Next selects the following entry, wrapping to the first.
func (l *List) Next() {
	if len(l.items) == 0 {
		return
	}
	if l.selected < 0 || l.selected >= len(l.items)-1 {
		l.selected = 0
		return
	}
	l.selected++
}

// Prev selects the preceding entry, wrapping to the last.
func (l *List) Prev() {
	if len(l.items) == 0 {
		return
	}
	if l.selected <= 0 {
		l.selected = len(l.items) - 1
		return
	}
	l.selected--
}

func (l *List) reload() error {
	items, err := l.backend.ListTasks()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	l.items = items
	return nil
}

func (l *List) clamp() {
	switch {
	case len(l.items) == 0:
		l.selected = NoSelection
	case l.selected >= len(l.items):
		l.selected = len(l.items) - 1
	}
}
