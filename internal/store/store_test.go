package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	s, err := New(dbPath)
	require.NoError(t, err, "failed to create store")
	defer s.Close()

	assert.FileExists(t, dbPath)
}

func TestNewMemory(t *testing.T) {
	s := newTestStore(t)

	n, err := s.CountTasks()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestTaskCRUD(t *testing.T) {
	s := newTestStore(t)

	// Create
	task, err := s.CreateTask("  Unix Programming ", " chapter 3 ", 2)
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Unix Programming", task.Title)
	assert.Equal(t, "chapter 3", task.Notes)

	// List
	tasks, err := s.ListTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
	assert.Equal(t, 2, tasks[0].Estimate)

	// Delete
	require.NoError(t, s.DeleteTask(task.ID))
	n, err := s.CountTasks()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, s.DeleteTask(task.ID), ErrTaskNotFound)
}

func TestCreateTaskDefaults(t *testing.T) {
	s := newTestStore(t)

	task, err := s.CreateTask("Pomodoro Dev", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, task.Estimate)

	_, err = s.CreateTask("   ", "", 1)
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestListTasksKeepsInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	titles := []string{"Unix Programming", "Pomodoro Dev", "Computer Networking"}
	for _, title := range titles {
		_, err := s.CreateTask(title, "", 1)
		require.NoError(t, err)
	}

	tasks, err := s.ListTasks()
	require.NoError(t, err)
	require.Len(t, tasks, len(titles))
	for i, task := range tasks {
		assert.Equal(t, titles[i], task.Title, "task %d", i)
	}

	n, err := s.CountTasks()
	require.NoError(t, err)
	assert.Equal(t, len(titles), n)
}

func TestDeleteMissingTask(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.DeleteTask("missing"), ErrTaskNotFound)
}

func TestPing(t *testing.T) {
	s := newTestStore(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, s.Ping(ctx))
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(MemoryDSN)
	require.NoError(t, err, "failed to create store")
	t.Cleanup(func() { s.Close() })
	return s
}
