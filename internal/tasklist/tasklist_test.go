package tasklist

import (
	"errors"
	"testing"

	"github.com/fentz26/pomotui/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(t *testing.T, titles ...string) *List {
	t.Helper()
	s, err := store.New(store.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	for _, title := range titles {
		_, err := s.CreateTask(title, "", 1)
		require.NoError(t, err)
	}
	l, err := New(s)
	require.NoError(t, err)
	return l
}

func TestNew_SelectsFirstTask(t *testing.T) {
	l := newTestList(t, "a", "b")
	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, 2, l.Len())

	empty := newTestList(t)
	assert.Equal(t, NoSelection, empty.Selected())
}

func TestDelete_EmptyListIsNoop(t *testing.T) {
	l := newTestList(t)

	_, ok, err := l.Delete()
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, NoSelection, l.Selected())
	assert.Equal(t, 0, l.Len())
}

func TestDelete_ClampsSelection(t *testing.T) {
	l := newTestList(t, "a", "b", "c")
	l.Prev() // wraps to "c"
	require.Equal(t, 2, l.Selected())

	removed, ok, err := l.Delete()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "c", removed.Title)
	assert.Equal(t, 1, l.Selected())

	for l.Len() > 0 {
		_, _, err := l.Delete()
		require.NoError(t, err)
	}
	assert.Equal(t, NoSelection, l.Selected())
}

func TestAdd_SelectsNewTask(t *testing.T) {
	l := newTestList(t, "a")

	task, err := l.Add("b", "notes", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, l.Selected())
	assert.Equal(t, 3, task.Estimate)

	got, ok := l.SelectedTask()
	assert.True(t, ok)
	assert.Equal(t, task.ID, got.ID)
}

func TestAdd_RejectsEmptyTitle(t *testing.T) {
	l := newTestList(t)

	_, err := l.Add(" ", "", 1)
	assert.True(t, errors.Is(err, store.ErrEmptyTitle))
	assert.Equal(t, NoSelection, l.Selected())
}

func TestNextPrev_Wrap(t *testing.T) {
	l := newTestList(t, "a", "b", "c")

	l.Next()
	l.Next()
	assert.Equal(t, 2, l.Selected())
	l.Next()
	assert.Equal(t, 0, l.Selected())
	l.Prev()
	assert.Equal(t, 2, l.Selected())
}

func TestNextPrev_EmptyListIsNoop(t *testing.T) {
	l := newTestList(t)
	l.Next()
	l.Prev()
	assert.Equal(t, NoSelection, l.Selected())
}
