// Package store provides SQLite-backed task storage for pomotui.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fentz26/pomotui/internal/models"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database that disappears on Close.
const MemoryDSN = ":memory:"

// ErrTaskNotFound is returned when a task ID does not exist.
var ErrTaskNotFound = errors.New("task not found")

// ErrEmptyTitle is returned when a task is created without a title.
var ErrEmptyTitle = errors.New("task title is required")

// Store provides access to the task database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New opens the database at dsn and runs migrations. Use MemoryDSN for a
// store that lives only as long as the process.
func New(dsn string) (*Store, error) {
	if dsn != MemoryDSN {
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Every connection to :memory: is a separate database, so keep exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// migrate runs idempotent schema migrations.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		estimate INTEGER NOT NULL DEFAULT 1 CHECK (estimate >= 1),
		created_at DATETIME NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// CreateTask inserts a new task at the end of the list.
func (s *Store) CreateTask(title, notes string, estimate int) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if estimate < 1 {
		estimate = models.DefaultEstimate
	}

	task := &models.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Notes:     strings.TrimSpace(notes),
		Estimate:  estimate,
		CreatedAt: s.now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO tasks (id, title, notes, estimate, created_at) VALUES (?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Notes, task.Estimate, task.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

// ListTasks returns all tasks in insertion order.
func (s *Store) ListTasks() ([]models.Task, error) {
	rows, err := s.db.Query(`SELECT id, title, notes, estimate, created_at FROM tasks ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Notes, &task.Estimate, &task.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(id string) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if n == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// CountTasks returns the number of stored tasks.
func (s *Store) CountTasks() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}
