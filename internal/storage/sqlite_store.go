package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/chromatic/internal/constants"
	"github.com/julianstephens/chromatic/internal/logger"
	"github.com/julianstephens/chromatic/internal/migration"
	"github.com/julianstephens/chromatic/internal/models"
	"github.com/julianstephens/chromatic/migrations"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

// Init creates the database file if needed and brings the schema up to date.
// It is safe to run on an existing database.
func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'chromatic init' first")
	}

	if err := s.open(); err != nil {
		return err
	}

	runner, err := s.runner()
	if err != nil {
		return err
	}
	if err := runner.ValidateVersion(); err != nil {
		return err
	}
	// Pick up migrations added by newer releases.
	if _, err := runner.ApplyMigrations(logMigration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps sqlite writes serialized.
	db.SetMaxOpenConns(1)
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS), nil
}

func (s *SQLiteStore) runMigrations() error {
	runner, err := s.runner()
	if err != nil {
		return err
	}
	_, err = runner.ApplyMigrations(logMigration)
	return err
}

// SchemaVersion reports the applied and the newest known migration.
func (s *SQLiteStore) SchemaVersion() (current, latest int, err error) {
	if err := s.ready(); err != nil {
		return 0, 0, err
	}
	runner, err := s.runner()
	if err != nil {
		return 0, 0, err
	}
	if current, err = runner.GetCurrentVersion(); err != nil {
		return 0, 0, fmt.Errorf("failed to get current schema version: %w", err)
	}
	if latest, err = runner.GetLatestVersion(); err != nil {
		return 0, 0, fmt.Errorf("failed to get latest schema version: %w", err)
	}
	return current, latest, nil
}

func logMigration(msg string) {
	logger.Info(msg)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying connection, nil before Init or Load.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

const taskColumns = `id, title, description, status, category,
	year_scheduled, month_scheduled, day_scheduled, time_scheduled,
	created_at, updated_at`

func (s *SQLiteStore) AddTask(task models.Task) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := task.Validate(); err != nil {
		return err
	}
	year, month, day, tod := models.ScheduleColumns(task.Schedule)
	_, err := s.db.Exec(`INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Description, string(task.Status), string(task.Category),
		year, month, day, tod,
		formatTimestamp(task.CreatedAt), formatTimestamp(task.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetTask(id string) (models.Task, error) {
	if err := s.ready(); err != nil {
		return models.Task{}, err
	}
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return t, err
}

func (s *SQLiteStore) GetAllTasks() ([]models.Task, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.db.Query(`SELECT ` + taskColumns + ` FROM tasks`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sortTasks(tasks)
	return tasks, nil
}

func (s *SQLiteStore) UpdateTask(task models.Task) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := task.Validate(); err != nil {
		return err
	}
	year, month, day, tod := models.ScheduleColumns(task.Schedule)
	res, err := s.db.Exec(`UPDATE tasks SET
		title = ?, description = ?, status = ?, category = ?,
		year_scheduled = ?, month_scheduled = ?, day_scheduled = ?, time_scheduled = ?,
		updated_at = ?
		WHERE id = ?`,
		task.Title, task.Description, string(task.Status), string(task.Category),
		year, month, day, tod,
		formatTimestamp(task.UpdatedAt), task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return expectOneRow(res, task.ID)
}

func (s *SQLiteStore) DeleteTask(id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return expectOneRow(res, id)
}

func (s *SQLiteStore) ready() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func expectOneRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		t                  models.Task
		status, category   string
		year, month, day   sql.NullInt64
		tod                sql.NullString
		createdAt, updated string
	)
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &status, &category,
		&year, &month, &day, &tod,
		&createdAt, &updated,
	)
	if err != nil {
		return models.Task{}, err
	}

	t.Status = models.Status(status)
	t.Category = models.Category(category)
	if t.Schedule, err = models.ScheduleFromColumns(year, month, day, tod); err != nil {
		return models.Task{}, fmt.Errorf("task %s: %w", t.ID, err)
	}
	t.CreatedAt = parseTimestamp(createdAt)
	t.UpdatedAt = parseTimestamp(updated)
	return t, nil
}

func formatTimestamp(ts time.Time) string {
	return ts.UTC().Format(constants.TimestampFormat)
}

func parseTimestamp(s string) time.Time {
	ts, err := time.Parse(constants.TimestampFormat, s)
	if err != nil {
		return time.Time{}
	}
	return ts
}
