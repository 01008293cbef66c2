package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/chromatic/internal/backup"
	"github.com/julianstephens/chromatic/internal/logger"
	"github.com/julianstephens/chromatic/internal/models"
	"github.com/julianstephens/chromatic/internal/storage"
)

type Context struct {
	Store storage.Provider
	Out   io.Writer
	In    io.Reader
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) in() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

// sqliteStore returns the store as a SQLiteStore for the commands that only
// make sense for a database file.
func (c *Context) sqliteStore() (*storage.SQLiteStore, bool) {
	s, ok := c.Store.(*storage.SQLiteStore)
	return s, ok
}

// PerformAutomaticBackup takes the day's first backup. Failures are logged
// and never interrupt the user.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.sqliteStore(); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateDailyBackup(); err != nil {
		logger.Warn("automatic backup failed", "error", err)
	}
}

// findTask resolves a full task ID or a unique prefix of one.
func findTask(ctx *Context, id string) (models.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Task{}, fmt.Errorf("task id is required")
	}
	if task, err := ctx.Store.GetTask(id); err == nil {
		return task, nil
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return models.Task{}, err
	}
	var matches []models.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, id) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return models.Task{}, fmt.Errorf("%w: %s", storage.ErrTaskNotFound, id)
	case 1:
		return matches[0], nil
	default:
		return models.Task{}, fmt.Errorf("task id %q is ambiguous (%d matches)", id, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
