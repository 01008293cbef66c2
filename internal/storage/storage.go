package storage

import (
	"sort"
	"strings"

	"github.com/julianstephens/chromatic/internal/config"
	"github.com/julianstephens/chromatic/internal/models"
)

const sqliteURLPrefix = "sqlite:///"

// ResolvePath turns a database location into a file path. It accepts a
// plain path, a "~" prefixed path, or a sqlite:///path URL (relative to the
// working directory, as in sqlite:///default.db).
func ResolvePath(dsn string) (string, error) {
	dsn = strings.TrimSpace(dsn)
	if rest, ok := strings.CutPrefix(dsn, sqliteURLPrefix); ok {
		dsn = rest
	}
	return config.ExpandHome(dsn)
}

// Open picks the backend from the file extension: .json files use the JSON
// store, anything else is a sqlite database.
func Open(dsn string) (Provider, error) {
	path, err := ResolvePath(dsn)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return NewJSONStore(path), nil
	}
	return NewSQLiteStore(path), nil
}

// sortTasks orders scheduled tasks by date and time, unscheduled ones last,
// then by creation time.
func sortTasks(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.IsScheduled() != b.IsScheduled() {
			return a.IsScheduled()
		}
		if a.IsScheduled() {
			ta, tb := a.Schedule.Time(nil), b.Schedule.Time(nil)
			if !ta.Equal(tb) {
				return ta.Before(tb)
			}
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}
