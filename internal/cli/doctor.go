package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/chromatic/internal/backup"
	"github.com/julianstephens/chromatic/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name    string
	run     func(*Context) error
	warning bool
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	defer ctx.Store.Close()
	ctx.printf("Running diagnostics...\n\n")

	if err := checkDBReachable(ctx); err != nil {
		ctx.printf("❌ Database reachable: FAIL\n   Error: %v\n", err)
		ctx.printf("⊘ Remaining checks: SKIPPED (database not reachable)\n")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.printf("✓ Database reachable: OK\n")

	checks := []check{
		{name: "Schema version", run: checkSchemaVersion},
		{name: "Backups present", run: checkBackupsPresent, warning: true},
		{name: "Data validation", run: checkTasks},
		{name: "Task conflicts", run: checkConflicts, warning: true},
		{name: "Clock/timezone", run: func(*Context) error { return checkClock(time.Now()) }},
	}

	failed := false
	for _, c := range checks {
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.printf("✓ %s: OK\n", c.name)
		case c.warning:
			ctx.printf("⚠ %s: WARNING\n   %v\n", c.name, err)
		default:
			ctx.printf("❌ %s: FAIL\n   Error: %v\n", c.name, err)
			failed = true
		}
	}

	ctx.printf("\n")
	if failed {
		ctx.printf("Diagnostics completed with errors.\n")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.printf("All diagnostics passed!\n")
	return nil
}

func checkDBReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if s, ok := ctx.sqliteStore(); ok {
		var result int
		if err := s.GetDB().QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	s, ok := ctx.sqliteStore()
	if !ok {
		return nil
	}
	current, latest, err := s.SchemaVersion()
	if err != nil {
		return err
	}
	switch {
	case current > latest:
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	case current < latest:
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	if _, ok := ctx.sqliteStore(); !ok {
		return nil
	}
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, consider creating one with 'chromatic backup create'")
	}
	return nil
}

// checkTasks re-validates every stored task, including its schedule.
func checkTasks(ctx *Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	for _, task := range tasks {
		if err := task.Validate(); err != nil {
			return fmt.Errorf("task %s (%s): %w", shortID(task.ID), task.Title, err)
		}
	}
	return nil
}

func checkConflicts(ctx *Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	result := validation.New().ValidateTasks(tasks, time.Now())
	if result.HasConflicts() {
		return fmt.Errorf("%d conflict(s) found, run 'chromatic validate' for details", len(result.Conflicts))
	}
	return nil
}

func checkClock(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
