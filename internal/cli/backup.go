package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/chromatic/internal/backup"
	"github.com/julianstephens/chromatic/internal/constants"
	"github.com/julianstephens/chromatic/internal/logger"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a backup now."`
	List    BackupListCmd    `cmd:"" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore the database from a backup."`
}

// backupManager loads the store and checks it is a sqlite database.
func backupManager(ctx *Context) (*backup.Manager, error) {
	if err := ctx.Store.Load(); err != nil {
		return nil, err
	}
	if _, ok := ctx.sqliteStore(); !ok {
		return nil, fmt.Errorf("backups are only supported for sqlite databases")
	}
	return backup.NewManager(ctx.Store.GetConfigPath()), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	path, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	ctx.printf("✓ Backup created: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		ctx.printf("No backups found.\nBackups are stored in: %s\n", mgr.Dir())
		return nil
	}

	ctx.printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		ctx.printf("  %s  %s  (%.1f KB)\n",
			b.Timestamp.Format(constants.DateFormat+" "+constants.TimeFormat), filepath.Base(b.Path), float64(b.Size)/1024.0)
	}
	ctx.printf("\nBackup directory: %s\n", mgr.Dir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}

	path := c.BackupFile
	if !filepath.IsAbs(path) {
		candidate := filepath.Join(mgr.Dir(), path)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		ctx.Store.Close()
		return fmt.Errorf("backup file not found: %s", path)
	}

	if !c.Yes {
		ctx.printf("This will replace your current database with the backup.\n")
		ctx.printf("A backup of your current database will be created before restoring.\n")
		ctx.printf("\nRestore from: %s\nContinue? [y/N]: ", filepath.Base(path))

		answer, err := bufio.NewReader(ctx.in()).ReadString('\n')
		if err != nil && answer == "" {
			ctx.Store.Close()
			return err
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			ctx.printf("Restore cancelled.\n")
			return ctx.Store.Close()
		}
	}

	if err := ctx.Store.Close(); err != nil {
		logger.Warn("failed to close database before restore", "error", err)
	}
	if err := mgr.RestoreBackup(path); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	ctx.printf("✓ Database restored successfully!\n")
	return nil
}
