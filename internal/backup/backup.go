// Package backup snapshots the sqlite task database into a sibling
// backups directory and restores from those snapshots.
package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/chromatic/internal/constants"
	"github.com/julianstephens/chromatic/internal/logger"
)

// Filename layouts, minute precision first.
var timestampLayouts = []string{"20060102-1504", "20060102-150405"}

type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

type Manager struct {
	dbPath    string
	backupDir string
	keep      int
	now       func() time.Time
}

func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), constants.BackupDirName),
		keep:      constants.MaxBackups,
		now:       time.Now,
	}
}

func (m *Manager) Dir() string {
	return m.backupDir
}

// CreateBackup writes a new snapshot and drops the oldest ones beyond the
// retention limit.
func (m *Manager) CreateBackup() (string, error) {
	path, err := m.create()
	if err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("failed to rotate old backups", "error", err)
	}
	return path, nil
}

// CreateDailyBackup creates a snapshot unless one was already taken today.
// It returns an empty path when nothing was written.
func (m *Manager) CreateDailyBackup() (string, error) {
	backups, err := m.ListBackups()
	if err != nil {
		return "", err
	}
	if len(backups) > 0 {
		y1, m1, d1 := backups[0].Timestamp.Date()
		y2, m2, d2 := m.now().Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			return "", nil
		}
	}
	return m.CreateBackup()
}

func (m *Manager) create() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return "", fmt.Errorf("database does not exist: %s", m.dbPath)
	}

	dest, err := m.nextPath()
	if err != nil {
		return "", err
	}
	if err := m.snapshot(dest); err != nil {
		return "", fmt.Errorf("failed to backup database: %w", err)
	}
	logger.Info("created backup", "path", dest)
	return dest, nil
}

func (m *Manager) nextPath() (string, error) {
	now := m.now()
	for _, layout := range timestampLayouts {
		p := m.pathFor(now.Format(layout))
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return p, nil
		}
	}
	stamp := now.Format(timestampLayouts[len(timestampLayouts)-1])
	for i := 1; i <= 100; i++ {
		p := m.pathFor(fmt.Sprintf("%s-%d", stamp, i))
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return p, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique backup filename")
}

func (m *Manager) pathFor(stamp string) string {
	return filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+constants.BackupFileSuffix)
}

func (m *Manager) snapshot(dest string) error {
	src, err := sql.Open("sqlite", m.dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer src.Close()

	if err := ping(src); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := src.Exec("VACUUM INTO ?", dest); err != nil {
		logger.Debug("VACUUM INTO failed, copying file", "error", err)
		src.Close()
		return copyFile(m.dbPath, dest)
	}
	return nil
}

// ListBackups returns the snapshots in the backup directory, newest first.
// Files whose names do not carry a timestamp are ignored.
func (m *Manager) ListBackups() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, ok := parseName(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: ts,
			Size:      info.Size(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// parseName extracts the timestamp from chromatic-YYYYMMDD-HHMM[SS][-N].db.
func parseName(name string) (time.Time, bool) {
	stamp, ok := strings.CutPrefix(name, constants.BackupFilePrefix)
	if !ok {
		return time.Time{}, false
	}
	stamp, ok = strings.CutSuffix(stamp, constants.BackupFileSuffix)
	if !ok {
		return time.Time{}, false
	}

	parts := strings.Split(stamp, "-")
	if len(parts) == 3 {
		stamp = parts[0] + "-" + parts[1]
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, stamp, time.Local); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func (m *Manager) rotate() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) <= m.keep {
		return nil
	}
	for _, b := range backups[m.keep:] {
		if err := os.Remove(b.Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", b.Path, err)
		}
		logger.Debug("removed old backup", "path", b.Path)
	}
	return nil
}

// RestoreBackup replaces the database with a snapshot. The current database,
// if any, is snapshotted first without rotation. The store must be closed.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err := verify(backupPath); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(m.dbPath); err == nil {
		current, err := m.create()
		if err != nil {
			return fmt.Errorf("failed to backup current database before restore: %w", err)
		}
		logger.Info("saved current database before restore", "path", current)
	}

	tmp := m.dbPath + ".restore.tmp"
	if err := copyFile(backupPath, tmp); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.dbPath); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logger.Warn("failed to remove temporary file", "path", tmp, "error", rmErr)
		}
		return fmt.Errorf("failed to restore database: %w", err)
	}
	logger.Info("restored database", "from", backupPath)
	return nil
}

func verify(path string) error {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()
	return ping(db)
}

func ping(db *sql.DB) error {
	var n int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&n)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
