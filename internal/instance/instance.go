// Package instance keeps two TUI sessions from editing the same database.
package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/chromatic/internal/constants"
	"github.com/julianstephens/chromatic/internal/logger"
)

var ErrAlreadyRunning = errors.New("another chromatic session is already running")

var (
	findProcessFunc = ps.FindProcess
	getpid          = os.Getpid
)

// Lock is a PID lockfile stored next to the database. The file holds
// "PID|executable" of the owning process.
type Lock struct {
	path string
	held bool
}

func New(dbPath string) *Lock {
	return &Lock{path: filepath.Join(filepath.Dir(dbPath), constants.LockfileName)}
}

func (l *Lock) Path() string {
	return l.path
}

// Acquire writes the lockfile. A lockfile whose process is gone, or is now
// a different program, is considered stale and replaced.
func (l *Lock) Acquire() error {
	if l.held {
		return nil
	}

	if data, err := os.ReadFile(l.path); err == nil {
		if pid, exe, ok := parse(string(data)); ok && pid != getpid() && alive(pid, exe) {
			return fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, pid)
		}
		logger.Debug("replacing stale lockfile", "path", l.path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read lockfile: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0700); err != nil {
		return fmt.Errorf("failed to create lockfile directory: %w", err)
	}
	content := fmt.Sprintf("%d|%s", getpid(), executable(getpid()))
	if err := os.WriteFile(l.path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write lockfile: %w", err)
	}
	l.held = true
	return nil
}

// Release removes the lockfile if this process still owns it.
func (l *Lock) Release() error {
	if !l.held {
		return nil
	}
	l.held = false

	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read lockfile: %w", err)
	}
	if pid, _, ok := parse(string(data)); ok && pid != getpid() {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

func parse(content string) (int, string, bool) {
	pidStr, exe, _ := strings.Cut(strings.TrimSpace(content), "|")
	pid, err := strconv.Atoi(pidStr)
	if err != nil || pid <= 0 {
		return 0, "", false
	}
	return pid, exe, true
}

func alive(pid int, exe string) bool {
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return false
	}
	return exe == "" || process.Executable() == exe
}

func executable(pid int) string {
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return ""
	}
	return process.Executable()
}
