package storage

import (
	"errors"

	"github.com/julianstephens/chromatic/internal/models"
)

var ErrTaskNotFound = errors.New("task not found")

// Provider persists tasks. Implementations are not safe for concurrent use
// and a single database must not be shared by two running processes.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error

	// Utils
	GetConfigPath() string
}
