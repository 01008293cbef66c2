package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/chromatic/internal/models"
)

const jsonStoreVersion = 1

type document struct {
	Version int                    `json:"version"`
	Tasks   map[string]models.Task `json:"tasks"`
}

// JSONStore keeps every task in a single JSON file that is rewritten on each
// change.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// An existing file is kept as is.
	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.doc = &document{
		Version: jsonStoreVersion,
		Tasks:   make(map[string]models.Task),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'chromatic init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Version > jsonStoreVersion {
		return fmt.Errorf("storage version %d is newer than supported version %d", doc.Version, jsonStoreVersion)
	}
	if doc.Tasks == nil {
		doc.Tasks = make(map[string]models.Task)
	}
	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	s.doc = nil
	return nil
}

// save writes to a temp file and renames it over the store.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) ready() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) AddTask(task models.Task) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := task.Validate(); err != nil {
		return err
	}
	if _, ok := s.doc.Tasks[task.ID]; ok {
		return fmt.Errorf("failed to add task: duplicate id %s", task.ID)
	}
	s.doc.Tasks[task.ID] = task
	return s.save()
}

func (s *JSONStore) GetTask(id string) (models.Task, error) {
	if err := s.ready(); err != nil {
		return models.Task{}, err
	}
	task, ok := s.doc.Tasks[id]
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return task, nil
}

func (s *JSONStore) GetAllTasks() ([]models.Task, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	tasks := make([]models.Task, 0, len(s.doc.Tasks))
	for _, t := range s.doc.Tasks {
		tasks = append(tasks, t)
	}
	sortTasks(tasks)
	return tasks, nil
}

func (s *JSONStore) UpdateTask(task models.Task) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := task.Validate(); err != nil {
		return err
	}
	existing, ok := s.doc.Tasks[task.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, task.ID)
	}
	task.CreatedAt = existing.CreatedAt
	s.doc.Tasks[task.ID] = task
	return s.save()
}

func (s *JSONStore) DeleteTask(id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, ok := s.doc.Tasks[id]; !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	delete(s.doc.Tasks, id)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
