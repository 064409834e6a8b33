package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pablasso/gitdo/internal/task"
)

const (
	// DirName is the hidden project directory holding all gitdo state.
	DirName = ".gitdo"

	tasksFileName = "tasks.json"
)

var (
	ErrNotInitialized     = errors.New("gitdo is not initialized")
	ErrAlreadyInitialized = errors.New("gitdo is already initialized")
	ErrCorruptStore       = errors.New("task store is corrupt")
)

// Store persists the ordered task collection of one project as a single
// JSON file under <base>/.gitdo/. Every command loads the collection fresh,
// mutates it in memory and writes it back wholesale; the store assumes two
// invocations never run concurrently against the same project and does not
// take a cross-process lock.
type Store struct {
	base string
}

// New returns a store rooted at base. An empty base means the current
// directory.
func New(base string) *Store {
	if base == "" {
		base = "."
	}
	return &Store{base: base}
}

func (s *Store) dir() string {
	return filepath.Join(s.base, DirName)
}

func (s *Store) tasksFile() string {
	return filepath.Join(s.dir(), tasksFileName)
}

// Initialized reports whether the project directory and store file exist.
func (s *Store) Initialized() bool {
	info, err := os.Stat(s.dir())
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = os.Stat(s.tasksFile())
	return err == nil
}

// Init creates the hidden project directory with an empty task collection.
// Re-running init in an initialized project is an error, not a no-op.
func (s *Store) Init() error {
	if _, err := os.Stat(s.dir()); err == nil {
		return ErrAlreadyInitialized
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check %s: %w", s.dir(), err)
	}

	if err := os.MkdirAll(s.dir(), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.dir(), err)
	}

	return s.Save([]task.Task{})
}

// Load reads and validates the full task collection in insertion order.
// Any structural mismatch — malformed JSON, a record missing a required
// field, an unknown status, a duplicate ID — fails with ErrCorruptStore
// rather than letting bad data into the in-memory model.
func (s *Store) Load() ([]task.Task, error) {
	if !s.Initialized() {
		return nil, ErrNotInitialized
	}

	data, err := os.ReadFile(s.tasksFile())
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.tasksFile(), err)
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}

	seen := make(map[string]bool, len(tasks))
	for i := range tasks {
		if err := tasks[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrCorruptStore, i+1, err)
		}
		if seen[tasks[i].ID] {
			return nil, fmt.Errorf("%w: duplicate task id %s", ErrCorruptStore, tasks[i].ID)
		}
		seen[tasks[i].ID] = true
	}

	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks, nil
}

// Save atomically replaces the store file with the given collection.
// The data is written to a temp file first and renamed into place, so an
// interruption mid-write leaves the previous file intact.
func (s *Store) Save(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	path := s.tasksFile()
	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
