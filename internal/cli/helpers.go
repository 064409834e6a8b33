package cli

import (
	"errors"
	"fmt"

	"github.com/pablasso/gitdo/internal/store"
	"github.com/pablasso/gitdo/internal/task"
)

// projectStore returns the store for the current working directory. All
// commands operate on the project whose root is the directory gitdo runs in.
func projectStore() *store.Store {
	return store.New(".")
}

// loadTasks loads the collection, translating the uninitialized case into
// the message users should see.
func loadTasks(s *store.Store) ([]task.Task, error) {
	tasks, err := s.Load()
	if errors.Is(err, store.ErrNotInitialized) {
		return nil, fmt.Errorf("gitdo is not initialized. Run 'gitdo init' first")
	}
	return tasks, err
}
