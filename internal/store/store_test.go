package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pablasso/gitdo/internal/task"
)

// chtmp moves the test into a fresh temp directory, matching how the CLI
// always operates on the current working directory.
func chtmp(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(originalWd) })
}

func mustTask(t *testing.T, title string) task.Task {
	t.Helper()
	tk, err := task.New(title)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	return tk
}

func TestInit(t *testing.T) {
	t.Run("creates directory and empty store", func(t *testing.T) {
		chtmp(t)
		s := New(".")

		if err := s.Init(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.Initialized() {
			t.Fatal("store not initialized after Init")
		}

		tasks, err := s.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 0 {
			t.Errorf("got %d tasks, want 0", len(tasks))
		}
	})

	t.Run("fails when already initialized", func(t *testing.T) {
		chtmp(t)
		s := New(".")

		if err := s.Init(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.Init(); !errors.Is(err, ErrAlreadyInitialized) {
			t.Errorf("got %v, want ErrAlreadyInitialized", err)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("fails when not initialized", func(t *testing.T) {
		chtmp(t)
		s := New(".")

		if _, err := s.Load(); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("got %v, want ErrNotInitialized", err)
		}
	})

	t.Run("round-trips saved tasks field for field", func(t *testing.T) {
		chtmp(t)
		s := New(".")
		if err := s.Init(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		saved := []task.Task{mustTask(t, "first"), mustTask(t, "second")}
		if _, err := saved[1].Start(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.Save(saved); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		loaded, err := s.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(loaded) != len(saved) {
			t.Fatalf("got %d tasks, want %d", len(loaded), len(saved))
		}
		for i := range saved {
			if loaded[i].ID != saved[i].ID {
				t.Errorf("task %d: got id %q, want %q", i, loaded[i].ID, saved[i].ID)
			}
			if loaded[i].Title != saved[i].Title {
				t.Errorf("task %d: got title %q, want %q", i, loaded[i].Title, saved[i].Title)
			}
			if loaded[i].Status != saved[i].Status {
				t.Errorf("task %d: got status %q, want %q", i, loaded[i].Status, saved[i].Status)
			}
			if !loaded[i].CreatedAt.Equal(saved[i].CreatedAt) {
				t.Errorf("task %d: got created_at %v, want %v", i, loaded[i].CreatedAt, saved[i].CreatedAt)
			}
			if !loaded[i].UpdatedAt.Equal(saved[i].UpdatedAt) {
				t.Errorf("task %d: got updated_at %v, want %v", i, loaded[i].UpdatedAt, saved[i].UpdatedAt)
			}
		}
	})

	corruptCases := []struct {
		name    string
		content string
	}{
		{"malformed json", `{not json`},
		{"missing title", `[{"id":"abc123","title":"","status":"pending","created_at":"2026-01-02T03:04:05Z","updated_at":"2026-01-02T03:04:05Z"}]`},
		{"invalid status", `[{"id":"abc123","title":"task","status":"done","created_at":"2026-01-02T03:04:05Z","updated_at":"2026-01-02T03:04:05Z"}]`},
		{"duplicate ids", `[{"id":"abc123","title":"one","status":"pending","created_at":"2026-01-02T03:04:05Z","updated_at":"2026-01-02T03:04:05Z"},{"id":"abc123","title":"two","status":"pending","created_at":"2026-01-02T03:04:05Z","updated_at":"2026-01-02T03:04:05Z"}]`},
	}

	for _, tt := range corruptCases {
		t.Run("corrupt store: "+tt.name, func(t *testing.T) {
			chtmp(t)
			s := New(".")
			if err := s.Init(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := os.WriteFile(filepath.Join(DirName, "tasks.json"), []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write store file: %v", err)
			}

			if _, err := s.Load(); !errors.Is(err, ErrCorruptStore) {
				t.Errorf("got %v, want ErrCorruptStore", err)
			}
		})
	}
}

func TestSave(t *testing.T) {
	t.Run("leaves no temp files behind", func(t *testing.T) {
		chtmp(t)
		s := New(".")
		if err := s.Init(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.Save([]task.Task{mustTask(t, "task")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entries, err := os.ReadDir(DirName)
		if err != nil {
			t.Fatalf("failed to read store dir: %v", err)
		}
		for _, entry := range entries {
			if strings.Contains(entry.Name(), ".tmp.") {
				t.Errorf("temp file left behind: %s", entry.Name())
			}
		}
	})

	t.Run("writes human-diffable json", func(t *testing.T) {
		chtmp(t)
		s := New(".")
		if err := s.Init(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		tk := task.Task{
			ID:        "abc123",
			Title:     "task",
			Status:    task.StatusPending,
			CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		}
		if err := s.Save([]task.Task{tk}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(filepath.Join(DirName, "tasks.json"))
		if err != nil {
			t.Fatalf("failed to read store file: %v", err)
		}
		content := string(data)
		for _, want := range []string{"\"id\": \"abc123\"", "\"status\": \"pending\"", "\n  "} {
			if !strings.Contains(content, want) {
				t.Errorf("store file missing %q:\n%s", want, content)
			}
		}
	})
}
