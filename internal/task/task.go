package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task represents a single unit of work tracked in a project store.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Task status constants
const (
	StatusPending    = "pending"
	StatusInProgress = "inprogress"
	StatusCompleted  = "completed"
)

// ShortIDLength is how many leading ID characters are shown to the user.
// Any unambiguous prefix, down to a single character, resolves a task.
const ShortIDLength = 8

// New creates a pending task with a freshly generated ID.
func New(title string) (Task, error) {
	if strings.TrimSpace(title) == "" {
		return Task{}, ErrEmptyTitle
	}
	now := time.Now()
	return Task{
		ID:        newID(),
		Title:     title,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// newID returns a 32-character lowercase hex identifier (a UUID with the
// hyphens stripped).
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ShortID returns the truncated display form of the task ID.
func (t *Task) ShortID() string {
	if len(t.ID) <= ShortIDLength {
		return t.ID
	}
	return t.ID[:ShortIDLength]
}

// Start moves the task to inprogress. Returns true if the status changed.
// Starting a task that is already in progress is a no-op success; starting
// a completed task is rejected.
func (t *Task) Start() (bool, error) {
	switch t.Status {
	case StatusPending:
		t.Status = StatusInProgress
		t.UpdatedAt = time.Now()
		return true, nil
	case StatusInProgress:
		return false, nil
	case StatusCompleted:
		return false, fmt.Errorf("%w: task %s is already completed", ErrInvalidTransition, t.ShortID())
	default:
		return false, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, t.Status)
	}
}

// Complete moves the task to completed. Returns true if the status changed.
// Completing an already-completed task is a no-op success and does not
// touch UpdatedAt.
func (t *Task) Complete() (bool, error) {
	switch t.Status {
	case StatusPending, StatusInProgress:
		t.Status = StatusCompleted
		t.UpdatedAt = time.Now()
		return true, nil
	case StatusCompleted:
		return false, nil
	default:
		return false, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, t.Status)
	}
}

// Validate checks that the task satisfies the store invariants. The storage
// engine calls this on every record at load time.
func (t *Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("missing id")
	}
	if t.Title == "" {
		return fmt.Errorf("task %s: missing title", t.ShortID())
	}
	if !ValidStatus(t.Status) {
		return fmt.Errorf("task %s: invalid status %q", t.ShortID(), t.Status)
	}
	if t.CreatedAt.IsZero() {
		return fmt.Errorf("task %s: missing created_at", t.ShortID())
	}
	return nil
}

// ValidStatus reports whether s is one of the three task statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}
