package task

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyTitle        = errors.New("task title cannot be empty")
	ErrEmptyPrefix       = errors.New("task id prefix cannot be empty")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// NotFoundError indicates that no task ID starts with the given prefix.
type NotFoundError struct {
	Prefix string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.Prefix)
}

// AmbiguousIDError indicates that a prefix matched more than one task. It
// carries the short form of every matching ID so the user can disambiguate
// by typing more characters.
type AmbiguousIDError struct {
	Prefix  string
	Matches []string
}

func (e *AmbiguousIDError) Error() string {
	return fmt.Sprintf("multiple tasks match %q: %s (type more characters to disambiguate)",
		e.Prefix, strings.Join(e.Matches, ", "))
}
