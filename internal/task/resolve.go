package task

import "strings"

// Resolve finds the single task whose ID starts with prefix and returns its
// index in tasks. Matching is a case-sensitive exact prefix match, so any
// unique leading substring of a full ID works.
func Resolve(tasks []Task, prefix string) (int, error) {
	if prefix == "" {
		return -1, ErrEmptyPrefix
	}

	var matches []int
	for i := range tasks {
		if strings.HasPrefix(tasks[i].ID, prefix) {
			matches = append(matches, i)
		}
	}

	switch len(matches) {
	case 0:
		return -1, &NotFoundError{Prefix: prefix}
	case 1:
		return matches[0], nil
	}

	ids := make([]string, len(matches))
	for i, idx := range matches {
		ids[i] = tasks[idx].ShortID()
	}
	return -1, &AmbiguousIDError{Prefix: prefix, Matches: ids}
}
