// Package importer merges markdown checklists into a task collection.
package importer

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pablasso/gitdo/internal/task"
)

// checklistPattern is the recognized checklist convention: a "-" or "*"
// bullet followed by "[ ]" for a pending item or "[x]"/"[X]" for a
// completed one. Indentation is allowed; lines that don't match are
// ignored, not errors.
var checklistPattern = regexp.MustCompile(`^\s*[-*]\s+\[([ xX])\]\s+(.+)$`)

var (
	ErrFileNotFound = errors.New("import file not found")
	ErrUnreadable   = errors.New("import file cannot be read as text")
)

// Options controls how parsed items are merged.
type Options struct {
	// SkipDuplicates drops items whose title exactly matches an existing
	// task's title (case-sensitive), counting them separately.
	SkipDuplicates bool

	// DryRun performs the full parse and duplicate detection but tells the
	// caller not to persist anything.
	DryRun bool
}

// Result reports what an import did (or, under DryRun, would do).
type Result struct {
	// Parsed is the number of checklist lines recognized in the file.
	Parsed int

	// Imported is the number of new tasks created.
	Imported int

	// Skipped is the number of items dropped as duplicates.
	Skipped int

	// Tasks holds the newly created records, in file order.
	Tasks []task.Task
}

// Import parses the markdown file at path into new tasks and deduplicates
// them against existing. Unchecked items become pending tasks, checked
// items completed ones. The collection itself is not touched; the caller
// appends Result.Tasks and saves, unless Options.DryRun is set.
func Import(path string, existing []task.Task, opts Options) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Result{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if !utf8.Valid(data) {
		return Result{}, fmt.Errorf("%w: %s is not valid UTF-8", ErrUnreadable, path)
	}

	titles := make(map[string]bool, len(existing))
	for i := range existing {
		titles[existing[i].Title] = true
	}

	var res Result
	for _, line := range strings.Split(string(data), "\n") {
		m := checklistPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[2])
		if title == "" {
			// Marker with no text after it; treat like a non-checklist line.
			continue
		}
		res.Parsed++

		if opts.SkipDuplicates && titles[title] {
			res.Skipped++
			continue
		}

		t, err := task.New(title)
		if err != nil {
			return Result{}, err
		}
		if checked := m[1]; checked == "x" || checked == "X" {
			if _, err := t.Complete(); err != nil {
				return Result{}, err
			}
		}

		titles[title] = true
		res.Imported++
		res.Tasks = append(res.Tasks, t)
	}

	return res, nil
}
