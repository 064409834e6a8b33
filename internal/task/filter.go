package task

// FilterSpec selects which tasks a list operation returns.
type FilterSpec struct {
	// Status, when non-empty, limits results to that exact status and
	// takes precedence over All.
	Status string

	// All returns every task regardless of status.
	All bool
}

// Filter returns the tasks selected by spec, preserving insertion order.
// The zero spec returns only pending and inprogress tasks. Filter never
// mutates its input.
func Filter(tasks []Task, spec FilterSpec) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		switch {
		case spec.Status != "":
			if t.Status == spec.Status {
				out = append(out, t)
			}
		case spec.All:
			out = append(out, t)
		default:
			if t.Status == StatusPending || t.Status == StatusInProgress {
				out = append(out, t)
			}
		}
	}
	return out
}
