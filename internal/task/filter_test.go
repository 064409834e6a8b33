package task

import "testing"

func filterFixture() []Task {
	return []Task{
		{ID: "a1", Title: "one", Status: StatusPending},
		{ID: "b2", Title: "two", Status: StatusCompleted},
		{ID: "c3", Title: "three", Status: StatusInProgress},
		{ID: "d4", Title: "four", Status: StatusPending},
	}
}

func titles(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func assertTitles(t *testing.T, got []Task, want ...string) {
	t.Helper()
	gotTitles := titles(got)
	if len(gotTitles) != len(want) {
		t.Fatalf("got %v, want %v", gotTitles, want)
	}
	for i := range want {
		if gotTitles[i] != want[i] {
			t.Fatalf("got %v, want %v", gotTitles, want)
		}
	}
}

func TestFilter(t *testing.T) {
	tasks := filterFixture()

	t.Run("default hides completed, keeps order", func(t *testing.T) {
		assertTitles(t, Filter(tasks, FilterSpec{}), "one", "three", "four")
	})

	t.Run("all returns everything in order", func(t *testing.T) {
		assertTitles(t, Filter(tasks, FilterSpec{All: true}), "one", "two", "three", "four")
	})

	t.Run("status filter returns only that status", func(t *testing.T) {
		assertTitles(t, Filter(tasks, FilterSpec{Status: StatusCompleted}), "two")
	})

	t.Run("status takes precedence over all", func(t *testing.T) {
		assertTitles(t, Filter(tasks, FilterSpec{Status: StatusPending, All: true}), "one", "four")
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		if got := Filter(nil, FilterSpec{All: true}); len(got) != 0 {
			t.Errorf("got %d tasks, want 0", len(got))
		}
	})
}
