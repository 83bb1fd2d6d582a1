package bulkplan_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"agency-content-ops/pkg/bulkplan"
)

func TestDistribute(t *testing.T) {
	// Nine tasks at three per day fill exactly three days.
	lines := make([]string, 9)
	for i := range lines {
		lines[i] = "task"
	}
	tasks := bulkplan.Parse(strings.Join(lines, "\n"))

	start := time.Date(2025, 3, 10, 14, 45, 0, 0, time.UTC)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	got, err := bulkplan.Distribute(tasks, 3, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, task := range got {
		want := day.AddDate(0, 0, i/3)
		if !task.DueDate.Equal(want) {
			t.Errorf("task %d: due date = %v, want %v", i, task.DueDate, want)
		}
	}
}

func TestDistributeAfterExclusionLeavesNoGaps(t *testing.T) {
	tasks := bulkplan.Parse("[A] foo\nbar\n[C] baz")
	filtered := bulkplan.Exclude(tasks, 1)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	got, err := bulkplan.Distribute(filtered, 1, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}

	// Dates compress: D and D+1, no gap for the excluded task.
	if !got[0].DueDate.Equal(day) {
		t.Errorf("first task due %v, want %v", got[0].DueDate, day)
	}
	if want := day.AddDate(0, 0, 1); !got[1].DueDate.Equal(want) {
		t.Errorf("second task due %v, want %v", got[1].DueDate, want)
	}

	// Original indices are untouched by distribution.
	if got[0].OriginalIndex != 0 || got[1].OriginalIndex != 2 {
		t.Errorf("expected original indices [0 2], got [%d %d]",
			got[0].OriginalIndex, got[1].OriginalIndex)
	}
}

func TestDistributeInvalidRate(t *testing.T) {
	tasks := bulkplan.Parse("one\ntwo")
	start := time.Now()

	for _, rate := range []int{0, -1, -10} {
		if _, err := bulkplan.Distribute(tasks, rate, start); !errors.Is(err, bulkplan.ErrInvalidRate) {
			t.Errorf("rate %d: expected ErrInvalidRate, got %v", rate, err)
		}
	}
}

func TestDistributePreservesOrderAndInput(t *testing.T) {
	tasks := bulkplan.Parse("a\nb\nc\nd\ne")
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	got, err := bulkplan.Distribute(tasks, 2, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, title := range []string{"a", "b", "c", "d", "e"} {
		if got[i].Title != title {
			t.Errorf("position %d: title = %q, want %q", i, got[i].Title, title)
		}
	}

	// Date sequence is non-decreasing.
	for i := 1; i < len(got); i++ {
		if got[i].DueDate.Before(got[i-1].DueDate) {
			t.Errorf("due dates decrease at position %d", i)
		}
	}

	// Input slice stays untouched.
	for i := range tasks {
		if !tasks[i].DueDate.IsZero() {
			t.Errorf("input task %d was mutated", i)
		}
	}
}

func TestDistributeEmptyList(t *testing.T) {
	got, err := bulkplan.Distribute(nil, 3, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d tasks", len(got))
	}
}
