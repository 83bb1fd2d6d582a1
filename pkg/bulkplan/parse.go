// Package bulkplan turns pasted free-form text into discrete tasks and
// spreads them across consecutive calendar days. All functions are pure.
package bulkplan

import (
	"regexp"
	"strings"
	"time"
)

// Task is a single parsed line from a bulk import. OriginalIndex identifies
// the task within the parsed list and is stable across exclusion: it is an
// opaque identifier, never a position.
type Task struct {
	Title         string
	ProjectTag    string
	OriginalIndex int
	DueDate       time.Time // zero until assigned by Distribute
}

// projectTagRe matches a leading "[Tag] rest of title" line.
var projectTagRe = regexp.MustCompile(`^\[([^\]]+)\]\s*(.+)$`)

// Parse splits raw text into tasks, one per non-blank line, in input order.
// A leading bracketed token becomes the project tag. Blank lines are skipped
// and do not consume an index; indices are assigned here, once, and survive
// later filtering untouched.
func Parse(rawText string) []Task {
	lines := strings.Split(rawText, "\n")
	tasks := make([]Task, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		task := Task{Title: line, OriginalIndex: len(tasks)}
		if m := projectTagRe.FindStringSubmatch(line); m != nil {
			task.ProjectTag = m[1]
			task.Title = strings.TrimSpace(m[2])
		}

		tasks = append(tasks, task)
	}

	return tasks
}

// Exclude removes the task whose OriginalIndex equals originalIndex. All
// surviving tasks keep their OriginalIndex and relative order.
func Exclude(tasks []Task, originalIndex int) []Task {
	filtered := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.OriginalIndex == originalIndex {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}
