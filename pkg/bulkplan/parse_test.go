package bulkplan_test

import (
	"testing"

	"agency-content-ops/pkg/bulkplan"
)

func TestParse(t *testing.T) {
	tasks := bulkplan.Parse("[A] foo\nbar\n[C] baz")

	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}

	want := []struct {
		title string
		tag   string
		index int
	}{
		{title: "foo", tag: "A", index: 0},
		{title: "bar", tag: "", index: 1},
		{title: "baz", tag: "C", index: 2},
	}

	for i, w := range want {
		if tasks[i].Title != w.title {
			t.Errorf("task %d: title = %q, want %q", i, tasks[i].Title, w.title)
		}
		if tasks[i].ProjectTag != w.tag {
			t.Errorf("task %d: project tag = %q, want %q", i, tasks[i].ProjectTag, w.tag)
		}
		if tasks[i].OriginalIndex != w.index {
			t.Errorf("task %d: original index = %d, want %d", i, tasks[i].OriginalIndex, w.index)
		}
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	tasks := bulkplan.Parse("first\n\n   \n\nsecond\r\nthird\n")

	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}

	// Blank lines do not consume index slots.
	for i, title := range []string{"first", "second", "third"} {
		if tasks[i].Title != title {
			t.Errorf("task %d: title = %q, want %q", i, tasks[i].Title, title)
		}
		if tasks[i].OriginalIndex != i {
			t.Errorf("task %d: original index = %d, want %d", i, tasks[i].OriginalIndex, i)
		}
	}
}

func TestParseEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCount int
		wantTitle string
		wantTag   string
	}{
		{name: "Empty input", input: "", wantCount: 0},
		{name: "Whitespace only", input: "  \n\t\n", wantCount: 0},
		{name: "Surrounding whitespace trimmed", input: "  [Web] redesign homepage  ", wantCount: 1, wantTitle: "redesign homepage", wantTag: "Web"},
		{name: "Bracket mid-line is not a tag", input: "check [this] later", wantCount: 1, wantTitle: "check [this] later"},
		{name: "Tag-only line keeps full title", input: "[Orphan]", wantCount: 1, wantTitle: "[Orphan]"},
		{name: "Unclosed bracket", input: "[Broken title", wantCount: 1, wantTitle: "[Broken title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := bulkplan.Parse(tt.input)
			if len(tasks) != tt.wantCount {
				t.Fatalf("expected %d tasks, got %d", tt.wantCount, len(tasks))
			}
			if tt.wantCount == 0 {
				return
			}
			if tasks[0].Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", tasks[0].Title, tt.wantTitle)
			}
			if tasks[0].ProjectTag != tt.wantTag {
				t.Errorf("project tag = %q, want %q", tasks[0].ProjectTag, tt.wantTag)
			}
		})
	}
}

func TestExclude(t *testing.T) {
	tasks := bulkplan.Parse("[A] foo\nbar\n[C] baz")

	filtered := bulkplan.Exclude(tasks, 1)

	if len(filtered) != 2 {
		t.Fatalf("expected 2 tasks after exclusion, got %d", len(filtered))
	}

	// Survivors keep their original indices.
	if filtered[0].OriginalIndex != 0 || filtered[1].OriginalIndex != 2 {
		t.Errorf("expected surviving indices [0 2], got [%d %d]",
			filtered[0].OriginalIndex, filtered[1].OriginalIndex)
	}
	if filtered[0].Title != "foo" || filtered[1].Title != "baz" {
		t.Errorf("unexpected surviving titles: %q, %q", filtered[0].Title, filtered[1].Title)
	}
}

func TestExcludeUnknownIndex(t *testing.T) {
	tasks := bulkplan.Parse("one\ntwo")

	filtered := bulkplan.Exclude(tasks, 99)
	if len(filtered) != 2 {
		t.Errorf("excluding an unknown index should keep all tasks, got %d", len(filtered))
	}
}
