package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"agency-content-ops/internal/bulkimport"
	"agency-content-ops/internal/bulkimport/repository"
	"agency-content-ops/internal/bulkimport/usecase"
	"agency-content-ops/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	lastConfirm repository.ConfirmImportOptions
	confirmed   int
	fail        bool
}

func (m *mockRepo) ConfirmImport(ctx context.Context, opt repository.ConfirmImportOptions) (repository.ImportReceipt, error) {
	if m.fail {
		return repository.ImportReceipt{}, errors.New("platform unavailable")
	}
	m.lastConfirm = opt
	m.confirmed++
	return repository.ImportReceipt{ImportID: "imp-1", TaskCount: 2}, nil
}

var testScope = model.Scope{WorkspaceID: "ws-1", UserID: "user-1"}

func timePtr(t time.Time) *time.Time { return &t }

func TestPreviewParsesAndDistributes(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockRepo{}, "UTC")

	start := time.Date(2025, 4, 7, 15, 30, 0, 0, time.UTC)
	out, err := uc.Preview(context.Background(), testScope, bulkimport.PreviewInput{
		RawText:     "[Acme] Draft blog post\nSchedule newsletter\n\n[Beta] Record promo video",
		TasksPerDay: 2,
		StartDate:   timePtr(start),
	})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	if out.TaskCount != 3 {
		t.Fatalf("expected 3 tasks, got %d", out.TaskCount)
	}
	if out.DayCount != 2 {
		t.Errorf("expected 2 days, got %d", out.DayCount)
	}

	first := out.Tasks[0]
	if first.Title != "Draft blog post" || first.ProjectTag != "Acme" || first.OriginalIndex != 0 {
		t.Errorf("unexpected first task: %+v", first)
	}

	// start date is normalized to midnight
	day := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	if !out.Tasks[0].DueDate.Equal(day) || !out.Tasks[1].DueDate.Equal(day) {
		t.Errorf("first two tasks should land on %v", day)
	}
	if !out.Tasks[2].DueDate.Equal(day.AddDate(0, 0, 1)) {
		t.Errorf("third task should land on the next day, got %v", out.Tasks[2].DueDate)
	}
	if !out.EndDate.Equal(day.AddDate(0, 0, 1)) {
		t.Errorf("unexpected end date %v", out.EndDate)
	}
}

func TestPreviewExclusionRedistributes(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockRepo{}, "UTC")

	start := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	out, err := uc.Preview(context.Background(), testScope, bulkimport.PreviewInput{
		RawText:        "one\ntwo\nthree",
		TasksPerDay:    1,
		ExcludeIndices: []int{1},
		StartDate:      timePtr(start),
	})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	if out.TaskCount != 2 {
		t.Fatalf("expected 2 tasks after exclusion, got %d", out.TaskCount)
	}
	// survivors keep their original indices but dates close the gap
	if out.Tasks[0].OriginalIndex != 0 || out.Tasks[1].OriginalIndex != 2 {
		t.Errorf("original indices must survive exclusion: %+v", out.Tasks)
	}
	if !out.Tasks[1].DueDate.Equal(start.AddDate(0, 0, 1)) {
		t.Errorf("expected remaining task on day two, got %v", out.Tasks[1].DueDate)
	}
}

func TestPreviewErrors(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockRepo{}, "UTC")

	tests := []struct {
		name    string
		input   bulkimport.PreviewInput
		wantErr error
	}{
		{
			name:    "empty input",
			input:   bulkimport.PreviewInput{RawText: "   \n  ", TasksPerDay: 2},
			wantErr: bulkimport.ErrEmptyInput,
		},
		{
			name:    "zero rate",
			input:   bulkimport.PreviewInput{RawText: "one", TasksPerDay: 0},
			wantErr: bulkimport.ErrInvalidRate,
		},
		{
			name:    "negative rate",
			input:   bulkimport.PreviewInput{RawText: "one", TasksPerDay: -3},
			wantErr: bulkimport.ErrInvalidRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Preview(context.Background(), testScope, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfirmForwardsToPlatform(t *testing.T) {
	repo := &mockRepo{}
	uc := usecase.New(&mockLogger{}, repo, "UTC")

	start := time.Date(2025, 4, 7, 9, 0, 0, 0, time.UTC)
	out, err := uc.Confirm(context.Background(), testScope, bulkimport.ConfirmInput{
		RawText:     "[Acme] Draft blog post\nSchedule newsletter",
		TasksPerDay: 2,
		StartDate:   timePtr(start),
	})
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if out.ImportID != "imp-1" {
		t.Errorf("expected receipt imp-1, got %q", out.ImportID)
	}

	if repo.lastConfirm.WorkspaceID != "ws-1" {
		t.Errorf("workspace not forwarded: %+v", repo.lastConfirm)
	}
	if repo.lastConfirm.ExcludeIndices == nil {
		t.Error("exclude indices must be an empty slice, not nil")
	}
	// forwarded start date is the normalized midnight
	want := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	if !repo.lastConfirm.StartDate.Equal(want) {
		t.Errorf("expected start %v, got %v", want, repo.lastConfirm.StartDate)
	}
}

func TestConfirmRejectsInvalidInputBeforePlatformCall(t *testing.T) {
	repo := &mockRepo{}
	uc := usecase.New(&mockLogger{}, repo, "UTC")

	_, err := uc.Confirm(context.Background(), testScope, bulkimport.ConfirmInput{
		RawText:     "",
		TasksPerDay: 2,
	})
	if !errors.Is(err, bulkimport.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if repo.confirmed != 0 {
		t.Error("platform must not be called for invalid input")
	}
}

func TestConfirmPlatformFailure(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockRepo{fail: true}, "UTC")

	_, err := uc.Confirm(context.Background(), testScope, bulkimport.ConfirmInput{
		RawText:     "one",
		TasksPerDay: 1,
	})
	if !errors.Is(err, bulkimport.ErrImportFailed) {
		t.Fatalf("expected ErrImportFailed, got %v", err)
	}
}
