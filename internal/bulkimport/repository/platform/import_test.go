package platform_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agency-content-ops/internal/bulkimport/repository"
	"agency-content-ops/internal/bulkimport/repository/platform"
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

func TestConfirmImport(t *testing.T) {
	var gotBody map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/workspaces/ws-1/task-imports", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"import_id":  "imp-1",
			"task_count": 3,
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	repo := platform.New(platform.NewClient(srv.URL, "test-token"), &mockLogger{})

	receipt, err := repo.ConfirmImport(context.Background(), repository.ConfirmImportOptions{
		WorkspaceID:    "ws-1",
		RawText:        "[Acme] Draft blog post\nSchedule newsletter\nRecord promo video",
		TasksPerDay:    2,
		ExcludeIndices: []int{},
		StartDate:      time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("ConfirmImport: %v", err)
	}
	if receipt.ImportID != "imp-1" || receipt.TaskCount != 3 {
		t.Errorf("unexpected receipt: %+v", receipt)
	}

	// the platform contract uses camelCase field names
	if gotBody["rawText"] == "" || gotBody["rawText"] == nil {
		t.Error("expected rawText in payload")
	}
	if got, ok := gotBody["tasksPerDay"].(float64); !ok || got != 2 {
		t.Errorf("expected tasksPerDay 2, got %v", gotBody["tasksPerDay"])
	}
	if _, ok := gotBody["excludeIndices"].([]any); !ok {
		t.Errorf("expected excludeIndices array, got %v", gotBody["excludeIndices"])
	}
	if gotBody["startDate"] != "2025-04-07" {
		t.Errorf("expected startDate 2025-04-07, got %v", gotBody["startDate"])
	}
}

func TestConfirmImportServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	repo := platform.New(platform.NewClient(srv.URL, "test-token"), &mockLogger{})

	_, err := repo.ConfirmImport(context.Background(), repository.ConfirmImportOptions{
		WorkspaceID: "ws-1",
		RawText:     "one",
		TasksPerDay: 1,
		StartDate:   time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC),
	})
	if err == nil {
		t.Fatal("expected error from failing platform")
	}
}
