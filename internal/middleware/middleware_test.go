package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"agency-content-ops/config"
	"agency-content-ops/internal/middleware"
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

func newEngine(mw middleware.Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/protected", append(handlers, func(c *gin.Context) {
		sc := middleware.ScopeFromContext(c)
		c.JSON(http.StatusOK, gin.H{"workspace_id": sc.WorkspaceID, "user_id": sc.UserID})
	})...)
	return engine
}

func doGet(engine *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	mw := middleware.New(&mockLogger{}, &config.Config{
		Auth: config.AuthConfig{AccessToken: "secret"},
	})
	engine := newEngine(mw, mw.Auth())

	tests := []struct {
		name     string
		headers  map[string]string
		wantCode int
	}{
		{
			name:     "valid token and workspace",
			headers:  map[string]string{"Authorization": "Bearer secret", "X-Workspace-ID": "ws-1"},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing token",
			headers:  map[string]string{"X-Workspace-ID": "ws-1"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong token",
			headers:  map[string]string{"Authorization": "Bearer nope", "X-Workspace-ID": "ws-1"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "missing workspace header",
			headers:  map[string]string{"Authorization": "Bearer secret"},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(engine, tt.headers)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthSkippedWithoutConfiguredToken(t *testing.T) {
	mw := middleware.New(&mockLogger{}, &config.Config{})
	engine := newEngine(mw, mw.Auth())

	w := doGet(engine, map[string]string{"X-Workspace-ID": "ws-1", "X-User-ID": "user-1"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 without configured token, got %d", w.Code)
	}
}

func TestScopeFromContextZeroValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if sc := middleware.ScopeFromContext(c); sc != (model.Scope{}) {
		t.Fatalf("expected zero scope, got %+v", sc)
	}
}

func TestRateLimit(t *testing.T) {
	// burst of 2 per minute so the third request in the same window trips
	mw := middleware.New(&mockLogger{}, &config.Config{
		Imports: config.ImportsConfig{RateLimitPerMin: 2},
	})
	engine := newEngine(mw, mw.Auth(), mw.RateLimit())

	headers := map[string]string{"X-Workspace-ID": "ws-1"}
	for i := 0; i < 2; i++ {
		if w := doGet(engine, headers); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
	if w := doGet(engine, headers); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", w.Code)
	}

	// a different workspace has its own bucket
	if w := doGet(engine, map[string]string{"X-Workspace-ID": "ws-2"}); w.Code != http.StatusOK {
		t.Fatalf("expected independent bucket for other workspace, got %d", w.Code)
	}
}
