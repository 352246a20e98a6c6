package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"examprep-backend/internal/calendar"
	calendarHTTP "examprep-backend/internal/calendar/delivery/http"
	"examprep-backend/internal/middleware"
	"examprep-backend/internal/model"
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

type mockUseCase struct {
	pendingToken string
	pendingErr   error
	authURL      string
	authErr      error
	result       calendar.CallbackResult
	gotInput     calendar.CallbackInput
	gotEvents    []model.EventDescriptor
}

func (m *mockUseCase) CreatePending(ctx context.Context, events []model.EventDescriptor) (string, error) {
	m.gotEvents = events
	return m.pendingToken, m.pendingErr
}

func (m *mockUseCase) AuthCodeURL(ctx context.Context, state string) (string, error) {
	return m.authURL, m.authErr
}

func (m *mockUseCase) HandleCallback(ctx context.Context, input calendar.CallbackInput) calendar.CallbackResult {
	m.gotInput = input
	return m.result
}

func newRouter(uc calendar.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := calendarHTTP.New(&mockLogger{}, uc, "http://localhost:3000")
	calendarHTTP.RegisterRoutes(r.Group("/api/v1"), h, middleware.New(&mockLogger{}, 600))
	return r
}

func TestCreatePending(t *testing.T) {
	uc := &mockUseCase{pendingToken: "tok-1"}
	r := newRouter(uc)

	body := `{"events":[{"title":"Math","date":"2026-05-01","startTime":"09:00","endTime":"10:00"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calendar/pending", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"pendingId":"tok-1"`) {
		t.Errorf("body = %s", w.Body.String())
	}
	if len(uc.gotEvents) != 1 || uc.gotEvents[0].Title != "Math" {
		t.Errorf("events = %+v", uc.gotEvents)
	}
}

func TestCreatePendingRejectsBadBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"empty events", `{"events":[]}`},
		{"missing events", `{}`},
		{"missing endTime", `{"events":[{"title":"Math","date":"2026-05-01","startTime":"09:00"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&mockUseCase{pendingToken: "tok"})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/calendar/pending", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if !strings.Contains(w.Body.String(), `"error"`) {
				t.Errorf("body = %s", w.Body.String())
			}
		})
	}
}

func TestAuthorizeRedirects(t *testing.T) {
	uc := &mockUseCase{authURL: "https://accounts.google.com/o/oauth2/auth?state=tok-1"}
	r := newRouter(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/auth?state=tok-1", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != uc.authURL {
		t.Errorf("location = %q", loc)
	}
}

func TestAuthorizeMissingConfigRedirectsIntoApp(t *testing.T) {
	uc := &mockUseCase{authErr: calendar.ErrMissingConfig}
	r := newRouter(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/auth", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, "http://localhost:3000/dashboard?") || !strings.Contains(loc, "calendar=error") {
		t.Errorf("location = %q", loc)
	}
}

func TestCallbackRedirects(t *testing.T) {
	tests := []struct {
		name   string
		result calendar.CallbackResult
		want   map[string]string
	}{
		{
			name:   "success with count",
			result: calendar.CallbackResult{Outcome: calendar.OutcomeSuccess, Count: 2},
			want:   map[string]string{"calendar": "success", "count": "2"},
		},
		{
			name:   "no events",
			result: calendar.CallbackResult{Outcome: calendar.OutcomeNoEvents},
			want:   map[string]string{"calendar": "no_events"},
		},
		{
			name:   "denied with reason",
			result: calendar.CallbackResult{Outcome: calendar.OutcomeDenied, Reason: "access_denied"},
			want:   map[string]string{"calendar": "denied", "error": "access_denied"},
		},
		{
			name:   "error",
			result: calendar.CallbackResult{Outcome: calendar.OutcomeError},
			want:   map[string]string{"calendar": "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{result: tt.result}
			r := newRouter(uc)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/callback?code=c&state=s", nil))

			if w.Code != http.StatusFound {
				t.Fatalf("status = %d, want 302", w.Code)
			}

			loc, err := url.Parse(w.Header().Get("Location"))
			if err != nil {
				t.Fatalf("bad location: %v", err)
			}
			if loc.Path != "/dashboard" {
				t.Errorf("path = %q", loc.Path)
			}
			q := loc.Query()
			for k, v := range tt.want {
				if q.Get(k) != v {
					t.Errorf("query %s = %q, want %q", k, q.Get(k), v)
				}
			}
			if tt.result.Outcome != calendar.OutcomeSuccess && q.Get("count") != "" {
				t.Errorf("count leaked into %s redirect", tt.result.Outcome)
			}
		})
	}
}

func TestCallbackPassesQueryThrough(t *testing.T) {
	uc := &mockUseCase{result: calendar.CallbackResult{Outcome: calendar.OutcomeError}}
	r := newRouter(uc)

	w := httptest.NewRecorder()
	target := "/api/v1/calendar/callback?code=the-code&state=the-state&error=access_denied&error_description=nope"
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	if uc.gotInput.Code != "the-code" || uc.gotInput.State != "the-state" {
		t.Errorf("input = %+v", uc.gotInput)
	}
	if uc.gotInput.Error != "access_denied" || uc.gotInput.ErrorDescription != "nope" {
		t.Errorf("error params = %+v", uc.gotInput)
	}
}
