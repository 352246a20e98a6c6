package continuity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
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

func newTestRouter(slot *Slot) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), NewHandler(&mockLogger{}, slot))
	return r
}

func TestSnapshotThenRestore(t *testing.T) {
	slot := NewSlot()
	r := newTestRouter(slot)

	body := `{"messages":[{"role":"user","content":"plan my exam week"},{"role":"assistant","content":"Here is your plan."}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/continuity/snapshot", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("snapshot status = %d, body %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/continuity/restore?calendar=success&count=2", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("restore status = %d", w.Code)
	}

	var resp restoreResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Restored {
		t.Error("Restored = false, want true")
	}
	if len(resp.Messages) != 2 {
		t.Errorf("len(Messages) = %d, want 2", len(resp.Messages))
	}
	if resp.Banner == nil || resp.Banner.Outcome != "success" {
		t.Fatalf("Banner = %+v, want success", resp.Banner)
	}
	if !strings.Contains(resp.Banner.Message, "2 study sessions") {
		t.Errorf("Banner.Message = %q", resp.Banner.Message)
	}
}

func TestSnapshotConflictWhileInFlight(t *testing.T) {
	slot := NewSlot()
	r := newTestRouter(slot)

	for i, want := range []int{http.StatusOK, http.StatusConflict} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/continuity/snapshot", strings.NewReader(`{"messages":[]}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != want {
			t.Fatalf("snapshot #%d status = %d, want %d", i+1, w.Code, want)
		}
	}
}

func TestRestoreWithoutResultLeavesSlot(t *testing.T) {
	slot := NewSlot()
	r := newTestRouter(slot)

	if err := slot.Save(nil); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// No calendar param: a plain page load must not consume the snapshot.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/continuity/restore", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("restore status = %d", w.Code)
	}
	var resp restoreResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Banner != nil || resp.Restored {
		t.Errorf("plain load resp = %+v, want empty", resp)
	}

	if _, ok := slot.TakeOnce(); !ok {
		t.Error("plain load consumed the snapshot slot")
	}
}

func TestRestoreDeniedBanner(t *testing.T) {
	slot := NewSlot()
	r := newTestRouter(slot)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/continuity/restore?calendar=denied&error=access_denied", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("restore status = %d", w.Code)
	}

	var resp restoreResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Restored {
		t.Error("Restored = true with no snapshot saved")
	}
	if resp.Banner == nil || !strings.Contains(resp.Banner.Message, "access_denied") {
		t.Errorf("Banner = %+v, want denial reason", resp.Banner)
	}
}
