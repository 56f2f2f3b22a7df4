package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/indrishabhtech/ap/internal/domain/devicelog"
	"github.com/indrishabhtech/ap/internal/services"

	"github.com/gin-gonic/gin"
)

type fakeDeviceLogRepo struct {
	entries []devicelog.Entry
}

func (f *fakeDeviceLogRepo) Create(ctx context.Context, e *devicelog.Entry) error {
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeDeviceLogRepo) List(ctx context.Context, limit int64) ([]devicelog.Entry, error) {
	if limit > 0 && limit < int64(len(f.entries)) {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

func (f *fakeDeviceLogRepo) Clear(ctx context.Context) (int64, error) {
	n := int64(len(f.entries))
	f.entries = nil
	return n, nil
}

func newDeviceLogRouter(repo *fakeDeviceLogRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDeviceLogHandler(services.NewDeviceLogService(repo))
	r := gin.New()
	r.POST("/v1/device-logs", h.Create)
	r.GET("/v1/device-logs", h.List)
	r.DELETE("/v1/device-logs", h.Clear)
	return r
}

func TestDeviceLogCreateCapturesRequestMetadata(t *testing.T) {
	repo := &fakeDeviceLogRepo{}
	r := newDeviceLogRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/device-logs", strings.NewReader(`{"name":"  Pixel 8 "}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent/1.0")
	req.RemoteAddr = "203.0.113.9:51234"
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(repo.entries))
	}
	e := repo.entries[0]
	if e.NormalizedName != "pixel 8" {
		t.Errorf("normalized name = %q, want %q", e.NormalizedName, "pixel 8")
	}
	if e.SourceAddress != "203.0.113.9" {
		t.Errorf("source address = %q, want 203.0.113.9", e.SourceAddress)
	}
	if e.UserAgent != "test-agent/1.0" {
		t.Errorf("user agent = %q", e.UserAgent)
	}
	if e.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestDeviceLogCreateRequiresName(t *testing.T) {
	r := newDeviceLogRouter(&fakeDeviceLogRepo{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/device-logs", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDeviceLogClear(t *testing.T) {
	repo := &fakeDeviceLogRepo{entries: []devicelog.Entry{{Name: "a"}, {Name: "b"}}}
	r := newDeviceLogRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/device-logs", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"deleted":2`) {
		t.Fatalf("body = %q", w.Body.String())
	}
	if len(repo.entries) != 0 {
		t.Fatal("entries not cleared")
	}
}
