package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/indrishabhtech/ap/internal/domain/billboard"
	"github.com/indrishabhtech/ap/internal/services"
	aperrors "github.com/indrishabhtech/ap/pkg/errors"

	"github.com/gin-gonic/gin"
)

type fakeBillboardRepo struct {
	current *billboard.Billboard
}

func (f *fakeBillboardRepo) Get(ctx context.Context) (billboard.Billboard, error) {
	if f.current == nil {
		return billboard.Billboard{}, aperrors.ErrNotFound
	}
	return *f.current, nil
}

func (f *fakeBillboardRepo) Upsert(ctx context.Context, message string) (billboard.Billboard, error) {
	f.current = &billboard.Billboard{Message: message, UpdatedAt: time.Now().UTC()}
	return *f.current, nil
}

func (f *fakeBillboardRepo) Clear(ctx context.Context) error {
	f.current = nil
	return nil
}

func newBillboardRouter(repo *fakeBillboardRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBillboardHandler(services.NewBillboardService(repo))
	r := gin.New()
	r.GET("/v1/billboard", h.Get)
	r.PUT("/v1/billboard", h.Put)
	r.DELETE("/v1/billboard", h.Clear)
	return r
}

func TestBillboardUpsertThenGet(t *testing.T) {
	repo := &fakeBillboardRepo{}
	r := newBillboardRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/billboard", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("put status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/billboard", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"message":"hello"`) {
		t.Fatalf("get body = %q", w.Body.String())
	}

	// update goes through the same upsert
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/v1/billboard", strings.NewReader(`{"message":"changed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if repo.current == nil || repo.current.Message != "changed" {
		t.Fatalf("repo message = %v, want changed", repo.current)
	}
}

func TestBillboardGetEmpty(t *testing.T) {
	r := newBillboardRouter(&fakeBillboardRepo{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/billboard", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestBillboardRejectsEmptyMessage(t *testing.T) {
	r := newBillboardRouter(&fakeBillboardRepo{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/billboard", strings.NewReader(`{"message":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestBillboardClear(t *testing.T) {
	repo := &fakeBillboardRepo{current: &billboard.Billboard{Message: "bye"}}
	r := newBillboardRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/billboard", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if repo.current != nil {
		t.Fatal("collection not cleared")
	}
}
