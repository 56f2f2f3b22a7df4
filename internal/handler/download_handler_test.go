package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/indrishabhtech/ap/internal/probe"
	"github.com/indrishabhtech/ap/internal/proxy"

	"github.com/gin-gonic/gin"
)

func newDownloadRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDownloadHandler(probe.New(), proxy.NewDownloader(nil), nil, nil)
	r := gin.New()
	r.GET("/probe", h.Probe)
	r.GET("/external-download", h.External)
	return r
}

func TestExternalDownloadRewritesDisposition(t *testing.T) {
	body := "pretend this is a pdf"
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `inline; filename="report.pdf"`)
		w.Write([]byte(body))
	}))
	defer upstream.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/external-download?url="+url.QueryEscape(upstream.URL+"/doc"), nil)
	newDownloadRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="report.pdf"` {
		t.Fatalf("content-disposition = %q", got)
	}
	if got := w.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("content-type = %q", got)
	}
	if w.Body.String() != body {
		t.Fatalf("body = %q, want %q", w.Body.String(), body)
	}
}

func TestExternalDownloadDerivesNameFromPath(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	}))
	defer upstream.Close()

	w := httptest.NewRecorder()
	target := upstream.URL + "/files/photo.jpg?token=abc"
	req := httptest.NewRequest(http.MethodGet, "/external-download?url="+url.QueryEscape(target), nil)
	newDownloadRouter().ServeHTTP(w, req)

	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="photo.jpg"` {
		t.Fatalf("content-disposition = %q", got)
	}
}

func TestExternalDownloadFallbackName(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil
		w.Write([]byte("x"))
	}))
	defer upstream.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/external-download?url="+url.QueryEscape(upstream.URL+"/"), nil)
	newDownloadRouter().ServeHTTP(w, req)

	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="download"` {
		t.Fatalf("content-disposition = %q", got)
	}
	if got := w.Header().Get("Content-Type"); got != "application/octet-stream" {
		t.Fatalf("content-type = %q, want octet-stream default", got)
	}
}

func TestExternalDownloadStripsQuotes(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="re\"port.pdf"`)
		w.Write([]byte("x"))
	}))
	defer upstream.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/external-download?url="+url.QueryEscape(upstream.URL), nil)
	newDownloadRouter().ServeHTTP(w, req)

	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="report.pdf"` {
		t.Fatalf("content-disposition = %q, embedded quote not stripped", got)
	}
}

func TestExternalDownloadRejectsBadScheme(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/external-download?url="+url.QueryEscape("ftp://example.com/x"), nil)
	newDownloadRouter().ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestExternalDownloadRejectsMissingURL(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/external-download", nil)
	newDownloadRouter().ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestExternalDownloadUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/external-download?url="+url.QueryEscape(upstream.URL), nil)
	newDownloadRouter().ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestProbeEndpoint(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", "512")
	}))
	defer upstream.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe?url="+url.QueryEscape(upstream.URL), nil)
	newDownloadRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	bodyStr := w.Body.String()
	for _, want := range []string{`"mimeType":"image/png"`, `"sizeBytes":512`} {
		if !strings.Contains(bodyStr, want) {
			t.Fatalf("body %q missing %q", bodyStr, want)
		}
	}
}

func TestProbeEndpointRequiresURL(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	newDownloadRouter().ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
