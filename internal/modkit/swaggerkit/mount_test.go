package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "polyglot/internal/platform/net/http"
)

func TestMount_Disabled(t *testing.T) {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), false)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestMount_ServesOpenAPIDocument(t *testing.T) {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var doc struct {
		OpenAPI string         `json:"openapi"`
		Paths   map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("document is not json: %v", err)
	}
	if _, ok := doc.Paths["/detect"]; !ok {
		t.Fatalf("document missing /detect: %v", doc.Paths)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect status = %d", rec.Code)
	}
}
