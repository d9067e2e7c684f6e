// File path: internal/api/server_test.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hansebot/internal/knowledge"
	"hansebot/internal/llm"
	"hansebot/internal/resolver"
)

type stubProvider struct{}

func (stubProvider) Chat(ctx context.Context, messages []llm.Message, model string) (string, error) {
	return "Delegierte Antwort.", nil
}

func (stubProvider) Name() string { return "stub" }

type emptySource struct{}

func (emptySource) Name() string { return "empty" }

func (emptySource) List(ctx context.Context) ([]knowledge.Record, error) { return nil, nil }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := knowledge.NewStore(emptySource{})
	res := resolver.New(store, stubProvider{}, resolver.Config{})
	srv, err := NewServer(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv
}

func TestHandleResolve(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/resolve", strings.NewReader(`{"message": "Was ist die App?"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resolution resolver.Resolution
	if err := json.Unmarshal(rec.Body.Bytes(), &resolution); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resolution.Kind != resolver.KindKnowledge {
		t.Fatalf("expected knowledge answer, got %q", resolution.Kind)
	}
	if resolution.TraceID == "" {
		t.Fatalf("expected trace id in the response")
	}
}

func TestHandleResolveRejectsBadRequests(t *testing.T) {
	srv := newTestServer(t)
	for _, body := range []string{`{"message": "  "}`, `{`, ``} {
		req := httptest.NewRequest(http.MethodPost, "/v1/resolve", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for body %q, got %d", body, rec.Code)
		}
	}
}

func TestHandleEntries(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/entries", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload struct {
		Count   int               `json:"count"`
		Entries []knowledge.Entry `json:"entries"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Count == 0 || len(payload.Entries) != payload.Count {
		t.Fatalf("expected consistent entry listing, got count %d with %d entries", payload.Count, len(payload.Entries))
	}
}

func TestHandleRefreshAndCacheClear(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/refresh", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var refresh struct {
		Entries int `json:"entries"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &refresh); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if refresh.Entries == 0 {
		t.Fatalf("expected entries after refresh")
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/admin/cache/clear", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("expected ok health response, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestHandleLogs(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/logs", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "logs") {
		t.Fatalf("expected logs payload, got %s", rec.Body.String())
	}
}
