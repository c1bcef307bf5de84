package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"logos-backend/internal/history"
)

func setupRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return router
}

func postAnalyze(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAnalyzeEndpoint(t *testing.T) {
	client := &scriptClient{responses: []string{
		`{"language": "FR", "genre": "General", "correction_needed": false}`,
		"An explanation of the passage.",
	}}
	var factoryCalls int
	svc := newTestService(client, history.NewMemoryRepo(), &factoryCalls)
	router := setupRouter(svc)

	resp := postAnalyze(t, router, `{"text": "Bonjour le monde.", "reader_language": "EN"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out Outcome
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.Success {
		t.Fatalf("unexpected failure: %s", out.Error)
	}
	if out.Result != "An explanation of the passage." {
		t.Fatalf("result = %q", out.Result)
	}
	if out.DetectedLanguage != "FR" || out.Genre != "General" {
		t.Fatalf("detection = %s/%s", out.DetectedLanguage, out.Genre)
	}
}

func TestAnalyzeEndpointBadPayload(t *testing.T) {
	var factoryCalls int
	svc := newTestService(&scriptClient{}, history.NewMemoryRepo(), &factoryCalls)
	router := setupRouter(svc)

	resp := postAnalyze(t, router, `{"text": `)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if factoryCalls != 0 {
		t.Fatalf("factory called %d times for malformed payload", factoryCalls)
	}
}

func TestAnalyzeEndpointPipelineFailureIsEnvelope(t *testing.T) {
	var factoryCalls int
	svc := newTestService(&scriptClient{}, history.NewMemoryRepo(), &factoryCalls)
	router := setupRouter(svc)

	resp := postAnalyze(t, router, `{"text": "   "}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 envelope, got %d", resp.Code)
	}

	var out Outcome
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Success {
		t.Fatal("expected failure envelope")
	}
	if !strings.Contains(out.Error, "empty") {
		t.Fatalf("error = %q", out.Error)
	}
}

func TestAnalyzeEndpointDefaultsReaderLanguage(t *testing.T) {
	client := &scriptClient{responses: []string{
		`{"language": "FR", "genre": "General", "correction_needed": false}`,
		"An explanation of the passage.",
	}}
	repo := history.NewMemoryRepo()
	var factoryCalls int
	svc := newTestService(client, repo, &factoryCalls)
	router := setupRouter(svc)

	resp := postAnalyze(t, router, `{"text": "Bonjour le monde."}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out Outcome
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	rec, err := repo.GetByID(context.Background(), out.HistoryID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if rec.ReaderLanguage != "EN" {
		t.Fatalf("reader language = %q, want default EN", rec.ReaderLanguage)
	}
}
