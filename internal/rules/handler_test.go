package rules_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"email-qa-backend/internal/rules"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := rules.NewService(rules.NewMemoryStore())
	if err := svc.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("EnsureDefaults: %v", err)
	}

	r := gin.New()
	api := r.Group("/api/v1")
	rules.NewHandler(svc).RegisterRoutes(api)
	return r
}

func TestListRulesEndpoint(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/rules", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var payload struct {
		Rules []rules.RuleConfig `json:"rules"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Rules) != 4 {
		t.Fatalf("expected 4 rule categories, got %+v", payload.Rules)
	}
}

func TestUpdateRuleEndpoint(t *testing.T) {
	router := setupRouter(t)

	body := []byte(`{"weight": 30, "priority": "Medium"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/rules/tone", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var updated rules.RuleConfig
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Weight != 30 || updated.Priority != rules.PriorityMedium {
		t.Fatalf("unexpected config %+v", updated)
	}
}

func TestUpdateRuleEndpointValidation(t *testing.T) {
	router := setupRouter(t)

	body := []byte(`{"weight": 150}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/rules/tone", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPut, "/api/v1/admin/rules/unknown", bytes.NewReader([]byte(`{"weight": 10}`)))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestScoringFormulaEndpoints(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/scoring-formula", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	body := []byte(`{"description": "Pass above 90, fail below 50."}`)
	req = httptest.NewRequest(http.MethodPut, "/api/v1/admin/scoring-formula", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Description != "Pass above 90, fail below 50." {
		t.Fatalf("unexpected formula %q", payload.Description)
	}
}
