package reports_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"email-qa-backend/internal/reports"
)

func setupRouter(t *testing.T) (*gin.Engine, *reports.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := reports.NewMemoryRepo()
	r := gin.New()
	api := r.Group("/api/v1")
	reports.NewHandler(repo).RegisterRoutes(api)
	return r, repo
}

func TestGetReportEndpointReturnsReportBody(t *testing.T) {
	router, repo := setupRouter(t)

	err := repo.Create(context.Background(), reports.Record{
		ID:              "report-1",
		EmailTemplateID: "email-1",
		OverallStatus:   "pass",
		RiskScore:       95,
		RiskLevel:       "low",
		ReportData:      json.RawMessage(`{"id":"report-1","risk_score":95}`),
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/report-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["id"] != "report-1" {
		t.Fatalf("expected stored report body, got %v", body)
	}
}

func TestGetReportEndpointNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListReportsEndpointFiltersByEmail(t *testing.T) {
	router, repo := setupRouter(t)
	now := time.Now().UTC()

	for _, rec := range []reports.Record{
		{ID: "report-1", EmailTemplateID: "email-1", OverallStatus: "pass", RiskScore: 95, RiskLevel: "low", ReportData: json.RawMessage(`{}`), CreatedAt: now.Add(-time.Hour)},
		{ID: "report-2", EmailTemplateID: "email-2", OverallStatus: "fail", RiskScore: 40, RiskLevel: "high", ReportData: json.RawMessage(`{}`), CreatedAt: now},
	} {
		if err := repo.Create(context.Background(), rec); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports?email_id=email-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var payload struct {
		Reports []reports.Summary `json:"reports"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Reports) != 1 || payload.Reports[0].ID != "report-1" {
		t.Fatalf("unexpected listing %+v", payload.Reports)
	}
}
