package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"email-qa-backend/internal/shared/config"
)

func TestBuildWithoutDatabaseUsesMemoryStores(t *testing.T) {
	app, err := Build(config.Config{Env: "dev", Port: "8080"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if app.DB != nil {
		t.Fatal("expected nil DB without DATABASE_URL")
	}
	if app.Router == nil {
		t.Fatal("router not wired")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
}

func TestBuildRequiresDatabaseInProduction(t *testing.T) {
	if _, err := Build(config.Config{Env: "production"}); err == nil {
		t.Fatal("expected error without DATABASE_URL in production")
	}
}
