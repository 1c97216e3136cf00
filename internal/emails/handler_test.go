package emails_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"email-qa-backend/internal/emails"
)

func setupRouter(t *testing.T) (*gin.Engine, *emails.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := emails.NewMemoryRepo()
	handler := emails.NewHandler(&emails.Service{Repo: repo})

	r := gin.New()
	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)
	return r, repo
}

func TestUploadEmailEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	body, _ := json.Marshal(emails.UploadRequest{
		Name:        "welcome",
		HTMLContent: "<p>hi</p>",
		Metadata:    emails.Metadata{Subject: "Welcome"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/emails", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var created emails.EmailTemplate
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.Name != "welcome" {
		t.Fatalf("unexpected response %+v", created)
	}
}

func TestUploadEmailEndpointRequiresContent(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/emails", bytes.NewReader([]byte(`{"name":"x"}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetEmailEndpoint(t *testing.T) {
	router, repo := setupRouter(t)

	if err := repo.Create(context.Background(), emails.EmailTemplate{ID: "email-1", Name: "welcome", HTMLContent: "<p>hi</p>"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/emails/email-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/emails/missing", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListEmailsEndpoint(t *testing.T) {
	router, repo := setupRouter(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Create(context.Background(), emails.EmailTemplate{ID: id, Name: id, HTMLContent: "<p>hi</p>"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/emails?limit=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var payload struct {
		Emails []emails.Summary `json:"emails"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Emails) != 2 {
		t.Fatalf("expected 2 emails, got %+v", payload.Emails)
	}
}
