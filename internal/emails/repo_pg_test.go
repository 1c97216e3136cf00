package emails

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateMarshalsMetadata(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	email := EmailTemplate{
		ID:          "email-1",
		Name:        "welcome",
		Status:      "active",
		HTMLContent: "<p>hi</p>",
		Metadata:    Metadata{Subject: "Welcome", Locale: "en-US"},
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO email_templates").
		WithArgs(
			email.ID,
			email.Name,
			email.Status,
			email.HTMLContent,
			sqlmock.AnyArg(), // metadata json
			email.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Create(context.Background(), email); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT (.+) FROM email_templates").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoGetByIDUnmarshalsMetadata(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "name", "status", "html_content", "metadata", "created_at"}).
		AddRow("email-1", "welcome", "active", "<p>hi</p>", []byte(`{"subject":"Welcome","locale":"en-US"}`), now)

	mock.ExpectQuery("SELECT (.+) FROM email_templates").
		WithArgs("email-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	email, err := repo.GetByID(context.Background(), "email-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if email.Metadata.Subject != "Welcome" || email.Metadata.Locale != "en-US" {
		t.Fatalf("metadata not unmarshaled: %+v", email.Metadata)
	}
}
