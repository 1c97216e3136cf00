package emails

import (
	"context"
	"errors"
	"testing"
)

type stubConnector struct {
	proofs map[string]EmailTemplate
	err    error
}

func (s stubConnector) ListProofs(ctx context.Context) ([]EmailTemplate, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]EmailTemplate, 0, len(s.proofs))
	for _, proof := range s.proofs {
		out = append(out, proof)
	}
	return out, nil
}

func (s stubConnector) GetProof(ctx context.Context, emailID string) (EmailTemplate, error) {
	if s.err != nil {
		return EmailTemplate{}, s.err
	}
	proof, ok := s.proofs[emailID]
	if !ok {
		return EmailTemplate{}, ErrNotFound
	}
	return proof, nil
}

func TestUploadDefaultsName(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	email, err := svc.Upload(context.Background(), "", "<p>hi</p>", Metadata{TemplateName: "welcome_v1"})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if email.Name != "welcome_v1" {
		t.Fatalf("name = %q, want template name fallback", email.Name)
	}
	if email.ID == "" || email.Status != "active" {
		t.Fatalf("unexpected email %+v", email)
	}
}

func TestUploadRejectsEmptyContent(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	if _, err := svc.Upload(context.Background(), "x", "   ", Metadata{}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestGetFallsBackToConnectorAndCaches(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{
		Repo: repo,
		Connector: stubConnector{proofs: map[string]EmailTemplate{
			"proof-1": {ID: "proof-1", Name: "proofed", HTMLContent: "<p>hi</p>"},
		}},
	}

	email, err := svc.Get(context.Background(), "proof-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if email.Name != "proofed" {
		t.Fatalf("unexpected email %+v", email)
	}

	// Second read must come from the store.
	cached, err := repo.GetByID(context.Background(), "proof-1")
	if err != nil {
		t.Fatalf("proof was not cached: %v", err)
	}
	if cached.Name != "proofed" {
		t.Fatalf("cached email diverges: %+v", cached)
	}
}

func TestGetUnknownWithoutConnector(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListMergesConnectorProofs(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{
		Repo: repo,
		Connector: stubConnector{proofs: map[string]EmailTemplate{
			"proof-1": {ID: "proof-1", Name: "remote"},
		}},
	}

	if err := repo.Create(context.Background(), EmailTemplate{ID: "local-1", Name: "local", HTMLContent: "<p>hi</p>"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := svc.List(context.Background(), 50, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected merged list of 2, got %+v", list)
	}
}

func TestListDegradesWhenConnectorFails(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo, Connector: stubConnector{err: ErrConnectorUnavailable}}

	if err := repo.Create(context.Background(), EmailTemplate{ID: "local-1", Name: "local", HTMLContent: "<p>hi</p>"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := svc.List(context.Background(), 50, 0)
	if err != nil {
		t.Fatalf("List should degrade to stored-only: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected stored templates only, got %+v", list)
	}
}
