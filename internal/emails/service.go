package emails

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"email-qa-backend/internal/shared/telemetry"
)

// Service contains business logic for email templates.
type Service struct {
	Repo      Repo
	Connector Connector
}

// Upload stores a directly-submitted email template and returns it.
func (s *Service) Upload(ctx context.Context, name, htmlContent string, meta Metadata) (EmailTemplate, error) {
	if strings.TrimSpace(htmlContent) == "" {
		return EmailTemplate{}, errors.New("html_content is required")
	}
	if strings.TrimSpace(name) == "" {
		name = meta.TemplateName
	}
	if strings.TrimSpace(name) == "" {
		name = "untitled"
	}

	email := EmailTemplate{
		ID:          uuid.NewString(),
		Name:        name,
		Status:      "active",
		HTMLContent: htmlContent,
		Metadata:    meta,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, email); err != nil {
		return EmailTemplate{}, err
	}
	return email, nil
}

// Get returns a template by ID, consulting the store first and falling back
// to the proofing connector. Connector hits are cached in the store so a QA
// run never refetches the same proof.
func (s *Service) Get(ctx context.Context, emailID string) (EmailTemplate, error) {
	if emailID == "" {
		return EmailTemplate{}, errors.New("emailID is required")
	}

	email, err := s.Repo.GetByID(ctx, emailID)
	if err == nil {
		return email, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return EmailTemplate{}, err
	}
	if s.Connector == nil {
		return EmailTemplate{}, ErrNotFound
	}

	proof, err := s.Connector.GetProof(ctx, emailID)
	if err != nil {
		if errors.Is(err, ErrConnectorUnavailable) {
			return EmailTemplate{}, ErrNotFound
		}
		return EmailTemplate{}, err
	}
	proof.CreatedAt = time.Now().UTC()
	if err := s.Repo.Create(ctx, proof); err != nil {
		telemetry.Warn("emails.cache_proof_failed", map[string]any{
			"email_id": proof.ID,
			"error":    err.Error(),
		})
	}
	return proof, nil
}

// List merges stored templates with connector proofs not yet stored.
func (s *Service) List(ctx context.Context, limit, offset int) ([]EmailTemplate, error) {
	stored, err := s.Repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if s.Connector == nil {
		return stored, nil
	}

	proofs, err := s.Connector.ListProofs(ctx)
	if err != nil {
		if !errors.Is(err, ErrConnectorUnavailable) {
			telemetry.Warn("emails.list_proofs_failed", map[string]any{"error": err.Error()})
		}
		return stored, nil
	}

	seen := make(map[string]struct{}, len(stored))
	for _, email := range stored {
		seen[email.ID] = struct{}{}
	}
	for _, proof := range proofs {
		if _, ok := seen[proof.ID]; !ok {
			stored = append(stored, proof)
		}
	}
	return stored, nil
}
