package emails

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new email template.
func (r *PGRepo) Create(ctx context.Context, email EmailTemplate) error {
	const query = `
INSERT INTO email_templates (id, name, status, html_content, metadata, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	status := email.Status
	if status == "" {
		status = "active"
	}
	meta, err := json.Marshal(email.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query, email.ID, email.Name, status, email.HTMLContent, meta, email.CreatedAt)
	return err
}

// GetByID returns an email template by ID.
func (r *PGRepo) GetByID(ctx context.Context, emailID string) (EmailTemplate, error) {
	const query = `
SELECT id, name, status, html_content, metadata, created_at
FROM email_templates
WHERE id = $1`

	var email EmailTemplate
	var meta []byte
	err := r.DB.QueryRowContext(ctx, query, emailID).Scan(
		&email.ID,
		&email.Name,
		&email.Status,
		&email.HTMLContent,
		&meta,
		&email.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailTemplate{}, ErrNotFound
		}
		return EmailTemplate{}, err
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &email.Metadata); err != nil {
			return EmailTemplate{}, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return email, nil
}

// List returns templates newest first, honoring limit/offset.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]EmailTemplate, error) {
	const query = `
SELECT id, name, status, html_content, metadata, created_at
FROM email_templates
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EmailTemplate, 0, limit)
	for rows.Next() {
		var email EmailTemplate
		var meta []byte
		if err := rows.Scan(&email.ID, &email.Name, &email.Status, &email.HTMLContent, &meta, &email.CreatedAt); err != nil {
			return nil, err
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &email.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal metadata: %w", err)
			}
		}
		out = append(out, email)
	}
	return out, rows.Err()
}
