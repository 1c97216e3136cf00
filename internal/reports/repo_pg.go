package reports

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new report record.
func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO qa_reports (id, email_template_id, overall_status, risk_score, risk_level, report_data, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(ctx, query,
		rec.ID, rec.EmailTemplateID, rec.OverallStatus,
		rec.RiskScore, rec.RiskLevel, []byte(rec.ReportData), rec.CreatedAt,
	)
	return err
}

// GetByID returns a report record by ID.
func (r *PGRepo) GetByID(ctx context.Context, reportID string) (Record, error) {
	const query = `
SELECT id, email_template_id, overall_status, risk_score, risk_level, report_data, created_at
FROM qa_reports
WHERE id = $1`

	var rec Record
	var data []byte
	err := r.DB.QueryRowContext(ctx, query, reportID).Scan(
		&rec.ID,
		&rec.EmailTemplateID,
		&rec.OverallStatus,
		&rec.RiskScore,
		&rec.RiskLevel,
		&data,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	rec.ReportData = data
	return rec, nil
}

// ListByEmail returns records newest first. An empty emailID lists all.
func (r *PGRepo) ListByEmail(ctx context.Context, emailID string, limit, offset int) ([]Record, error) {
	const filtered = `
SELECT id, email_template_id, overall_status, risk_score, risk_level, report_data, created_at
FROM qa_reports
WHERE email_template_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	const all = `
SELECT id, email_template_id, overall_status, risk_score, risk_level, report_data, created_at
FROM qa_reports
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rows *sql.Rows
	var err error
	if emailID != "" {
		rows, err = r.DB.QueryContext(ctx, filtered, emailID, limit, offset)
	} else {
		rows, err = r.DB.QueryContext(ctx, all, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Record, 0, limit)
	for rows.Next() {
		var rec Record
		var data []byte
		if err := rows.Scan(&rec.ID, &rec.EmailTemplateID, &rec.OverallStatus, &rec.RiskScore, &rec.RiskLevel, &data, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.ReportData = data
		out = append(out, rec)
	}
	return out, rows.Err()
}
