package reports

import "context"

// Repo persists QA report records.
type Repo interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, reportID string) (Record, error)
	ListByEmail(ctx context.Context, emailID string, limit, offset int) ([]Record, error)
}
