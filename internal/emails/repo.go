package emails

import "context"

// Repo defines persistence operations for email templates.
type Repo interface {
	Create(ctx context.Context, email EmailTemplate) error
	GetByID(ctx context.Context, emailID string) (EmailTemplate, error)
	List(ctx context.Context, limit, offset int) ([]EmailTemplate, error)
}
