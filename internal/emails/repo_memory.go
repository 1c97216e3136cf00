package emails

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]EmailTemplate
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]EmailTemplate)}
}

// Create stores an email template.
func (r *MemoryRepo) Create(ctx context.Context, email EmailTemplate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[email.ID] = email
	return nil
}

// GetByID returns an email template by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, emailID string) (EmailTemplate, error) {
	if err := ctx.Err(); err != nil {
		return EmailTemplate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	email, ok := r.data[emailID]
	if !ok {
		return EmailTemplate{}, ErrNotFound
	}
	return email, nil
}

// List returns stored templates, newest first, honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]EmailTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	all := make([]EmailTemplate, 0, len(r.data))
	for _, email := range r.data {
		all = append(all, email)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []EmailTemplate{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}
