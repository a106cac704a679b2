package blog

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the post data access contract.
type Repository interface {
	Create(ctx context.Context, p *Post) (*Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	List(ctx context.Context, filter PostFilter) ([]Post, int64, error)
	Update(ctx context.Context, p *Post) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews bumps view_count atomically in the store. Callers treat
	// failure as non-fatal.
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
