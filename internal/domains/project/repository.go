package project

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the project data access contract.
type Repository interface {
	Create(ctx context.Context, p *Project) (*Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]Project, int64, error)
	Update(ctx context.Context, p *Project) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews bumps view_count atomically in the store. Callers treat
	// failure as non-fatal.
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
