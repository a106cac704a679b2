package blog

import (
	"context"

	"github.com/google/uuid"
)

// Service is the post business logic contract.
type Service interface {
	Create(ctx context.Context, req *CreatePostRequest) (*Post, error)

	// GetBySlugOrID resolves by slug first and falls back to UUID. When
	// includeUnpublished is false, unpublished posts come back as not found.
	// countView marks the public detail path: it bumps the view counter
	// best-effort, exactly once per call.
	GetBySlugOrID(ctx context.Context, key string, includeUnpublished, countView bool) (*Post, error)

	List(ctx context.Context, filter PostFilter) ([]Post, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdatePostRequest) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
