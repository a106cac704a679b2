package project

import (
	"context"

	"github.com/google/uuid"
)

// Service is the project business logic contract.
type Service interface {
	Create(ctx context.Context, req *CreateProjectRequest) (*Project, error)

	// GetBySlugOrID resolves by slug first and falls back to UUID. When
	// includeUnpublished is false, unpublished projects come back as not
	// found. countView marks the public detail path.
	GetBySlugOrID(ctx context.Context, key string, includeUnpublished, countView bool) (*Project, error)

	List(ctx context.Context, filter ProjectFilter) ([]Project, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateProjectRequest) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
