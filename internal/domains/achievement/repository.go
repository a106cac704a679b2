package achievement

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the achievement data access contract.
type Repository interface {
	Create(ctx context.Context, a *Achievement) (*Achievement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Achievement, error)
	List(ctx context.Context, filter AchievementFilter) ([]Achievement, int64, error)
	Update(ctx context.Context, a *Achievement) (*Achievement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
