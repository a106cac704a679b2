package achievement

import (
	"context"

	"github.com/google/uuid"
)

// Service is the achievement business logic contract.
type Service interface {
	Create(ctx context.Context, req *CreateAchievementRequest) (*Achievement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Achievement, error)
	List(ctx context.Context, filter AchievementFilter) ([]Achievement, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateAchievementRequest) (*Achievement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
