package skill

import (
	"context"

	"github.com/google/uuid"
)

// Service is the skill business logic contract.
type Service interface {
	Create(ctx context.Context, req *CreateSkillRequest) (*Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Skill, error)
	List(ctx context.Context, filter SkillFilter) ([]Skill, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateSkillRequest) (*Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
