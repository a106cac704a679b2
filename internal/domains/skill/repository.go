package skill

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the skill data access contract.
type Repository interface {
	Create(ctx context.Context, s *Skill) (*Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Skill, error)
	List(ctx context.Context, filter SkillFilter) ([]Skill, int64, error)
	Update(ctx context.Context, s *Skill) (*Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
