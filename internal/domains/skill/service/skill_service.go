package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill"
)

type skillService struct {
	repo skill.Repository
}

func NewSkillService(repo skill.Repository) skill.Service {
	return &skillService{repo: repo}
}

func (s *skillService) Create(ctx context.Context, req *skill.CreateSkillRequest) (*skill.Skill, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &skill.Skill{
		Name:      req.Name,
		Category:  req.Category,
		Level:     req.Level,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
	})
}

func (s *skillService) GetByID(ctx context.Context, id uuid.UUID) (*skill.Skill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *skillService) List(ctx context.Context, filter skill.SkillFilter) ([]skill.Skill, int64, error) {
	skills, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list skills: %w", err)
	}
	if skills == nil {
		skills = []skill.Skill{}
	}
	return skills, total, nil
}

func (s *skillService) Update(ctx context.Context, id uuid.UUID, req *skill.UpdateSkillRequest) (*skill.Skill, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.Level != nil {
		existing.Level = *req.Level
	}
	if req.Icon != nil {
		existing.Icon = req.Icon
	}
	if req.SortOrder != nil {
		existing.SortOrder = *req.SortOrder
	}

	return s.repo.Update(ctx, existing)
}

func (s *skillService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
