package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/achievement"
)

type achievementService struct {
	repo achievement.Repository
}

func NewAchievementService(repo achievement.Repository) achievement.Service {
	return &achievementService{repo: repo}
}

func (s *achievementService) Create(ctx context.Context, req *achievement.CreateAchievementRequest) (*achievement.Achievement, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &achievement.Achievement{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		AchievedAt:  req.AchievedAt,
		SortOrder:   req.SortOrder,
	})
}

func (s *achievementService) GetByID(ctx context.Context, id uuid.UUID) (*achievement.Achievement, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *achievementService) List(ctx context.Context, filter achievement.AchievementFilter) ([]achievement.Achievement, int64, error) {
	achievements, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list achievements: %w", err)
	}
	if achievements == nil {
		achievements = []achievement.Achievement{}
	}
	return achievements, total, nil
}

func (s *achievementService) Update(ctx context.Context, id uuid.UUID, req *achievement.UpdateAchievementRequest) (*achievement.Achievement, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.Icon != nil {
		existing.Icon = req.Icon
	}
	if req.AchievedAt != nil {
		existing.AchievedAt = req.AchievedAt
	}
	if req.SortOrder != nil {
		existing.SortOrder = *req.SortOrder
	}

	return s.repo.Update(ctx, existing)
}

func (s *achievementService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
