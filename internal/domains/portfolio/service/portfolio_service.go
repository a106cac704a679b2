package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"portfolio-backend/internal/domains/achievement"
	"portfolio-backend/internal/domains/blog"
	"portfolio-backend/internal/domains/certification"
	"portfolio-backend/internal/domains/portfolio"
	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/domains/skill"
)

const (
	sectionLimit     = 100
	recentPostsLimit = 3
)

type portfolioService struct {
	projects       project.Service
	skills         skill.Service
	certifications certification.Service
	achievements   achievement.Service
	posts          blog.Service
}

func NewPortfolioService(
	projects project.Service,
	skills skill.Service,
	certifications certification.Service,
	achievements achievement.Service,
	posts blog.Service,
) portfolio.Service {
	return &portfolioService{
		projects:       projects,
		skills:         skills,
		certifications: certifications,
		achievements:   achievements,
		posts:          posts,
	}
}

// GetOverview runs the five section queries concurrently. The first error
// cancels the rest through the group context.
func (s *portfolioService) GetOverview(ctx context.Context) (*portfolio.Overview, error) {
	g, ctx := errgroup.WithContext(ctx)

	var overview portfolio.Overview

	g.Go(func() error {
		projects, _, err := s.projects.List(ctx, project.ProjectFilter{
			PublishedOnly: true,
			Limit:         sectionLimit,
		})
		if err != nil {
			return fmt.Errorf("portfolio projects: %w", err)
		}
		overview.Projects = projects
		return nil
	})

	g.Go(func() error {
		skills, _, err := s.skills.List(ctx, skill.SkillFilter{Limit: sectionLimit})
		if err != nil {
			return fmt.Errorf("portfolio skills: %w", err)
		}
		overview.Skills = skills
		return nil
	})

	g.Go(func() error {
		certs, _, err := s.certifications.List(ctx, certification.CertificationFilter{Limit: sectionLimit})
		if err != nil {
			return fmt.Errorf("portfolio certifications: %w", err)
		}
		overview.Certifications = certs
		return nil
	})

	g.Go(func() error {
		achievements, _, err := s.achievements.List(ctx, achievement.AchievementFilter{Limit: sectionLimit})
		if err != nil {
			return fmt.Errorf("portfolio achievements: %w", err)
		}
		overview.Achievements = achievements
		return nil
	})

	g.Go(func() error {
		posts, _, err := s.posts.List(ctx, blog.PostFilter{
			PublishedOnly: true,
			Limit:         recentPostsLimit,
		})
		if err != nil {
			return fmt.Errorf("portfolio recent posts: %w", err)
		}
		overview.RecentPosts = posts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &overview, nil
}
