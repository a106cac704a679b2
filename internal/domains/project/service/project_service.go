package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

type projectService struct {
	repo project.Repository
}

func NewProjectService(repo project.Repository) project.Service {
	return &projectService{repo: repo}
}

// Create validates input, derives the slug when absent and persists the
// project. Client-supplied id/timestamps cannot reach here: the DTO has no
// fields for them.
func (s *projectService) Create(ctx context.Context, req *project.CreateProjectRequest) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}

	technologies := req.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	p := &project.Project{
		Title:        req.Title,
		Slug:         slug,
		Description:  req.Description,
		Content:      req.Content,
		Technologies: technologies,
		Category:     req.Category,
		LiveURL:      req.LiveURL,
		RepoURL:      req.RepoURL,
		ImageURL:     req.ImageURL,
		Featured:     req.Featured,
		Published:    req.Published,
		SortOrder:    req.SortOrder,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetBySlugOrID resolves by slug first, then falls back to UUID. Anonymous
// callers never learn whether an unpublished project exists: both absent
// and hidden resolve to not found.
func (s *projectService) GetBySlugOrID(ctx context.Context, key string, includeUnpublished, countView bool) (*project.Project, error) {
	p, err := s.repo.GetBySlug(ctx, key)
	if err == project.ErrProjectNotFound {
		id, parseErr := uuid.Parse(key)
		if parseErr != nil {
			return nil, project.ErrProjectNotFound
		}
		p, err = s.repo.GetByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	if !p.Published && !includeUnpublished {
		return nil, project.ErrProjectNotFound
	}

	if countView {
		// Best-effort: the read stays correct even when the bump fails.
		if err := s.repo.IncrementViews(ctx, p.ID); err != nil {
			logger.Warn("failed to increment project views", map[string]interface{}{
				"project_id": p.ID.String(),
				"error":      err.Error(),
			})
		} else {
			p.ViewCount++
		}
	}

	return p, nil
}

func (s *projectService) List(ctx context.Context, filter project.ProjectFilter) ([]project.Project, int64, error) {
	projects, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}
	if projects == nil {
		projects = []project.Project{}
	}
	return projects, total, nil
}

// Update applies only the fields present in the request and re-checks slug
// uniqueness when the slug changes (enforced by the unique index).
func (s *projectService) Update(ctx context.Context, id uuid.UUID, req *project.UpdateProjectRequest) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Slug != nil {
		p.Slug = *req.Slug
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Content != nil {
		p.Content = req.Content
	}
	if req.Technologies != nil {
		p.Technologies = *req.Technologies
	}
	if req.Category != nil {
		p.Category = req.Category
	}
	if req.LiveURL != nil {
		p.LiveURL = req.LiveURL
	}
	if req.RepoURL != nil {
		p.RepoURL = req.RepoURL
	}
	if req.ImageURL != nil {
		p.ImageURL = req.ImageURL
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Published != nil {
		p.Published = *req.Published
	}
	if req.SortOrder != nil {
		p.SortOrder = *req.SortOrder
	}

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
