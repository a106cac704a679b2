package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/blog"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

type blogService struct {
	repo blog.Repository
}

func NewBlogService(repo blog.Repository) blog.Service {
	return &blogService{repo: repo}
}

// Create validates input, derives the slug when absent and persists the
// post. Client-supplied id/timestamps cannot reach here: the DTO has no
// fields for them.
func (s *blogService) Create(ctx context.Context, req *blog.CreatePostRequest) (*blog.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	p := &blog.Post{
		Title:         req.Title,
		Slug:          slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Category:      req.Category,
		Tags:          tags,
		FeaturedImage: req.FeaturedImage,
		Published:     req.Published,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetBySlugOrID resolves by slug first, then falls back to UUID. Anonymous
// callers never learn whether an unpublished post exists: both absent and
// hidden resolve to not found.
func (s *blogService) GetBySlugOrID(ctx context.Context, key string, includeUnpublished, countView bool) (*blog.Post, error) {
	p, err := s.repo.GetBySlug(ctx, key)
	if err == blog.ErrPostNotFound {
		id, parseErr := uuid.Parse(key)
		if parseErr != nil {
			return nil, blog.ErrPostNotFound
		}
		p, err = s.repo.GetByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	if !p.Published && !includeUnpublished {
		return nil, blog.ErrPostNotFound
	}

	if countView {
		// Best-effort: the read stays correct even when the bump fails.
		if err := s.repo.IncrementViews(ctx, p.ID); err != nil {
			logger.Warn("failed to increment post views", map[string]interface{}{
				"post_id": p.ID.String(),
				"error":   err.Error(),
			})
		} else {
			p.ViewCount++
		}
	}

	return p, nil
}

func (s *blogService) List(ctx context.Context, filter blog.PostFilter) ([]blog.Post, int64, error) {
	posts, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	if posts == nil {
		posts = []blog.Post{}
	}
	return posts, total, nil
}

// Update applies only the fields present in the request and re-checks slug
// uniqueness when the slug changes (enforced by the unique index).
func (s *blogService) Update(ctx context.Context, id uuid.UUID, req *blog.UpdatePostRequest) (*blog.Post, error) {
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
	if req.Excerpt != nil {
		p.Excerpt = req.Excerpt
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Category != nil {
		p.Category = req.Category
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
	if req.FeaturedImage != nil {
		p.FeaturedImage = req.FeaturedImage
	}
	if req.Published != nil {
		p.Published = *req.Published
	}

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
