package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/pkg/cache"
)

// postgresRepository implements project.Repository on pgxpool with a Redis
// cache-aside layer for the hot public reads.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) project.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	projectCacheKeyPrefix = "project:"
	projectSlugKeyPrefix  = "project:slug:"
	projectListKeyPrefix  = "projects:list:"
	cacheTTL              = 5 * time.Minute
)

const projectColumns = `id, title, slug, description, content, technologies, category, live_url, repo_url, image_url, featured, published, view_count, sort_order, created_at, updated_at`

func scanProject(row pgx.Row) (*project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Description,
		&p.Content,
		&p.Technologies,
		&p.Category,
		&p.LiveURL,
		&p.RepoURL,
		&p.ImageURL,
		&p.Featured,
		&p.Published,
		&p.ViewCount,
		&p.SortOrder,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new project; id and timestamps come back from the database.
func (r *postgresRepository) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	query := `
        INSERT INTO projects (title, slug, description, content, technologies, category, live_url, repo_url, image_url, featured, published, sort_order)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING ` + projectColumns

	created, err := scanProject(r.pool.QueryRow(
		ctx,
		query,
		p.Title,
		p.Slug,
		p.Description,
		p.Content,
		p.Technologies,
		p.Category,
		p.LiveURL,
		p.RepoURL,
		p.ImageURL,
		p.Featured,
		p.Published,
		p.SortOrder,
	))

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" && strings.Contains(pgErr.Message, "slug") { // unique_violation
				return nil, project.ErrDuplicateSlug
			}
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	r.invalidateListCache(ctx)

	return created, nil
}

// GetByID retrieves a project by UUID with caching.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	cacheKey := projectCacheKeyPrefix + id.String()

	var cached project.Project
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project by id: %w", err)
	}

	r.storeInCache(ctx, p)

	return p, nil
}

// GetBySlug retrieves a project by URL slug with caching.
func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*project.Project, error) {
	cacheKey := projectSlugKeyPrefix + slug

	var cached project.Project
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + projectColumns + ` FROM projects WHERE slug = $1`

	p, err := scanProject(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project by slug: %w", err)
	}

	r.storeInCache(ctx, p)

	return p, nil
}

// listCacheEntry keeps a page and its total together so a cache hit can
// serve both without recounting.
type listCacheEntry struct {
	Projects []project.Project `json:"projects"`
	Total    int64             `json:"total"`
}

func listCacheKey(filter project.ProjectFilter) string {
	featured := "any"
	if filter.Featured != nil {
		featured = strconv.FormatBool(*filter.Featured)
	}
	return fmt.Sprintf("%s%s|%s|%t|%d|%d",
		projectListKeyPrefix, filter.Category, featured, filter.PublishedOnly, filter.Limit, filter.Offset)
}

// List returns a page of projects plus the total matching count.
// Ordering is created_at DESC with id as tiebreaker so pages are stable.
func (r *postgresRepository) List(ctx context.Context, filter project.ProjectFilter) ([]project.Project, int64, error) {
	cacheKey := listCacheKey(filter)

	var cached listCacheEntry
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached.Projects, cached.Total, nil
	}

	var where strings.Builder
	where.WriteString(" WHERE 1=1")

	args := []interface{}{}
	argPos := 1

	if filter.PublishedOnly {
		where.WriteString(" AND published = TRUE")
	}
	if filter.Category != "" {
		where.WriteString(fmt.Sprintf(" AND category = $%d", argPos))
		args = append(args, filter.Category)
		argPos++
	}
	if filter.Featured != nil {
		where.WriteString(fmt.Sprintf(" AND featured = $%d", argPos))
		args = append(args, *filter.Featured)
		argPos++
	}

	query := fmt.Sprintf(
		"SELECT %s FROM projects%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d",
		projectColumns, where.String(), argPos, argPos+1,
	)
	rows, err := r.pool.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating projects: %w", err)
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM projects" + where.String()
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	if data, err := json.Marshal(listCacheEntry{Projects: projects, Total: total}); err == nil {
		r.cache.Set(ctx, cacheKey, string(data), cacheTTL)
	}

	return projects, total, nil
}

// Update writes the full row; the service applied the partial input already.
// updated_at is recomputed by the database.
func (r *postgresRepository) Update(ctx context.Context, p *project.Project) (*project.Project, error) {
	query := `
        UPDATE projects
        SET
            title = $1,
            slug = $2,
            description = $3,
            content = $4,
            technologies = $5,
            category = $6,
            live_url = $7,
            repo_url = $8,
            image_url = $9,
            featured = $10,
            published = $11,
            sort_order = $12,
            updated_at = NOW()
        WHERE id = $13
        RETURNING ` + projectColumns

	updated, err := scanProject(r.pool.QueryRow(
		ctx,
		query,
		p.Title,
		p.Slug,
		p.Description,
		p.Content,
		p.Technologies,
		p.Category,
		p.LiveURL,
		p.RepoURL,
		p.ImageURL,
		p.Featured,
		p.Published,
		p.SortOrder,
		p.ID,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrProjectNotFound
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" && strings.Contains(pgErr.Message, "slug") {
				return nil, project.ErrDuplicateSlug
			}
		}

		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	r.invalidateProjectCache(ctx, p.ID, p.Slug)
	r.invalidateListCache(ctx)

	return updated, nil
}

// Delete removes a project. A second delete of the same id reports not found.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Fetch slug first for cache invalidation
	var slug string
	err := r.pool.QueryRow(ctx, "SELECT slug FROM projects WHERE id = $1", id).Scan(&slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ErrProjectNotFound
		}
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	r.invalidateProjectCache(ctx, id, slug)
	r.invalidateListCache(ctx)

	return nil
}

// IncrementViews bumps view_count atomically; the counter never decreases.
func (r *postgresRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `UPDATE projects SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

// Cache helpers

func (r *postgresRepository) storeInCache(ctx context.Context, p *project.Project) {
	if data, err := json.Marshal(p); err == nil {
		r.cache.Set(ctx, projectCacheKeyPrefix+p.ID.String(), string(data), cacheTTL)
		r.cache.Set(ctx, projectSlugKeyPrefix+p.Slug, string(data), cacheTTL)
	}
}

func (r *postgresRepository) invalidateProjectCache(ctx context.Context, id uuid.UUID, slug string) {
	r.cache.Delete(ctx, projectCacheKeyPrefix+id.String())
	r.cache.Delete(ctx, projectSlugKeyPrefix+slug)
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	r.cache.DeletePattern(ctx, projectListKeyPrefix+"*")
}
