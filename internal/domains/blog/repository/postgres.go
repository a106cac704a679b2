package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/blog"
	"portfolio-backend/pkg/cache"
)

// postgresRepository implements blog.Repository on pgxpool with a Redis
// cache-aside layer for the hot public reads.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) blog.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	postCacheKeyPrefix = "post:"
	postSlugKeyPrefix  = "post:slug:"
	postListKeyPrefix  = "posts:list:"
	cacheTTL           = 5 * time.Minute
)

const postColumns = `id, title, slug, excerpt, content, category, tags, featured_image, published, view_count, created_at, updated_at`

func scanPost(row pgx.Row) (*blog.Post, error) {
	var p blog.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Excerpt,
		&p.Content,
		&p.Category,
		&p.Tags,
		&p.FeaturedImage,
		&p.Published,
		&p.ViewCount,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new post; id and timestamps come back from the database.
func (r *postgresRepository) Create(ctx context.Context, p *blog.Post) (*blog.Post, error) {
	query := `
        INSERT INTO posts (title, slug, excerpt, content, category, tags, featured_image, published)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + postColumns

	created, err := scanPost(r.pool.QueryRow(
		ctx,
		query,
		p.Title,
		p.Slug,
		p.Excerpt,
		p.Content,
		p.Category,
		p.Tags,
		p.FeaturedImage,
		p.Published,
	))

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" && strings.Contains(pgErr.Message, "slug") { // unique_violation
				return nil, blog.ErrDuplicateSlug
			}
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	r.invalidateListCache(ctx)

	return created, nil
}

// GetByID retrieves a post by UUID with caching.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	cacheKey := postCacheKeyPrefix + id.String()

	var cached blog.Post
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	r.storeInCache(ctx, p)

	return p, nil
}

// GetBySlug retrieves a post by URL slug with caching.
func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	cacheKey := postSlugKeyPrefix + slug

	var cached blog.Post
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + postColumns + ` FROM posts WHERE slug = $1`

	p, err := scanPost(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	r.storeInCache(ctx, p)

	return p, nil
}

// listCacheEntry keeps a page and its total together so a cache hit can
// serve both without recounting.
type listCacheEntry struct {
	Posts []blog.Post `json:"posts"`
	Total int64       `json:"total"`
}

func listCacheKey(filter blog.PostFilter) string {
	return fmt.Sprintf("%s%s|%s|%t|%d|%d",
		postListKeyPrefix, filter.Category, filter.Tag, filter.PublishedOnly, filter.Limit, filter.Offset)
}

// List returns a page of posts plus the total matching count.
// Ordering is created_at DESC with id as tiebreaker so pages are stable.
func (r *postgresRepository) List(ctx context.Context, filter blog.PostFilter) ([]blog.Post, int64, error) {
	cacheKey := listCacheKey(filter)

	var cached listCacheEntry
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached.Posts, cached.Total, nil
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
	if filter.Tag != "" {
		where.WriteString(fmt.Sprintf(" AND $%d = ANY(tags)", argPos))
		args = append(args, filter.Tag)
		argPos++
	}

	query := fmt.Sprintf(
		"SELECT %s FROM posts%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d",
		postColumns, where.String(), argPos, argPos+1,
	)
	rows, err := r.pool.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []blog.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating posts: %w", err)
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM posts" + where.String()
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	if data, err := json.Marshal(listCacheEntry{Posts: posts, Total: total}); err == nil {
		r.cache.Set(ctx, cacheKey, string(data), cacheTTL)
	}

	return posts, total, nil
}

// Update writes the full row; the service applied the partial input already.
// updated_at is recomputed by the database.
func (r *postgresRepository) Update(ctx context.Context, p *blog.Post) (*blog.Post, error) {
	query := `
        UPDATE posts
        SET
            title = $1,
            slug = $2,
            excerpt = $3,
            content = $4,
            category = $5,
            tags = $6,
            featured_image = $7,
            published = $8,
            updated_at = NOW()
        WHERE id = $9
        RETURNING ` + postColumns

	updated, err := scanPost(r.pool.QueryRow(
		ctx,
		query,
		p.Title,
		p.Slug,
		p.Excerpt,
		p.Content,
		p.Category,
		p.Tags,
		p.FeaturedImage,
		p.Published,
		p.ID,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrPostNotFound
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" && strings.Contains(pgErr.Message, "slug") {
				return nil, blog.ErrDuplicateSlug
			}
		}

		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	r.invalidatePostCache(ctx, p.ID, p.Slug)
	r.invalidateListCache(ctx)

	return updated, nil
}

// Delete removes a post. A second delete of the same id reports not found.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Fetch slug first for cache invalidation
	var slug string
	err := r.pool.QueryRow(ctx, "SELECT slug FROM posts WHERE id = $1", id).Scan(&slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return blog.ErrPostNotFound
		}
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return blog.ErrPostNotFound
	}

	r.invalidatePostCache(ctx, id, slug)
	r.invalidateListCache(ctx)

	return nil
}

// IncrementViews bumps view_count atomically. Concurrent increments never
// lose more than the usual last-write-wins of independent UPDATEs, and the
// counter never decreases.
func (r *postgresRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `UPDATE posts SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return blog.ErrPostNotFound
	}
	return nil
}

// Cache helpers

func (r *postgresRepository) storeInCache(ctx context.Context, p *blog.Post) {
	if data, err := json.Marshal(p); err == nil {
		r.cache.Set(ctx, postCacheKeyPrefix+p.ID.String(), string(data), cacheTTL)
		r.cache.Set(ctx, postSlugKeyPrefix+p.Slug, string(data), cacheTTL)
	}
}

func (r *postgresRepository) invalidatePostCache(ctx context.Context, id uuid.UUID, slug string) {
	r.cache.Delete(ctx, postCacheKeyPrefix+id.String())
	r.cache.Delete(ctx, postSlugKeyPrefix+slug)
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	r.cache.DeletePattern(ctx, postListKeyPrefix+"*")
}
