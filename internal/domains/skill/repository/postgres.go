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
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/skill"
	"portfolio-backend/pkg/cache"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) skill.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	skillListKeyPrefix = "skills:list:"
	cacheTTL           = 5 * time.Minute
)

const skillColumns = `id, name, category, level, icon, sort_order, created_at, updated_at`

func scanSkill(row pgx.Row) (*skill.Skill, error) {
	var s skill.Skill
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Category,
		&s.Level,
		&s.Icon,
		&s.SortOrder,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepository) Create(ctx context.Context, s *skill.Skill) (*skill.Skill, error) {
	query := `
        INSERT INTO skills (name, category, level, icon, sort_order)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + skillColumns

	created, err := scanSkill(r.pool.QueryRow(ctx, query, s.Name, s.Category, s.Level, s.Icon, s.SortOrder))
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	r.invalidateListCache(ctx)

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*skill.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`

	s, err := scanSkill(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, skill.ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return s, nil
}

type listCacheEntry struct {
	Skills []skill.Skill `json:"skills"`
	Total  int64         `json:"total"`
}

// List orders by sort_order then recency so the portfolio page renders
// groups in a deliberate order.
func (r *postgresRepository) List(ctx context.Context, filter skill.SkillFilter) ([]skill.Skill, int64, error) {
	cacheKey := fmt.Sprintf("%s%s|%d|%d", skillListKeyPrefix, filter.Category, filter.Limit, filter.Offset)

	var cached listCacheEntry
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached.Skills, cached.Total, nil
	}

	var where strings.Builder
	where.WriteString(" WHERE 1=1")

	args := []interface{}{}
	argPos := 1

	if filter.Category != "" {
		where.WriteString(fmt.Sprintf(" AND category = $%d", argPos))
		args = append(args, filter.Category)
		argPos++
	}

	query := fmt.Sprintf(
		"SELECT %s FROM skills%s ORDER BY sort_order ASC, created_at DESC, id DESC LIMIT $%d OFFSET $%d",
		skillColumns, where.String(), argPos, argPos+1,
	)
	rows, err := r.pool.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	var skills []skill.Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating skills: %w", err)
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM skills" + where.String()
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count skills: %w", err)
	}

	if data, err := json.Marshal(listCacheEntry{Skills: skills, Total: total}); err == nil {
		r.cache.Set(ctx, cacheKey, string(data), cacheTTL)
	}

	return skills, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, s *skill.Skill) (*skill.Skill, error) {
	query := `
        UPDATE skills
        SET name = $1, category = $2, level = $3, icon = $4, sort_order = $5, updated_at = NOW()
        WHERE id = $6
        RETURNING ` + skillColumns

	updated, err := scanSkill(r.pool.QueryRow(ctx, query, s.Name, s.Category, s.Level, s.Icon, s.SortOrder, s.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, skill.ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}

	r.invalidateListCache(ctx)

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return skill.ErrSkillNotFound
	}

	r.invalidateListCache(ctx)

	return nil
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	r.cache.DeletePattern(ctx, skillListKeyPrefix+"*")
}
