package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/achievement"
)

// postgresRepository goes straight to the pool; achievements are a small
// admin-curated list.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) achievement.Repository {
	return &postgresRepository{pool: pool}
}

const achievementColumns = `id, title, description, icon, achieved_at, sort_order, created_at, updated_at`

func scanAchievement(row pgx.Row) (*achievement.Achievement, error) {
	var a achievement.Achievement
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.Icon,
		&a.AchievedAt,
		&a.SortOrder,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *achievement.Achievement) (*achievement.Achievement, error) {
	query := `
        INSERT INTO achievements (title, description, icon, achieved_at, sort_order)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + achievementColumns

	created, err := scanAchievement(r.pool.QueryRow(
		ctx, query, a.Title, a.Description, a.Icon, a.AchievedAt, a.SortOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create achievement: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*achievement.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements WHERE id = $1`

	a, err := scanAchievement(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, achievement.ErrAchievementNotFound
		}
		return nil, fmt.Errorf("failed to get achievement: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) List(ctx context.Context, filter achievement.AchievementFilter) ([]achievement.Achievement, int64, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements
        ORDER BY sort_order ASC, created_at DESC, id DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query achievements: %w", err)
	}
	defer rows.Close()

	var achievements []achievement.Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating achievements: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM achievements`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count achievements: %w", err)
	}

	return achievements, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *achievement.Achievement) (*achievement.Achievement, error) {
	query := `
        UPDATE achievements
        SET title = $1, description = $2, icon = $3, achieved_at = $4, sort_order = $5, updated_at = NOW()
        WHERE id = $6
        RETURNING ` + achievementColumns

	updated, err := scanAchievement(r.pool.QueryRow(
		ctx, query, a.Title, a.Description, a.Icon, a.AchievedAt, a.SortOrder, a.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, achievement.ErrAchievementNotFound
		}
		return nil, fmt.Errorf("failed to update achievement: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM achievements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete achievement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return achievement.ErrAchievementNotFound
	}
	return nil
}
