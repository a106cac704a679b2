package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/certification"
)

// postgresRepository goes straight to the pool. Certifications are a small
// admin-curated list; the aggregate endpoint is the only hot reader and
// keeps its own pace.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) certification.Repository {
	return &postgresRepository{pool: pool}
}

const certColumns = `id, name, issuer, credential_url, issued_at, expires_at, sort_order, created_at, updated_at`

func scanCertification(row pgx.Row) (*certification.Certification, error) {
	var c certification.Certification
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Issuer,
		&c.CredentialURL,
		&c.IssuedAt,
		&c.ExpiresAt,
		&c.SortOrder,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *certification.Certification) (*certification.Certification, error) {
	query := `
        INSERT INTO certifications (name, issuer, credential_url, issued_at, expires_at, sort_order)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + certColumns

	created, err := scanCertification(r.pool.QueryRow(
		ctx, query, c.Name, c.Issuer, c.CredentialURL, c.IssuedAt, c.ExpiresAt, c.SortOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create certification: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*certification.Certification, error) {
	query := `SELECT ` + certColumns + ` FROM certifications WHERE id = $1`

	c, err := scanCertification(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, certification.ErrCertificationNotFound
		}
		return nil, fmt.Errorf("failed to get certification: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) List(ctx context.Context, filter certification.CertificationFilter) ([]certification.Certification, int64, error) {
	query := `SELECT ` + certColumns + ` FROM certifications
        ORDER BY sort_order ASC, created_at DESC, id DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query certifications: %w", err)
	}
	defer rows.Close()

	var certs []certification.Certification
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan certification: %w", err)
		}
		certs = append(certs, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating certifications: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM certifications`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count certifications: %w", err)
	}

	return certs, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *certification.Certification) (*certification.Certification, error) {
	query := `
        UPDATE certifications
        SET name = $1, issuer = $2, credential_url = $3, issued_at = $4, expires_at = $5, sort_order = $6, updated_at = NOW()
        WHERE id = $7
        RETURNING ` + certColumns

	updated, err := scanCertification(r.pool.QueryRow(
		ctx, query, c.Name, c.Issuer, c.CredentialURL, c.IssuedAt, c.ExpiresAt, c.SortOrder, c.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, certification.ErrCertificationNotFound
		}
		return nil, fmt.Errorf("failed to update certification: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete certification: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return certification.ErrCertificationNotFound
	}
	return nil
}
