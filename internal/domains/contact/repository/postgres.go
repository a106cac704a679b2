package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/contact"
)

// postgresRepository stores submissions uncached: the admin inbox is a
// low-traffic internal surface.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) contact.Repository {
	return &postgresRepository{pool: pool}
}

const submissionColumns = `id, name, email, subject, message, read, client_ip, created_at`

func scanSubmission(row pgx.Row) (*contact.Submission, error) {
	var s contact.Submission
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Email,
		&s.Subject,
		&s.Message,
		&s.Read,
		&s.ClientIP,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepository) Create(ctx context.Context, s *contact.Submission) (*contact.Submission, error) {
	query := `
        INSERT INTO contact_submissions (name, email, subject, message, client_ip)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + submissionColumns

	created, err := scanSubmission(r.pool.QueryRow(
		ctx, query, s.Name, s.Email, s.Subject, s.Message, s.ClientIP,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create contact submission: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*contact.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM contact_submissions WHERE id = $1`

	s, err := scanSubmission(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, contact.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get contact submission: %w", err)
	}
	return s, nil
}

// List returns newest first so the inbox reads top-down.
func (r *postgresRepository) List(ctx context.Context, filter contact.SubmissionFilter) ([]contact.Submission, int64, error) {
	var where strings.Builder
	where.WriteString(" WHERE 1=1")

	args := []interface{}{}
	argPos := 1

	if filter.Unread != nil {
		where.WriteString(fmt.Sprintf(" AND read = $%d", argPos))
		args = append(args, !*filter.Unread)
		argPos++
	}

	query := fmt.Sprintf(
		"SELECT %s FROM contact_submissions%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d",
		submissionColumns, where.String(), argPos, argPos+1,
	)
	rows, err := r.pool.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query contact submissions: %w", err)
	}
	defer rows.Close()

	var submissions []contact.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact submission: %w", err)
		}
		submissions = append(submissions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating contact submissions: %w", err)
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM contact_submissions" + where.String()
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contact submissions: %w", err)
	}

	return submissions, total, nil
}

func (r *postgresRepository) SetRead(ctx context.Context, id uuid.UUID, read bool) (*contact.Submission, error) {
	query := `UPDATE contact_submissions SET read = $1 WHERE id = $2 RETURNING ` + submissionColumns

	s, err := scanSubmission(r.pool.QueryRow(ctx, query, read, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, contact.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to mark contact submission: %w", err)
	}
	return s, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM contact_submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact submission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return contact.ErrSubmissionNotFound
	}
	return nil
}
