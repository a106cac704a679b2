package contact

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the contact submission data access contract.
type Repository interface {
	Create(ctx context.Context, s *Submission) (*Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Submission, error)
	List(ctx context.Context, filter SubmissionFilter) ([]Submission, int64, error)
	SetRead(ctx context.Context, id uuid.UUID, read bool) (*Submission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
