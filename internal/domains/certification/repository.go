package certification

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the certification data access contract.
type Repository interface {
	Create(ctx context.Context, c *Certification) (*Certification, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Certification, error)
	List(ctx context.Context, filter CertificationFilter) ([]Certification, int64, error)
	Update(ctx context.Context, c *Certification) (*Certification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
