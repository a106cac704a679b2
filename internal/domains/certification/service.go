package certification

import (
	"context"

	"github.com/google/uuid"
)

// Service is the certification business logic contract.
type Service interface {
	Create(ctx context.Context, req *CreateCertificationRequest) (*Certification, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Certification, error)
	List(ctx context.Context, filter CertificationFilter) ([]Certification, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCertificationRequest) (*Certification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
