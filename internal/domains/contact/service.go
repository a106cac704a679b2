package contact

import (
	"context"

	"github.com/google/uuid"
)

// Service is the contact business logic contract.
type Service interface {
	// Submit stores the message and fires the admin notification email in
	// the background. Email delivery never affects the caller's result.
	Submit(ctx context.Context, req *CreateSubmissionRequest, clientIP string) (*Submission, error)

	List(ctx context.Context, filter SubmissionFilter) ([]Submission, int64, error)
	ToggleRead(ctx context.Context, id uuid.UUID) (*Submission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
