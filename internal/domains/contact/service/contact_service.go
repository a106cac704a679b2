package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/infrastructure/email"
	"portfolio-backend/pkg/logger"
)

const notifyTimeout = 10 * time.Second

type contactService struct {
	repo   contact.Repository
	mailer email.Service
}

func NewContactService(repo contact.Repository, mailer email.Service) contact.Service {
	return &contactService{repo: repo, mailer: mailer}
}

// Submit stores the submission, then notifies the admin over SMTP in a
// goroutine detached from the request context so a slow mail server never
// holds the response. Delivery failure is logged, not surfaced.
func (s *contactService) Submit(ctx context.Context, req *contact.CreateSubmissionRequest, clientIP string) (*contact.Submission, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sub := &contact.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if clientIP != "" {
		sub.ClientIP = &clientIP
	}

	created, err := s.repo.Create(ctx, sub)
	if err != nil {
		return nil, err
	}

	go s.notify(created)

	return created, nil
}

func (s *contactService) notify(sub *contact.Submission) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	subject := ""
	if sub.Subject != nil {
		subject = *sub.Subject
	}

	err := s.mailer.SendContactNotification(ctx, email.ContactNotificationData{
		Name:    sub.Name,
		Email:   sub.Email,
		Subject: subject,
		Message: sub.Message,
	})
	if err != nil {
		logger.Warn("failed to send contact notification", map[string]interface{}{
			"submission_id": sub.ID.String(),
			"error":         err.Error(),
		})
	}
}

func (s *contactService) List(ctx context.Context, filter contact.SubmissionFilter) ([]contact.Submission, int64, error) {
	submissions, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list contact submissions: %w", err)
	}
	if submissions == nil {
		submissions = []contact.Submission{}
	}
	return submissions, total, nil
}

// ToggleRead flips the read flag so the inbox can mark and unmark without
// a separate endpoint.
func (s *contactService) ToggleRead(ctx context.Context, id uuid.UUID) (*contact.Submission, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repo.SetRead(ctx, id, !sub.Read)
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
