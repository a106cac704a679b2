package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/certification"
)

type certificationService struct {
	repo certification.Repository
}

func NewCertificationService(repo certification.Repository) certification.Service {
	return &certificationService{repo: repo}
}

func (s *certificationService) Create(ctx context.Context, req *certification.CreateCertificationRequest) (*certification.Certification, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &certification.Certification{
		Name:          req.Name,
		Issuer:        req.Issuer,
		CredentialURL: req.CredentialURL,
		IssuedAt:      req.IssuedAt,
		ExpiresAt:     req.ExpiresAt,
		SortOrder:     req.SortOrder,
	})
}

func (s *certificationService) GetByID(ctx context.Context, id uuid.UUID) (*certification.Certification, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *certificationService) List(ctx context.Context, filter certification.CertificationFilter) ([]certification.Certification, int64, error) {
	certs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list certifications: %w", err)
	}
	if certs == nil {
		certs = []certification.Certification{}
	}
	return certs, total, nil
}

func (s *certificationService) Update(ctx context.Context, id uuid.UUID, req *certification.UpdateCertificationRequest) (*certification.Certification, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Issuer != nil {
		existing.Issuer = *req.Issuer
	}
	if req.CredentialURL != nil {
		existing.CredentialURL = req.CredentialURL
	}
	if req.IssuedAt != nil {
		existing.IssuedAt = req.IssuedAt
	}
	if req.ExpiresAt != nil {
		existing.ExpiresAt = req.ExpiresAt
	}
	if req.SortOrder != nil {
		existing.SortOrder = *req.SortOrder
	}

	return s.repo.Update(ctx, existing)
}

func (s *certificationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
