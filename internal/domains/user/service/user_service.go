package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/user"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"
)

const bcryptCost = 12

type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{repo: repo, jwtManager: jwtManager}
}

// Register creates an account with the "user" role. The first admin is
// promoted out of band (scripts/schema.sql seeds one).
func (s *userService) Register(ctx context.Context, req *user.RegisterRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &user.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         user.RoleUser,
	})
	if err != nil {
		return nil, err
	}

	return s.issueTokens(created, true)
}

// Login verifies credentials. Unknown email and wrong password return the
// same error so the endpoint does not leak which emails have accounts.
func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, user.ErrUserInactive
	}

	// Fire-and-forget: a failed timestamp write never fails a login.
	go func(id uuid.UUID) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.UpdateLastLogin(ctx, id, time.Now()); err != nil {
			logger.Warn("failed to update last login", map[string]interface{}{
				"user_id": id.String(),
				"error":   err.Error(),
			})
		}
	}(u.ID)

	return s.issueTokens(u, true)
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (s *userService) Refresh(ctx context.Context, req *user.RefreshRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidToken
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, user.ErrUserInactive
	}

	return s.issueTokens(u, false)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req *user.UpdateProfileRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		u.FullName = *req.FullName
	}

	return s.repo.Update(ctx, u)
}

func (s *userService) issueTokens(u *user.User, withRefresh bool) (*user.AuthResponse, error) {
	access, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, err
	}

	resp := &user.AuthResponse{
		User:        u,
		AccessToken: access,
		ExpiresIn:   int64(s.jwtManager.AccessExpiry().Seconds()),
	}

	if withRefresh {
		refresh, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
		if err != nil {
			return nil, err
		}
		resp.RefreshToken = refresh
	}

	return resp, nil
}
