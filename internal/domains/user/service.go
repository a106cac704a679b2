package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the auth/profile business logic contract.
type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)

	// Login deliberately reports the same error for an unknown email and a
	// wrong password.
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)

	Refresh(ctx context.Context, req *RefreshRequest) (*AuthResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*User, error)
}
